// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const minHashMaterialLength = 16

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	return cfg.Hashing.validate()
}

// validate checks the hasher parameters. It is also used by tools that only
// need the hashing block (see cmd/hashpw).
func (h Hashing) validate() error {
	if h.BCrypt.Cost < bcrypt.MinCost || h.BCrypt.Cost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range [%d, %d]",
			ErrInvalidHashingConfigs, h.BCrypt.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	s := h.SCrypt
	if s.CPUCost <= 1 || s.CPUCost&(s.CPUCost-1) != 0 {
		return fmt.Errorf("%w: scrypt cpu cost %d must be a power of two greater than 1",
			ErrInvalidHashingConfigs, s.CPUCost)
	}
	if s.BlockSize < 1 || s.Parallelism < 1 {
		return fmt.Errorf("%w: scrypt block size and parallelism must be positive", ErrInvalidHashingConfigs)
	}
	if s.KeyLength < minHashMaterialLength || s.SaltLength < minHashMaterialLength {
		return fmt.Errorf("%w: scrypt key and salt length must be >= %d",
			ErrInvalidHashingConfigs, minHashMaterialLength)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
