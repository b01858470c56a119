// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"maps"

	"github.com/MKhiriev/go-member-auth/internal/config"
	"github.com/MKhiriev/go-member-auth/models"
)

// Hashers maps every supported [models.HashAlgorithm] to the
// [PasswordHasher] configured for it. It is built once at startup and is
// read-only afterwards, so it is safe for concurrent use.
type Hashers struct {
	byAlgorithm map[models.HashAlgorithm]PasswordHasher
}

// NewHashers checks that hashers covers exactly the members of
// [models.HashAlgorithms] with non-nil values and returns the registry.
// Any gap or stray key is reported as [ErrHasherMisconfiguration].
func NewHashers(hashers map[models.HashAlgorithm]PasswordHasher) (*Hashers, error) {
	for _, alg := range models.HashAlgorithms() {
		if h, ok := hashers[alg]; !ok || h == nil {
			return nil, fmt.Errorf("%w: no hasher registered for %s", ErrHasherMisconfiguration, alg)
		}
	}
	for alg := range hashers {
		if !alg.IsValid() {
			return nil, fmt.Errorf("%w: hasher registered for unknown algorithm %q", ErrHasherMisconfiguration, alg)
		}
	}

	return &Hashers{byAlgorithm: maps.Clone(hashers)}, nil
}

// NewDefaultHashers builds the production registry from the hashing config.
func NewDefaultHashers(cfg config.Hashing) (*Hashers, error) {
	bcryptHasher, err := NewBCryptHasher(cfg.BCrypt.Cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHasherMisconfiguration, err)
	}

	scryptHasher, err := NewSCryptHasher(SCryptParams{
		CPUCost:     cfg.SCrypt.CPUCost,
		BlockSize:   cfg.SCrypt.BlockSize,
		Parallelism: cfg.SCrypt.Parallelism,
		KeyLength:   cfg.SCrypt.KeyLength,
		SaltLength:  cfg.SCrypt.SaltLength,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHasherMisconfiguration, err)
	}

	return NewHashers(map[models.HashAlgorithm]PasswordHasher{
		models.StrongAdaptive: bcryptHasher,
		models.MemoryHard:     scryptHasher,
	})
}

// For returns the hasher registered for alg. The second result is false
// only for values outside [models.HashAlgorithms], e.g. a corrupted tag
// read from storage.
func (h *Hashers) For(alg models.HashAlgorithm) (PasswordHasher, bool) {
	hasher, ok := h.byAlgorithm[alg]
	return hasher, ok
}
