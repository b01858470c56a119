// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptID = "scrypt"

	minSCryptMaterialLength = 16
	// Bounds on the cost read back from a stored hash.
	maxSCryptLogN        = 24
	maxSCryptMemory      = 1 << 30
	maxSCryptParallelism = 64
)

// SCryptParams are the tuning parameters of the MemoryHard hasher.
type SCryptParams struct {
	CPUCost     int // N, a power of two greater than 1
	BlockSize   int // r
	Parallelism int // p
	KeyLength   int
	SaltLength  int
}

// SCryptHasher is the MemoryHard [PasswordHasher].
//
// Hashes are stored in a PHC-like string:
//
//	$scrypt$ln=<log2(N)>,r=<r>,p=<p>$<salt>$<key>
//
// with salt and key in unpadded standard base64. Verify reads every parameter
// back from the string, including the key length.
type SCryptHasher struct {
	params SCryptParams
}

// NewSCryptHasher validates params and returns a scrypt hasher.
func NewSCryptHasher(params SCryptParams) (*SCryptHasher, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	return &SCryptHasher{params: params}, nil
}

func (p SCryptParams) validate() error {
	if p.CPUCost <= 1 || p.CPUCost&(p.CPUCost-1) != 0 {
		return fmt.Errorf("%w: scrypt N=%d must be a power of two greater than 1", ErrInvalidParams, p.CPUCost)
	}
	if p.BlockSize < 1 || p.Parallelism < 1 || uint64(p.BlockSize)*uint64(p.Parallelism) >= 1<<30 {
		return fmt.Errorf("%w: scrypt r=%d p=%d", ErrInvalidParams, p.BlockSize, p.Parallelism)
	}
	if p.KeyLength < minSCryptMaterialLength || p.SaltLength < minSCryptMaterialLength {
		return fmt.Errorf("%w: scrypt key and salt must be at least %d bytes", ErrInvalidParams, minSCryptMaterialLength)
	}

	return nil
}

// Encode implements [PasswordHasher].
func (h *SCryptHasher) Encode(secret string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("scrypt salt: %w", err)
	}

	key, err := scrypt.Key([]byte(secret), salt, h.params.CPUCost, h.params.BlockSize, h.params.Parallelism, h.params.KeyLength)
	if err != nil {
		return "", fmt.Errorf("scrypt encode: %w", err)
	}

	return fmt.Sprintf("$%s$ln=%d,r=%d,p=%d$%s$%s",
		scryptID,
		bits.TrailingZeros(uint(h.params.CPUCost)),
		h.params.BlockSize,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher]. The derived key is compared in
// constant time.
func (h *SCryptHasher) Verify(secret, encoded string) (bool, error) {
	stored, err := parseSCryptHash(encoded)
	if err != nil {
		return false, err
	}

	key, err := scrypt.Key([]byte(secret), stored.salt, stored.n, stored.r, stored.p, len(stored.key))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	return subtle.ConstantTimeCompare(key, stored.key) == 1, nil
}

// Params returns the parameters new hashes are encoded with.
func (h *SCryptHasher) Params() SCryptParams {
	return h.params
}

type scryptHash struct {
	n, r, p int
	salt    []byte
	key     []byte
}

func parseSCryptHash(encoded string) (*scryptHash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "" {
		return nil, fmt.Errorf("%w: invalid format", ErrMalformedHash)
	}
	if parts[1] != scryptID {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedHash, parts[1])
	}

	stored := &scryptHash{}
	var logN int
	seen := make(map[string]bool, 3)
	for _, kv := range strings.Split(parts[2], ",") {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok || seen[name] {
			return nil, fmt.Errorf("%w: invalid parameter %q", ErrMalformedHash, kv)
		}
		seen[name] = true

		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			return nil, fmt.Errorf("%w: invalid parameter %q", ErrMalformedHash, kv)
		}

		switch name {
		case "ln":
			logN = value
		case "r":
			stored.r = value
		case "p":
			stored.p = value
		default:
			return nil, fmt.Errorf("%w: unknown parameter %q", ErrMalformedHash, name)
		}
	}
	if len(seen) != 3 {
		return nil, fmt.Errorf("%w: missing parameters", ErrMalformedHash)
	}
	if logN > maxSCryptLogN {
		return nil, fmt.Errorf("%w: ln=%d exceeds %d", ErrMalformedHash, logN, maxSCryptLogN)
	}
	stored.n = 1 << logN
	if stored.r > maxSCryptMemory/128/stored.n || stored.p > maxSCryptParallelism {
		return nil, fmt.Errorf("%w: cost parameters out of bounds", ErrMalformedHash)
	}

	var err error
	if stored.salt, err = base64.RawStdEncoding.DecodeString(parts[3]); err != nil || len(stored.salt) == 0 {
		return nil, fmt.Errorf("%w: invalid salt encoding", ErrMalformedHash)
	}
	if stored.key, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil || len(stored.key) == 0 {
		return nil, fmt.Errorf("%w: invalid key encoding", ErrMalformedHash)
	}

	return stored, nil
}
