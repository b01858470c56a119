// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BCryptMaxSecretLength is the number of secret bytes bcrypt consumes.
// Anything beyond it would be silently ignored by the algorithm.
const BCryptMaxSecretLength = 72

// BCryptHasher is the StrongAdaptive [PasswordHasher]. The work factor is
// embedded in every hash it produces, so hashes encoded with another cost
// still verify.
type BCryptHasher struct {
	cost int
}

// NewBCryptHasher returns a bcrypt hasher with the given work factor.
func NewBCryptHasher(cost int) (*BCryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d", ErrInvalidParams, cost)
	}

	return &BCryptHasher{cost: cost}, nil
}

// Encode implements [PasswordHasher]. Secrets longer than
// [BCryptMaxSecretLength] bytes are rejected with [ErrSecretTooLong].
func (h *BCryptHasher) Encode(secret string) (string, error) {
	if len(secret) > BCryptMaxSecretLength {
		return "", ErrSecretTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt encode: %w", err)
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher].
func (h *BCryptHasher) Verify(secret, encoded string) (bool, error) {
	// Encode never accepts such a secret, and bcrypt would compare only its prefix.
	if len(secret) > BCryptMaxSecretLength {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(secret))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}

// Cost returns the work factor new hashes are encoded with.
func (h *BCryptHasher) Cost() int {
	return h.cost
}
