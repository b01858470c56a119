// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// ErrUnknownHashAlgorithm is returned when a value does not name one of the
// supported [HashAlgorithm] members.
var ErrUnknownHashAlgorithm = errors.New("unknown hash algorithm")

// HashAlgorithm names the password-hashing family that produced an account's
// stored password hash. The set is closed: every member must have exactly one
// configured hasher (see crypto.NewHashers).
//
// Values are persisted as strings in the "algorithm" column.
type HashAlgorithm string

const (
	// StrongAdaptive is a salted, cost-adaptive one-way hash (bcrypt).
	StrongAdaptive HashAlgorithm = "BCRYPT"

	// MemoryHard is a salted, memory-hard key-derivation hash (scrypt).
	MemoryHard HashAlgorithm = "SCRYPT"
)

// HashAlgorithms returns every supported [HashAlgorithm] member.
// Adding a member here without registering a hasher for it makes
// crypto.NewHashers fail at startup.
func HashAlgorithms() []HashAlgorithm {
	return []HashAlgorithm{StrongAdaptive, MemoryHard}
}

// ParseHashAlgorithm converts s into a [HashAlgorithm].
// Matching is exact; unknown values yield [ErrUnknownHashAlgorithm].
func ParseHashAlgorithm(s string) (HashAlgorithm, error) {
	alg := HashAlgorithm(s)
	if !alg.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownHashAlgorithm, s)
	}

	return alg, nil
}

// IsValid reports whether a is a member of the closed set.
func (a HashAlgorithm) IsValid() bool {
	for _, known := range HashAlgorithms() {
		if a == known {
			return true
		}
	}

	return false
}

// String implements [fmt.Stringer].
func (a HashAlgorithm) String() string {
	return string(a)
}

// Scan implements [sql.Scanner]. Unknown stored values are rejected so that an
// account with an unsupported tag never reaches the verifier.
func (a *HashAlgorithm) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		return fmt.Errorf("%w: NULL", ErrUnknownHashAlgorithm)
	default:
		return fmt.Errorf("%w: unsupported column type %T", ErrUnknownHashAlgorithm, src)
	}

	alg, err := ParseHashAlgorithm(raw)
	if err != nil {
		return err
	}

	*a = alg
	return nil
}

// Value implements [driver.Valuer].
func (a HashAlgorithm) Value() (driver.Value, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHashAlgorithm, string(a))
	}

	return string(a), nil
}
