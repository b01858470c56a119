// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/MKhiriev/go-member-auth/internal/crypto"
	"github.com/MKhiriev/go-member-auth/internal/logger"
	"github.com/MKhiriev/go-member-auth/internal/store"
	"github.com/MKhiriev/go-member-auth/models"
)

// Internal rejection reasons. They are logged, never returned.
const (
	reasonAccountNotFound  = "account_not_found"
	reasonPasswordMismatch = "password_mismatch"
	reasonMalformedHash    = "malformed_hash"
)

// credentialVerifier dispatches verification to the hasher recorded on each
// account. It holds no mutable state and is safe for concurrent use.
type credentialVerifier struct {
	directory store.AccountDirectory
	hashers   *crypto.Hashers

	// dummies holds one prepared hash per algorithm. An unknown login is
	// verified against one of them, so that path costs as much as a wrong
	// password on an account of that algorithm.
	dummies []dummyHash

	logger *logger.Logger
}

type dummyHash struct {
	hasher crypto.PasswordHasher
	hash   string
}

// NewCredentialVerifier builds a [CredentialVerifier] over directory and the
// startup-validated hashers registry.
func NewCredentialVerifier(directory store.AccountDirectory, hashers *crypto.Hashers, logger *logger.Logger) (CredentialVerifier, error) {
	if directory == nil || hashers == nil {
		return nil, fmt.Errorf("%w: credential verifier needs a directory and hashers", crypto.ErrHasherMisconfiguration)
	}

	dummies := make([]dummyHash, 0, len(models.HashAlgorithms()))
	for _, alg := range models.HashAlgorithms() {
		hasher, ok := hashers.For(alg)
		if !ok {
			return nil, fmt.Errorf("%w: no hasher for %s", crypto.ErrHasherMisconfiguration, alg)
		}

		hash, err := hasher.Encode(rand.Text())
		if err != nil {
			return nil, fmt.Errorf("error preparing dummy hash for %s: %w", alg, err)
		}
		dummies = append(dummies, dummyHash{hasher: hasher, hash: hash})
	}

	return &credentialVerifier{
		directory: directory,
		hashers:   hashers,
		dummies:   dummies,
		logger:    logger,
	}, nil
}

// dummyFor picks the dummy hash for an unknown login. The choice is stable
// per login name, so repeated probes of one name always cost the same.
func (v *credentialVerifier) dummyFor(loginName string) dummyHash {
	h := fnv.New32a()
	_, _ = h.Write([]byte(loginName))
	return v.dummies[h.Sum32()%uint32(len(v.dummies))]
}

// Authenticate implements [CredentialVerifier].
//
// Outcomes:
//   - unknown login or wrong secret → [ErrBadCredentials];
//   - stored hash the hasher cannot parse → [ErrBadCredentials];
//   - account tagged with an algorithm that has no hasher →
//     [crypto.ErrHasherMisconfiguration];
//   - any other directory failure → [ErrAuthenticationUnavailable].
//
// The empty secret goes through regular verification.
func (v *credentialVerifier) Authenticate(ctx context.Context, loginName, rawSecret string) (models.Principal, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*credentialVerifier.Authenticate").
		Str("login", loginName).
		Logger()

	account, err := v.directory.FindByLoginName(ctx, loginName)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrAccountNotFound):
		// result ignored: this only equalizes timing with the mismatch path
		dummy := v.dummyFor(loginName)
		_, _ = dummy.hasher.Verify(rawSecret, dummy.hash)
		log.Info().Str("reason", reasonAccountNotFound).Msg("authentication rejected")
		return models.Principal{}, ErrBadCredentials
	case errors.Is(err, models.ErrUnknownHashAlgorithm):
		log.Error().Err(err).Msg("account has an unsupported hash algorithm")
		return models.Principal{}, fmt.Errorf("%w: %w", crypto.ErrHasherMisconfiguration, err)
	default:
		log.Err(err).Msg("account lookup failed")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrAuthenticationUnavailable, err)
	}

	hasher, ok := v.hashers.For(account.HashAlgorithm)
	if !ok {
		log.Error().Str("algorithm", account.HashAlgorithm.String()).Msg("no hasher registered for account algorithm")
		return models.Principal{}, fmt.Errorf("%w: no hasher for %q", crypto.ErrHasherMisconfiguration, account.HashAlgorithm)
	}

	matched, err := hasher.Verify(rawSecret, account.PasswordHash)
	if err != nil {
		log.Warn().Err(err).Str("reason", reasonMalformedHash).Msg("authentication rejected")
		return models.Principal{}, ErrBadCredentials
	}
	if !matched {
		log.Info().Str("reason", reasonPasswordMismatch).Msg("authentication rejected")
		return models.Principal{}, ErrBadCredentials
	}

	log.Debug().Str("algorithm", account.HashAlgorithm.String()).Msg("authenticated")
	return models.NewPrincipal(account), nil
}
