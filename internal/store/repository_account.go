// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-member-auth/internal/logger"
	"github.com/MKhiriev/go-member-auth/models"
)

// accountRepository is the SQL-backed [AccountDirectory]. Accounts live in
// the "members" table, their authorities in "authorities".
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountDirectory] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountDirectory {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// FindByLoginName implements [AccountDirectory].
//
// The member row and its authorities are read with two queries. Error
// handling:
//   - no member row → [ErrAccountNotFound];
//   - a stored algorithm outside the closed set → error wrapping
//     [models.ErrUnknownHashAlgorithm];
//   - anything else → wrapped [ErrExecutingQuery], [ErrScanningRows], etc.
func (r *accountRepository) FindByLoginName(ctx context.Context, loginName string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindMemberQuery(r.db.builder, loginName)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindByLoginName").Msg("failed to build query")
		return models.Account{}, err
	}

	var account models.Account
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&account.ID, &account.LoginName, &account.PasswordHash, &account.HashAlgorithm)
	})
	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows):
		return models.Account{}, ErrAccountNotFound
	case errors.Is(err, models.ErrUnknownHashAlgorithm):
		log.Err(err).Str("func", "*accountRepository.FindByLoginName").Msg("stored hash algorithm is not supported")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	default:
		log.Err(err).
			Str("func", "*accountRepository.FindByLoginName").
			Str("pg_code", postgresError(err)).
			Msg("failed to query member")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	authorities, err := r.findAuthorities(ctx, account.ID)
	if err != nil {
		return models.Account{}, err
	}
	account.Authorities = authorities

	return account, nil
}

func (r *accountRepository) findAuthorities(ctx context.Context, memberID int64) ([]models.Authority, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAuthoritiesQuery(r.db.builder, memberID)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.findAuthorities").Msg("failed to build query")
		return nil, err
	}

	var rows *sql.Rows
	err = r.db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.findAuthorities").
			Int64("member_id", memberID).
			Str("pg_code", postgresError(err)).
			Msg("failed to query authorities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	authorities := make([]models.Authority, 0, 4)
	for rows.Next() {
		var authority models.Authority
		if err := rows.Scan(&authority.ID, &authority.Name); err != nil {
			log.Err(err).Str("func", "*accountRepository.findAuthorities").Msg("failed to scan authority row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		authorities = append(authorities, authority)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.findAuthorities").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return authorities, nil
}
