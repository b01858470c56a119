package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-member-auth/internal/logger"
	"github.com/MKhiriev/go-member-auth/migrations"
	"github.com/MKhiriev/go-member-auth/models"
)

const (
	memberQuery      = `SELECT id, member_name, password, algorithm FROM members WHERE member_name = \$1`
	authoritiesQuery = `SELECT id, name FROM authorities WHERE member = \$1 ORDER BY id`
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, migrations.DialectPostgres, NewPostgresErrorClassifier(), logger.Nop()), mock
}

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewAccountRepository(db, logger.Nop()).(*accountRepository), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func memberRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "member_name", "password", "algorithm"})
}

func TestFindByLoginName_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(memberQuery).
		WithArgs("alice").
		WillReturnRows(memberRows().AddRow(1, "alice", "$2a$10$hash", "BCRYPT"))
	mock.ExpectQuery(authoritiesQuery).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(10, "READ").
			AddRow(11, "WRITE"))

	account, err := repo.FindByLoginName(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, models.Account{
		ID:            1,
		LoginName:     "alice",
		PasswordHash:  "$2a$10$hash",
		HashAlgorithm: models.StrongAdaptive,
		Authorities:   []models.Authority{{ID: 10, Name: "READ"}, {ID: 11, Name: "WRITE"}},
	}, account)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByLoginName_NoAuthorities(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(memberQuery).
		WithArgs("bob").
		WillReturnRows(memberRows().AddRow(2, "bob", "$scrypt$ln=14,r=8,p=1$s$k", "SCRYPT"))
	mock.ExpectQuery(authoritiesQuery).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	account, err := repo.FindByLoginName(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, models.MemoryHard, account.HashAlgorithm)
	assert.NotNil(t, account.Authorities)
	assert.Empty(t, account.Authorities)
}

func TestFindByLoginName_NotFound(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(memberQuery).
		WithArgs("carol").
		WillReturnRows(memberRows())

	_, err := repo.FindByLoginName(context.Background(), "carol")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	// authorities are never queried for a missing member
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByLoginName_ExactMatchArgument(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	// the login is passed through untouched: no trimming, no case folding
	mock.ExpectQuery(memberQuery).
		WithArgs(" Alice ").
		WillReturnRows(memberRows())

	_, err := repo.FindByLoginName(context.Background(), " Alice ")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByLoginName_UnknownAlgorithm(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(memberQuery).
		WithArgs("dave").
		WillReturnRows(memberRows().AddRow(4, "dave", "md5hash", "MD5"))

	_, err := repo.FindByLoginName(context.Background(), "dave")
	assert.ErrorIs(t, err, models.ErrUnknownHashAlgorithm)
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrAccountNotFound)
}

func TestFindByLoginName_QueryError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(memberQuery).
		WithArgs("alice").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindByLoginName(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByLoginName_RetriesTransientError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(memberQuery).
		WithArgs("alice").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(memberQuery).
		WithArgs("alice").
		WillReturnRows(memberRows().AddRow(1, "alice", "hash", "BCRYPT"))
	mock.ExpectQuery(authoritiesQuery).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "READ"))

	account, err := repo.FindByLoginName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"READ"}, account.AuthorityNames())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByLoginName_GivesUpAfterMaxAttempts(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	for range maxQueryAttempts {
		mock.ExpectQuery(memberQuery).
			WithArgs("alice").
			WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	_, err := repo.FindByLoginName(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByLoginName_AuthoritiesError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(memberQuery).
		WithArgs("alice").
		WillReturnRows(memberRows().AddRow(1, "alice", "hash", "BCRYPT"))
	mock.ExpectQuery(authoritiesQuery).
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByLoginName(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindByLoginName_AuthoritiesRowError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(memberQuery).
		WithArgs("alice").
		WillReturnRows(memberRows().AddRow(1, "alice", "hash", "BCRYPT"))
	mock.ExpectQuery(authoritiesQuery).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "READ").
			RowError(0, errors.New("broken row")))

	_, err := repo.FindByLoginName(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestFindByLoginName_ContextCanceledDuringRetry(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock.ExpectQuery(memberQuery).
		WithArgs("alice").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	_, err := repo.FindByLoginName(ctx, "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithRetry_NilClassifierDoesNotRetry(t *testing.T) {
	db := &DB{}
	calls := 0
	err := db.withRetry(context.Background(), func() error {
		calls++
		return sql.ErrConnDone
	})
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Equal(t, 1, calls)
}
