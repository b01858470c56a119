package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-member-auth/internal/config"
	"github.com/MKhiriev/go-member-auth/internal/logger"
)

// Storages groups the repositories the server needs over one connection.
type Storages struct {
	AccountDirectory  AccountDirectory
	ProductRepository ProductRepository

	db *DB
}

// NewStorages connects to the configured database and builds the
// repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AccountDirectory:  NewAccountRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
		db:                db,
	}
}

// Migrate brings the schema up to date.
func (s *Storages) Migrate() error {
	return s.db.Migrate()
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
