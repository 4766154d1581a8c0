package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
)

// Storages bundles the repositories over one database connection.
type Storages struct {
	UserRepository   UserRepository
	CourseRepository CourseRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DB.Driver, applies
// the schema migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		CourseRepository: NewCourseRepository(db, log),
		db:               db,
	}, nil
}

// NewConnect opens a connection for the configured driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
