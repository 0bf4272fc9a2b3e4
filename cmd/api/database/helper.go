package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/bookstore-service/cmd/api/book"
	"github.com/golang-migrate/migrate/v4"
)

// Helper opens the database on first use and brings its schema to the requested version.
// Later calls hand out the same store.
type Helper struct {
	driverName     string
	dsn            string
	version        uint
	migrationsPath string

	mu    sync.Mutex
	store *Store
}

func NewHelper(driverName, dsn string, version uint, migrationsPath string) *Helper {
	return &Helper{
		driverName:     driverName,
		dsn:            dsn,
		version:        version,
		migrationsPath: migrationsPath,
	}
}

func (h *Helper) Writable(ctx context.Context) (book.Repository, error) {
	store, err := h.Open(ctx)
	if err != nil {
		return nil, err
	}
	return store, nil
}

/* Connects and migrates on the first call, creating the database file when it is missing. */
func (h *Helper) Open(ctx context.Context) (*Store, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.store != nil {
		return h.store, nil
	}

	db, err := ConnectDb(ctx, h.driverName, h.dsn)
	if err != nil {
		return nil, fmt.Errorf("opening writable db: %w", err)
	}

	store := NewStore(db)
	err = MigrationUp(store, h.version, h.migrationsPath)
	switch {
	case err == nil:
		log.Printf("database schema at version %d", h.version)
	case errors.Is(err, migrate.ErrNoChange):
	default:
		db.Close()
		return nil, fmt.Errorf("opening writable db: %w", err)
	}

	h.store = store
	return store, nil
}

func (h *Helper) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.store == nil {
		return nil
	}
	err := h.store.db.Close()
	h.store = nil
	return err
}
