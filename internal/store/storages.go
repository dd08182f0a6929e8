package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/junohealth/notecache/internal/config"
	"github.com/junohealth/notecache/internal/logger"
)

// Storages groups the cache's storage repositories into a single value that
// can be passed around the service layer: the note entity store and the
// per-site freshness ledger. Only the sync and query engines are expected
// to touch either one.
type Storages struct {
	// Notes is the SQLite-backed entity store for cached progress notes.
	Notes NoteRepository

	// SyncStatus is the per-site freshness ledger.
	SyncStatus SyncStatusRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories
//     sharing one connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Notes:      NewNoteRepository(db, logger),
		SyncStatus: NewSyncStatusRepository(db, logger),
	}, nil
}

var (
	openOnce     sync.Once
	openStorages *Storages
	openErr      error
)

// OpenStorages is the process-wide storage initializer. The first call opens
// the database via [NewStorages]; every later call is a no-op that returns
// the same *Storages (or the same error), regardless of the arguments.
func OpenStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	openOnce.Do(func() {
		openStorages, openErr = NewStorages(cfg, logger)
	})

	return openStorages, openErr
}
