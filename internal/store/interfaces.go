package store

import (
	"context"
	"time"

	"github.com/junohealth/notecache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository is the low-level entity store for cached progress notes.
// All reads and writes are scoped by the owning site except ClearEverything.
type NoteRepository interface {
	// Put inserts or overwrites one note and returns the store-assigned key.
	Put(ctx context.Context, note models.Note) (int64, error)

	// BulkPut inserts a batch of notes inside one transaction. Individual
	// insert failures are counted rather than aborting the batch; the
	// transaction commits the records that succeeded. An error is returned
	// only when the transaction itself cannot be started or committed.
	BulkPut(ctx context.Context, notes []models.Note) (models.BulkResult, error)

	// GetBySite returns every note owned by site, in no particular order.
	GetBySite(ctx context.Context, site string) ([]models.Note, error)

	// GetOne returns the note with the given remote identifier under site,
	// or ErrNoteNotFound.
	GetOne(ctx context.Context, site, remoteID string) (models.Note, error)

	// CountBySite returns the number of notes owned by site.
	CountBySite(ctx context.Context, site string) (int, error)

	// DeleteAllForSite removes every note owned by site and returns the
	// number of rows removed. Notes of other sites are untouched.
	DeleteAllForSite(ctx context.Context, site string) (int64, error)

	// ClearEverything removes all notes and all freshness entries in one
	// transaction. Used on logout or hard reset.
	ClearEverything(ctx context.Context) error
}

// SyncStatusRepository is the per-site freshness ledger.
type SyncStatusRepository interface {
	// RecordRefresh inserts or overwrites the freshness entry for site.
	RecordRefresh(ctx context.Context, site string, refreshedAt time.Time) error

	// LastRefresh returns the freshness entry for site, or
	// ErrSyncStatusNotFound when no successful refresh has been recorded.
	LastRefresh(ctx context.Context, site string) (models.SyncStatus, error)
}
