package service

import (
	"context"
	"time"

	"github.com/junohealth/notecache/models"
)

// NoteQueryService defines the read contract over one site's cached notes.
// All reads are served from the local store; the remote source is never
// consulted.
type NoteQueryService interface {
	// Query returns one filtered, sorted, paginated window of site's cached
	// notes. Filters narrow by client and by inclusive event-time range;
	// sorting compares date-valued attributes as instants and everything
	// else as strings. Unset options fall back to the defaults in
	// models.QueryOptions. The result carries the pre-window total and a
	// has-more flag.
	// Returns an error only when the local store read fails.
	Query(ctx context.Context, site string, opts models.QueryOptions) (models.QueryResult, error)
}

// NoteSyncService defines the contract for keeping one site's cache in step
// with the remote note source, plus the maintenance pass-throughs the
// rendering layer needs.
type NoteSyncService interface {
	// Refresh replaces site's cached notes with the remote source's current
	// view: it purges the site, fetches one response from the remote
	// source, stamps and bulk-saves the returned records, and records the
	// site's freshness. The purge is unconditional and happens before the
	// network call, so a failed refresh leaves the site empty with no
	// freshness entry; the failure is also reported to the diagnostics
	// sink on a best-effort basis.
	// Returns the per-record save tallies and a pagination descriptor, or
	// an error if the fetch or the batch save transaction fails.
	Refresh(ctx context.Context, site string, opts models.RefreshOptions) (models.RefreshResult, error)

	// LastRefresh returns the instant of site's last successful refresh,
	// or nil when the site has never been refreshed since the last full
	// cache clear.
	LastRefresh(ctx context.Context, site string) (*time.Time, error)

	// CountBySite returns the number of notes currently cached for site.
	CountBySite(ctx context.Context, site string) (int, error)

	// DeleteAllForSite removes every cached note owned by site and returns
	// the number of records removed. The site's freshness entry is kept.
	DeleteAllForSite(ctx context.Context, site string) (int64, error)

	// ClearEverything removes all cached notes and all freshness entries
	// across every site.
	ClearEverything(ctx context.Context) error
}

// RefreshJob is a background worker that keeps a fixed set of sites fresh
// by running full refreshes on a ticker.
type RefreshJob interface {
	// Start launches the background goroutine. It refreshes every site in
	// sites sequentially each tick; per-site failures are logged and do
	// not stop the job. If interval is zero or negative it defaults to
	// 15 minutes. Calling Start again restarts the job.
	Start(ctx context.Context, sites []string, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it has
	// exited. Safe to call when the job is not running.
	Stop()
}
