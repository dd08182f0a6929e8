package store

import "errors"

var (
	// ErrNoteNotFound is returned by NoteRepository.GetOne when no note
	// with the requested remote identifier exists under the site.
	ErrNoteNotFound = errors.New("note not found")

	// ErrSyncStatusNotFound is returned by SyncStatusRepository.LastRefresh
	// for a site that has never completed a successful refresh.
	ErrSyncStatusNotFound = errors.New("sync status not found")
)
