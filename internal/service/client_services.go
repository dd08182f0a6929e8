package service

import (
	"github.com/junohealth/notecache/internal/adapter"
	"github.com/junohealth/notecache/internal/config"
	"github.com/junohealth/notecache/internal/logger"
	"github.com/junohealth/notecache/internal/store"
)

// ClientServices groups every service the rendering layer talks to.
type ClientServices struct {
	QueryService NoteQueryService
	SyncService  NoteSyncService
	RefreshJob   RefreshJob
}

func NewClientServices(
	storages *store.Storages,
	remote adapter.RemoteSource,
	diagnostics adapter.DiagnosticSink,
	cacheCfg config.ClientCache,
	logger *logger.Logger,
) *ClientServices {
	querySvc := NewNoteQueryService(storages.Notes, cacheCfg, logger)
	syncSvc := NewNoteSyncService(storages.Notes, storages.SyncStatus, remote, diagnostics, cacheCfg, logger)

	return &ClientServices{
		QueryService: querySvc,
		SyncService:  syncSvc,
		RefreshJob:   NewRefreshJob(syncSvc, logger),
	}
}
