// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juno Health

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/junohealth/notecache/internal/adapter"
	"github.com/junohealth/notecache/internal/config"
	"github.com/junohealth/notecache/internal/logger"
	"github.com/junohealth/notecache/internal/store"
	"github.com/junohealth/notecache/internal/utils"
	"github.com/junohealth/notecache/models"
)

// Diagnostic stages reported to the sink when a refresh fails.
const (
	stagePurge = "purge"
	stageFetch = "fetch"
	stageSave  = "save"
)

type noteSyncService struct {
	notes       store.NoteRepository
	syncStatus  store.SyncStatusRepository
	remote      adapter.RemoteSource
	diagnostics adapter.DiagnosticSink
	ids         *utils.UUIDGenerator

	cacheCfg config.ClientCache

	logger *logger.Logger
}

func NewNoteSyncService(
	notes store.NoteRepository,
	syncStatus store.SyncStatusRepository,
	remote adapter.RemoteSource,
	diagnostics adapter.DiagnosticSink,
	cacheCfg config.ClientCache,
	logger *logger.Logger,
) NoteSyncService {
	return &noteSyncService{
		notes:       notes,
		syncStatus:  syncStatus,
		remote:      remote,
		diagnostics: diagnostics,
		ids:         utils.NewUUIDGenerator(),
		cacheCfg:    cacheCfg,
		logger:      logger,
	}
}

// Refresh implements NoteSyncService. The purge runs before the network
// call: a refresh that fails mid-flight leaves the site empty rather than
// stale, and the missing freshness entry tells readers the cache cannot be
// trusted for that site.
func (s *noteSyncService) Refresh(ctx context.Context, site string, opts models.RefreshOptions) (models.RefreshResult, error) {
	traceID := s.ids.Generate()
	log := logger.FromContext(ctx).With().
		Str("trace_id", traceID).
		Str("site", site).
		Logger()
	ctx = log.WithContext(ctx)

	days := opts.Days
	if days <= 0 {
		days = s.cacheCfg.LookbackDays
	}

	deleted, err := s.notes.DeleteAllForSite(ctx, site)
	if err != nil {
		log.Err(err).
			Str("func", "noteSyncService.Refresh").
			Msg("error during site purge")
		s.report(ctx, traceID, site, stagePurge, err)
		return models.RefreshResult{}, fmt.Errorf("purge site %s: %w", site, err)
	}
	log.Debug().
		Str("func", "noteSyncService.Refresh").
		Int64("deleted", deleted).
		Msg("site purged before refresh")

	response, err := s.remote.FetchNotes(ctx, models.FetchRequest{
		Site:    site,
		Days:    days,
		Page:    opts.Page,
		PerPage: opts.PerPage,
		Force:   opts.Force,
	})
	if err != nil {
		log.Err(err).
			Str("func", "noteSyncService.Refresh").
			Msg("error during remote fetch, site left purged")
		s.report(ctx, traceID, site, stageFetch, err)
		return models.RefreshResult{}, fmt.Errorf("fetch notes for site %s: %w", site, err)
	}

	now := time.Now()
	batch := make([]models.Note, 0, len(response.Notes))
	for _, remote := range response.Notes {
		batch = append(batch, remote.ToNote(site, now))
	}

	saved, err := s.notes.BulkPut(ctx, batch)
	if err != nil {
		log.Err(err).
			Str("func", "noteSyncService.Refresh").
			Msg("error during batch save, site left purged")
		s.report(ctx, traceID, site, stageSave, err)
		return models.RefreshResult{}, fmt.Errorf("save notes for site %s: %w", site, err)
	}

	refreshedAt := now
	if response.FetchedAt != nil {
		refreshedAt = *response.FetchedAt
	}
	if err = s.syncStatus.RecordRefresh(ctx, site, refreshedAt); err != nil {
		log.Err(err).
			Str("func", "noteSyncService.Refresh").
			Msg("error during freshness record")
		s.report(ctx, traceID, site, stageSave, err)
		return models.RefreshResult{}, fmt.Errorf("record refresh for site %s: %w", site, err)
	}

	pagination := s.resolvePagination(ctx, site, response.Pagination, opts, saved.Saved)

	log.Info().
		Str("func", "noteSyncService.Refresh").
		Int("saved", saved.Saved).
		Int("failed", saved.Failed).
		Msg("site refreshed")

	return models.RefreshResult{
		SavedCount:  saved.Saved,
		ErrorCount:  saved.Failed,
		Pagination:  pagination,
		CacheStatus: response.CacheStatus,
	}, nil
}

// resolvePagination surfaces the server's pagination block verbatim when
// present and synthesizes one from the local record count otherwise. The two
// views are never reconciled when they disagree. The refresh itself has
// already committed by the time this runs, so a failed count only degrades
// the descriptor to the saved tally instead of failing the refresh.
func (s *noteSyncService) resolvePagination(ctx context.Context, site string, remote *models.Pagination, opts models.RefreshOptions, savedCount int) models.Pagination {
	if remote != nil {
		return *remote
	}

	count, err := s.notes.CountBySite(ctx, site)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "noteSyncService.resolvePagination").
			Str("site", site).
			Msg("count after refresh failed, synthesizing pagination from saved tally")
		count = savedCount
	}

	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = s.cacheCfg.PageSize
	}
	if perPage <= 0 {
		perPage = models.DefaultPageSize
	}
	page := opts.Page
	if page <= 0 {
		page = 1
	}

	return models.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalCount: count,
		TotalPages: (count + perPage - 1) / perPage,
	}
}

func (s *noteSyncService) report(ctx context.Context, traceID, site, stage string, cause error) {
	s.diagnostics.Report(ctx, models.DiagnosticEvent{
		TraceID: traceID,
		Site:    site,
		Stage:   stage,
		Message: cause.Error(),
	})
}

// LastRefresh implements NoteSyncService. A nil time with a nil error means
// the site has never been refreshed since the last full cache clear.
func (s *noteSyncService) LastRefresh(ctx context.Context, site string) (*time.Time, error) {
	status, err := s.syncStatus.LastRefresh(ctx, site)
	if err != nil {
		if errors.Is(err, store.ErrSyncStatusNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("last refresh for site %s: %w", site, err)
	}

	return &status.LastRefreshed, nil
}

func (s *noteSyncService) CountBySite(ctx context.Context, site string) (int, error) {
	return s.notes.CountBySite(ctx, site)
}

func (s *noteSyncService) DeleteAllForSite(ctx context.Context, site string) (int64, error) {
	return s.notes.DeleteAllForSite(ctx, site)
}

func (s *noteSyncService) ClearEverything(ctx context.Context) error {
	return s.notes.ClearEverything(ctx)
}
