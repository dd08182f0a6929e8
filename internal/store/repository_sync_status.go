package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/junohealth/notecache/internal/logger"
	"github.com/junohealth/notecache/models"
)

type syncStatusRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStatusRepository(db *DB, logger *logger.Logger) SyncStatusRepository {
	return &syncStatusRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *syncStatusRepository) RecordRefresh(ctx context.Context, site string, refreshedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := upsertSyncStatusQuery(site, refreshedAt, time.Now())
	if err != nil {
		return fmt.Errorf("build upsert sync status query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "syncStatusRepository.RecordRefresh").
			Str("site", site).
			Msg("failed to execute upsert for sync status")
		return fmt.Errorf("failed to record refresh for site %s: %w", site, err)
	}

	return nil
}

func (s *syncStatusRepository) LastRefresh(ctx context.Context, site string) (models.SyncStatus, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectSyncStatusQuery(site)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("build select sync status query: %w", err)
	}

	var status models.SyncStatus
	row := s.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&status.Site, &status.LastRefreshed, &status.UpdatedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.SyncStatus{}, ErrSyncStatusNotFound
		}
		log.Err(scanErr).
			Str("func", "syncStatusRepository.LastRefresh").
			Str("site", site).
			Msg("failed to scan sync status row")
		return models.SyncStatus{}, fmt.Errorf("failed to scan sync status row: %w", scanErr)
	}

	return status, nil
}
