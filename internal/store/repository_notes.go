package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/junohealth/notecache/internal/logger"
	"github.com/junohealth/notecache/models"
)

type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

func (n *noteRepository) Put(ctx context.Context, note models.Note) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertNoteQuery(note)
	if err != nil {
		return 0, fmt.Errorf("build insert note query: %w", err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Put").
			Str("site", note.Site).
			Str("remote_id", note.RemoteID).
			Msg("failed to execute insert for note")
		return 0, fmt.Errorf("failed to save note (remote_id=%s): %w", note.RemoteID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Put").
			Str("site", note.Site).
			Msg("failed to read assigned note key")
		return 0, fmt.Errorf("failed to read assigned note key: %w", err)
	}

	return id, nil
}

func (n *noteRepository) BulkPut(ctx context.Context, notes []models.Note) (models.BulkResult, error) {
	log := logger.FromContext(ctx)

	tx, err := n.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.BulkPut").
			Msg("failed to begin bulk insert transaction")
		return models.BulkResult{}, fmt.Errorf("failed to begin bulk insert transaction: %w", err)
	}
	defer tx.Rollback()

	var result models.BulkResult
	for _, note := range notes {
		query, args, buildErr := insertNoteQuery(note)
		if buildErr != nil {
			result.Failed++
			continue
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			// best-effort batch: count the failure and keep going, the
			// successes still commit
			log.Warn().
				Err(execErr).
				Str("func", "noteRepository.BulkPut").
				Str("site", note.Site).
				Str("remote_id", note.RemoteID).
				Msg("note rejected during bulk insert")
			result.Failed++
			continue
		}

		result.Saved++
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.BulkPut").
			Msg("failed to commit bulk insert transaction")
		return models.BulkResult{}, fmt.Errorf("failed to commit bulk insert transaction: %w", err)
	}

	return result, nil
}

func (n *noteRepository) GetBySite(ctx context.Context, site string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectNotesBySiteQuery(site)
	if err != nil {
		return nil, fmt.Errorf("build select notes query: %w", err)
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetBySite").
			Str("site", site).
			Msg("failed to execute query for getting site notes")
		return nil, fmt.Errorf("failed to query notes for site %s: %w", site, err)
	}
	defer rows.Close()

	var notes []models.Note

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(
			&note.ID,
			&note.RemoteID,
			&note.Site,
			&note.ClientID,
			&note.EventTime,
			&note.CreatedTime,
			&note.Content,
			&note.NoteType,
			&note.CareAreas,
			&note.SavedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.GetBySite").
				Str("site", site).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("failed to scan note row: %w", scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.GetBySite").
			Str("site", site).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating note rows: %w", rowsErr)
	}

	return notes, nil
}

func (n *noteRepository) GetOne(ctx context.Context, site, remoteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectOneNoteQuery(site, remoteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("build select note query: %w", err)
	}

	var note models.Note
	row := n.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(
		&note.ID,
		&note.RemoteID,
		&note.Site,
		&note.ClientID,
		&note.EventTime,
		&note.CreatedTime,
		&note.Content,
		&note.NoteType,
		&note.CareAreas,
		&note.SavedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(scanErr).
			Str("func", "noteRepository.GetOne").
			Str("site", site).
			Str("remote_id", remoteID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("failed to scan note row: %w", scanErr)
	}

	return note, nil
}

func (n *noteRepository) CountBySite(ctx context.Context, site string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := countNotesBySiteQuery(site)
	if err != nil {
		return 0, fmt.Errorf("build count notes query: %w", err)
	}

	var count int
	if err = n.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CountBySite").
			Str("site", site).
			Msg("failed to count notes for site")
		return 0, fmt.Errorf("failed to count notes for site %s: %w", site, err)
	}

	return count, nil
}

func (n *noteRepository) DeleteAllForSite(ctx context.Context, site string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := deleteNotesBySiteQuery(site)
	if err != nil {
		return 0, fmt.Errorf("build delete notes query: %w", err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteAllForSite").
			Str("site", site).
			Msg("failed to execute purge for site")
		return 0, fmt.Errorf("failed to purge notes for site %s: %w", site, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteAllForSite").
			Str("site", site).
			Msg("failed to get rows affected after purge")
		return 0, fmt.Errorf("failed to get rows affected after purge: %w", err)
	}

	return deleted, nil
}

func (n *noteRepository) ClearEverything(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := n.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ClearEverything").
			Msg("failed to begin clear transaction")
		return fmt.Errorf("failed to begin clear transaction: %w", err)
	}
	defer tx.Rollback()

	// notes and the freshness ledger go together: a surviving ledger entry
	// would claim freshness for data that no longer exists
	if _, err = tx.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		log.Err(err).
			Str("func", "noteRepository.ClearEverything").
			Msg("failed to clear notes")
		return fmt.Errorf("failed to clear notes: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM sync_status`); err != nil {
		log.Err(err).
			Str("func", "noteRepository.ClearEverything").
			Msg("failed to clear sync status")
		return fmt.Errorf("failed to clear sync status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.ClearEverything").
			Msg("failed to commit clear transaction")
		return fmt.Errorf("failed to commit clear transaction: %w", err)
	}

	return nil
}
