package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junohealth/notecache/internal/logger"
	"github.com/junohealth/notecache/models"
)

const (
	insertNoteSQL  = `INSERT INTO notes (remote_id,site,client_id,event_time,created_time,content,note_type,care_areas,saved_at) VALUES (?,?,?,?,?,?,?,?,?)`
	selectNotesSQL = `SELECT id, remote_id, site, client_id, event_time, created_time, content, note_type, care_areas, saved_at FROM notes WHERE site = ?`
	// squirrel sorts Eq keys alphabetically, so remote_id precedes site.
	selectOneNoteSQL = `SELECT id, remote_id, site, client_id, event_time, created_time, content, note_type, care_areas, saved_at FROM notes WHERE remote_id = ? AND site = ? LIMIT 1`
	countNotesSQL    = `SELECT COUNT(*) FROM notes WHERE site = ?`
	deleteNotesSQL   = `DELETE FROM notes WHERE site = ?`
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func newTestRepo(t *testing.T, db *sql.DB) NoteRepository {
	t.Helper()
	return NewNoteRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var noteRowColumns = []string{
	"id", "remote_id", "site", "client_id", "event_time",
	"created_time", "content", "note_type", "care_areas", "saved_at",
}

func sampleNote(site, remoteID string) models.Note {
	now := time.Now().Truncate(time.Millisecond)
	return models.Note{
		RemoteID:    remoteID,
		Site:        site,
		ClientID:    "client-7",
		EventTime:   now.Add(-2 * time.Hour),
		CreatedTime: now.Add(-1 * time.Hour),
		Content:     "resident reviewed, no change to care plan",
		NoteType:    "progress",
		CareAreas:   models.CareAreaTags{"mobility", "nutrition"},
		SavedAt:     now,
	}
}

func noteRowArgs(id int64, n models.Note) []driver.Value {
	areas, _ := n.CareAreas.Value()
	return []driver.Value{
		id, n.RemoteID, n.Site, n.ClientID, n.EventTime,
		n.CreatedTime, n.Content, n.NoteType, areas, n.SavedAt,
	}
}

// ── Put ─────────────────────────────────────────────────────────────────────

func TestPut_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	note := sampleNote("Ramsay", "r-1")

	mock.ExpectExec(regexp.QuoteMeta(insertNoteSQL)).
		WillReturnResult(sqlmock.NewResult(17, 1))

	id, err := repo.Put(testContext(), note)

	require.NoError(t, err)
	assert.Equal(t, int64(17), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPut_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(insertNoteSQL)).
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Put(testContext(), sampleNote("Ramsay", "r-1"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save note")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── BulkPut ─────────────────────────────────────────────────────────────────

func TestBulkPut_AllSucceed(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	notes := []models.Note{
		sampleNote("Ramsay", "r-1"),
		sampleNote("Ramsay", "r-2"),
		sampleNote("Ramsay", "r-3"),
	}

	mock.ExpectBegin()
	for range notes {
		mock.ExpectExec(regexp.QuoteMeta(insertNoteSQL)).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	result, err := repo.BulkPut(testContext(), notes)

	require.NoError(t, err)
	assert.Equal(t, models.BulkResult{Saved: 3, Failed: 0}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestBulkPut_PartialFailure verifies the best-effort batch policy: a
// rejected record is counted, the rest of the batch still commits, and the
// tallies always sum to the batch size.
func TestBulkPut_PartialFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	notes := []models.Note{
		sampleNote("Ramsay", "r-1"),
		sampleNote("Ramsay", "r-2"),
		sampleNote("Ramsay", "r-3"),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertNoteSQL)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertNoteSQL)).
		WillReturnError(errors.New("NOT NULL constraint failed"))
	mock.ExpectExec(regexp.QuoteMeta(insertNoteSQL)).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	result, err := repo.BulkPut(testContext(), notes)

	require.NoError(t, err)
	assert.Equal(t, models.BulkResult{Saved: 2, Failed: 1}, result)
	assert.Equal(t, len(notes), result.Saved+result.Failed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkPut_EmptyBatch(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	result, err := repo.BulkPut(testContext(), nil)

	require.NoError(t, err)
	assert.Equal(t, models.BulkResult{}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkPut_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	_, err := repo.BulkPut(testContext(), []models.Note{sampleNote("Ramsay", "r-1")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin bulk insert transaction")
}

// ── GetBySite ───────────────────────────────────────────────────────────────

func TestGetBySite_ReturnsRows(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	first := sampleNote("Ramsay", "r-1")
	second := sampleNote("Ramsay", "r-2")

	rows := sqlmock.NewRows(noteRowColumns).
		AddRow(noteRowArgs(1, first)...).
		AddRow(noteRowArgs(2, second)...)

	mock.ExpectQuery(regexp.QuoteMeta(selectNotesSQL)).
		WithArgs("Ramsay").
		WillReturnRows(rows)

	notes, err := repo.GetBySite(testContext(), "Ramsay")

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, int64(1), notes[0].ID)
	assert.Equal(t, "r-1", notes[0].RemoteID)
	assert.Equal(t, models.CareAreaTags{"mobility", "nutrition"}, notes[0].CareAreas)
	assert.Equal(t, "Ramsay", notes[1].Site)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySite_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectNotesSQL)).
		WithArgs("Nowhere").
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	notes, err := repo.GetBySite(testContext(), "Nowhere")

	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestGetBySite_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectNotesSQL)).
		WillReturnError(errors.New("database is locked"))

	_, err := repo.GetBySite(testContext(), "Ramsay")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query notes for site")
}

// ── GetOne ──────────────────────────────────────────────────────────────────

func TestGetOne_Found(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	note := sampleNote("Ramsay", "r-9")
	rows := sqlmock.NewRows(noteRowColumns).AddRow(noteRowArgs(9, note)...)

	mock.ExpectQuery(regexp.QuoteMeta(selectOneNoteSQL)).
		WithArgs("r-9", "Ramsay").
		WillReturnRows(rows)

	got, err := repo.GetOne(testContext(), "Ramsay", "r-9")

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, "r-9", got.RemoteID)
}

func TestGetOne_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectOneNoteSQL)).
		WithArgs("missing", "Ramsay").
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	_, err := repo.GetOne(testContext(), "Ramsay", "missing")

	assert.ErrorIs(t, err, ErrNoteNotFound)
}

// ── CountBySite ─────────────────────────────────────────────────────────────

func TestCountBySite(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(countNotesSQL)).
		WithArgs("Ramsay").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountBySite(testContext(), "Ramsay")

	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

// ── DeleteAllForSite ────────────────────────────────────────────────────────

func TestDeleteAllForSite(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(deleteNotesSQL)).
		WithArgs("Ramsay").
		WillReturnResult(sqlmock.NewResult(0, 12))

	deleted, err := repo.DeleteAllForSite(testContext(), "Ramsay")

	require.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
}

func TestDeleteAllForSite_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(deleteNotesSQL)).
		WillReturnError(errors.New("database is locked"))

	_, err := repo.DeleteAllForSite(testContext(), "Ramsay")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to purge notes")
}

// ── ClearEverything ─────────────────────────────────────────────────────────

func TestClearEverything_WipesBothCollections(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM notes`)).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM sync_status`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.ClearEverything(testContext()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearEverything_RollsBackOnError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM notes`)).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := repo.ClearEverything(testContext())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear notes")
	assert.NoError(t, mock.ExpectationsWereMet())
}
