// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juno Health

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/junohealth/notecache/models"
)

// noteColumns is the canonical column order used by every note query.
var noteColumns = []string{
	"id",
	"remote_id",
	"site",
	"client_id",
	"event_time",
	"created_time",
	"content",
	"note_type",
	"care_areas",
	"saved_at",
}

func insertNoteQuery(note models.Note) (string, []any, error) {
	return sq.Insert("notes").
		Columns(noteColumns[1:]...).
		Values(
			note.RemoteID,
			note.Site,
			note.ClientID,
			note.EventTime,
			note.CreatedTime,
			note.Content,
			note.NoteType,
			note.CareAreas,
			note.SavedAt,
		).
		ToSql()
}

func selectNotesBySiteQuery(site string) (string, []any, error) {
	return sq.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"site": site}).
		ToSql()
}

func selectOneNoteQuery(site, remoteID string) (string, []any, error) {
	return sq.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"site": site, "remote_id": remoteID}).
		Limit(1).
		ToSql()
}

func countNotesBySiteQuery(site string) (string, []any, error) {
	return sq.Select("COUNT(*)").
		From("notes").
		Where(sq.Eq{"site": site}).
		ToSql()
}

func deleteNotesBySiteQuery(site string) (string, []any, error) {
	return sq.Delete("notes").
		Where(sq.Eq{"site": site}).
		ToSql()
}

func upsertSyncStatusQuery(site string, refreshedAt, updatedAt time.Time) (string, []any, error) {
	return sq.Insert("sync_status").
		Columns("site", "last_refreshed", "updated_at").
		Values(site, refreshedAt, updatedAt).
		Suffix("ON CONFLICT(site) DO UPDATE SET last_refreshed = excluded.last_refreshed, updated_at = excluded.updated_at").
		ToSql()
}

func selectSyncStatusQuery(site string) (string, []any, error) {
	return sq.Select("site", "last_refreshed", "updated_at").
		From("sync_status").
		Where(sq.Eq{"site": site}).
		ToSql()
}
