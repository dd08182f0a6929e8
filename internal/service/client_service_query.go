// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juno Health

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/junohealth/notecache/internal/config"
	"github.com/junohealth/notecache/internal/logger"
	"github.com/junohealth/notecache/internal/store"
	"github.com/junohealth/notecache/models"
)

type noteQueryService struct {
	notes        store.NoteRepository
	defaultLimit int

	logger *logger.Logger
}

func NewNoteQueryService(notes store.NoteRepository, cacheCfg config.ClientCache, logger *logger.Logger) NoteQueryService {
	defaultLimit := cacheCfg.QueryLimit
	if defaultLimit <= 0 {
		defaultLimit = models.DefaultQueryLimit
	}
	return &noteQueryService{notes: notes, defaultLimit: defaultLimit, logger: logger}
}

// Query implements NoteQueryService. The whole site partition is loaded and
// filtered in memory; site partitions are small enough that pushing the
// filters into SQL has not been worth the extra query surface.
func (s *noteQueryService) Query(ctx context.Context, site string, opts models.QueryOptions) (models.QueryResult, error) {
	log := logger.FromContext(ctx)

	notes, err := s.notes.GetBySite(ctx, site)
	if err != nil {
		log.Err(err).
			Str("func", "noteQueryService.Query").
			Str("site", site).
			Msg("error during local notes read")
		return models.QueryResult{}, fmt.Errorf("get notes for site %s: %w", site, err)
	}

	matched := filterNotes(notes, opts)
	sortNotes(matched, opts.SortBy, opts.SortOrder)

	total := len(matched)
	limit := s.defaultLimit
	if opts.Limit != nil {
		limit = *opts.Limit
	}

	window := sliceWindow(matched, opts.Offset, limit)

	return models.QueryResult{
		Notes:      window,
		TotalCount: total,
		HasMore:    opts.Offset+limit < total,
	}, nil
}

func filterNotes(notes []models.Note, opts models.QueryOptions) []models.Note {
	matched := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if opts.ClientID != "" && note.ClientID != opts.ClientID {
			continue
		}
		if opts.StartDate != nil && note.EventTime.Before(*opts.StartDate) {
			continue
		}
		if opts.EndDate != nil && note.EventTime.After(*opts.EndDate) {
			continue
		}
		matched = append(matched, note)
	}
	return matched
}

// sortNotes orders notes in place. Date-valued attributes are compared as
// instants; everything else falls back to string order. An unknown sortBy is
// treated as event time, an unknown order as descending.
func sortNotes(notes []models.Note, sortBy, sortOrder string) {
	ascending := sortOrder == models.SortAscending

	sort.SliceStable(notes, func(i, j int) bool {
		before := notesLess(notes[i], notes[j], sortBy)
		if ascending {
			return before
		}
		return notesLess(notes[j], notes[i], sortBy)
	})
}

func notesLess(a, b models.Note, sortBy string) bool {
	switch sortBy {
	case models.SortByCreatedTime:
		return a.CreatedTime.Before(b.CreatedTime)
	case models.SortBySavedAt:
		return a.SavedAt.Before(b.SavedAt)
	case models.SortByClientID:
		return a.ClientID < b.ClientID
	case models.SortByNoteType:
		return a.NoteType < b.NoteType
	case models.SortByRemoteID:
		return a.RemoteID < b.RemoteID
	default:
		return a.EventTime.Before(b.EventTime)
	}
}

func sliceWindow(notes []models.Note, offset, limit int) []models.Note {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(notes) {
		return []models.Note{}
	}

	end := offset + limit
	if end > len(notes) {
		end = len(notes)
	}
	return notes[offset:end]
}
