package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Note is one cached clinical progress-note record. Records are owned by the
// cache: they are created during a refresh, never patched in place, and
// destroyed when their site is purged or the whole cache is cleared.
type Note struct {
	// ID is the store-assigned sequence key, unique per physical record.
	// It is not the remote service's identifier.
	ID int64 `json:"id"`

	// RemoteID is the identifier the remote service uses for this note.
	// It is not guaranteed unique across sites.
	RemoteID string `json:"remote_id"`

	// Site is the owning care-facility site, stamped at write time.
	// Every stored record carries a non-empty site; the query layer relies
	// on it for partition isolation.
	Site string `json:"site"`

	// ClientID identifies the client (resident/patient) the note concerns.
	ClientID string `json:"client_id"`

	// EventTime is when the clinical event occurred.
	EventTime time.Time `json:"event_time"`

	// CreatedTime is when the note was created in the system of record.
	CreatedTime time.Time `json:"created_time"`

	// Content holds the free-text body of the note.
	Content string `json:"content"`

	// NoteType references the note's classification / event type.
	NoteType string `json:"note_type"`

	// CareAreas is the set of care-area tags attached to the note.
	CareAreas CareAreaTags `json:"care_areas"`

	// SavedAt is the local-save timestamp, added when the refresh wrote
	// the record into the cache.
	SavedAt time.Time `json:"saved_at"`
}

// RemoteNote is the wire shape of a single note as returned by the remote
// source. It carries no site and no local bookkeeping fields; the sync
// engine stamps those before handing the record to the store.
type RemoteNote struct {
	RemoteID    string       `json:"id"`
	ClientID    string       `json:"client_id"`
	EventTime   time.Time    `json:"event_time"`
	CreatedTime time.Time    `json:"created_time"`
	Content     string       `json:"content"`
	NoteType    string       `json:"note_type"`
	CareAreas   CareAreaTags `json:"care_areas"`
}

// ToNote converts the wire record into a storable Note owned by site, with
// savedAt as the local-save stamp.
func (r RemoteNote) ToNote(site string, savedAt time.Time) Note {
	return Note{
		RemoteID:    r.RemoteID,
		Site:        site,
		ClientID:    r.ClientID,
		EventTime:   r.EventTime,
		CreatedTime: r.CreatedTime,
		Content:     r.Content,
		NoteType:    r.NoteType,
		CareAreas:   r.CareAreas,
		SavedAt:     savedAt,
	}
}

// CareAreaTags is a set of care-area tags persisted as a JSON array in a
// single TEXT column.
type CareAreaTags []string

// Value implements driver.Valuer.
func (c CareAreaTags) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	payload, err := json.Marshal([]string(c))
	if err != nil {
		return nil, fmt.Errorf("encode care area tags: %w", err)
	}
	return string(payload), nil
}

// Scan implements sql.Scanner.
func (c *CareAreaTags) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = nil
		return nil
	case string:
		return c.decode([]byte(v))
	case []byte:
		return c.decode(v)
	default:
		return fmt.Errorf("care area tags: unsupported source type %T", src)
	}
}

func (c *CareAreaTags) decode(payload []byte) error {
	if len(payload) == 0 {
		*c = nil
		return nil
	}
	var tags []string
	if err := json.Unmarshal(payload, &tags); err != nil {
		return fmt.Errorf("decode care area tags: %w", err)
	}
	*c = tags
	return nil
}
