package models

import "time"

// Sort field names accepted by QueryOptions.SortBy. Any other value falls
// back to SortByEventTime.
const (
	SortByEventTime   = "event_time"
	SortByCreatedTime = "created_time"
	SortBySavedAt     = "saved_at"
	SortByClientID    = "client_id"
	SortByNoteType    = "note_type"
	SortByRemoteID    = "remote_id"
)

// Sort directions accepted by QueryOptions.SortOrder.
const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// Default pagination values applied by the query engine when the caller
// leaves the corresponding option unset.
const (
	DefaultQueryLimit = 100
	DefaultPageSize   = 50
)

// QueryOptions describes a filtered, sorted, paginated read of one site's
// cached notes. The zero value asks for the first 100 notes ordered by
// event time, most recent first.
type QueryOptions struct {
	// Limit is the maximum number of notes to return. Nil means
	// DefaultQueryLimit; an explicit zero returns an empty window while
	// still reporting the total count.
	Limit *int `json:"limit"`

	// Offset is the number of matching notes to skip.
	Offset int `json:"offset"`

	// SortBy names the attribute to order by. Date-valued attributes are
	// compared as instants, all others as strings.
	SortBy string `json:"sort_by"`

	// SortOrder is SortAscending or SortDescending.
	SortOrder string `json:"sort_order"`

	// ClientID, when non-empty, restricts results to one client.
	ClientID string `json:"client_id"`

	// StartDate and EndDate bound the note's event time, inclusive on both
	// ends. A nil bound is open.
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// QueryResult is one page of cached notes together with pre-slice totals.
type QueryResult struct {
	// Notes is the requested window, already filtered, sorted, and sliced.
	Notes []Note `json:"notes"`

	// TotalCount is the number of notes matching the filters before the
	// offset/limit window was applied.
	TotalCount int `json:"total_count"`

	// HasMore reports whether matching notes exist beyond this window.
	HasMore bool `json:"has_more"`
}
