package models

import "time"

// Cache-status descriptors the remote source may attach to a response.
const (
	CacheSourceCached   = "cached"
	CacheSourceAPIFresh = "api-fresh"
	CacheSourceError    = "error"
)

// NotesResponse is the envelope returned by the remote note source for a
// fetch request. On failure Success is false and Error carries the server's
// message; Notes, Pagination, and CacheStatus are only meaningful when
// Success is true.
type NotesResponse struct {
	// Success reports whether the remote service handled the request.
	Success bool `json:"success"`

	// Notes is the snapshot of note records for the requested window.
	Notes []RemoteNote `json:"notes"`

	// Pagination is the server-side pagination descriptor, if the server
	// chose to paginate. It is surfaced to callers verbatim.
	Pagination *Pagination `json:"pagination,omitempty"`

	// CacheStatus describes whether the server answered from its own cache
	// and how old that cache is. Display-only.
	CacheStatus *CacheStatus `json:"cache_status,omitempty"`

	// FetchedAt is the server-reported fetch instant, used as the freshness
	// stamp when present.
	FetchedAt *time.Time `json:"fetched_at,omitempty"`

	// Error is the server's failure message when Success is false.
	Error string `json:"error,omitempty"`
}

// Pagination describes one page of a larger result set. It is either
// received from the remote source or synthesized locally from the cached
// record count.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// CacheStatus is the server-supplied freshness descriptor for UI display.
type CacheStatus struct {
	// Source is one of CacheSourceCached, CacheSourceAPIFresh,
	// CacheSourceError.
	Source string `json:"source"`

	// AgeHours is the age of the server-side cache in hours.
	AgeHours float64 `json:"age_hours"`
}
