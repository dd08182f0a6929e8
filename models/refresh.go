package models

// RefreshOptions tunes one full-refresh cycle for a site.
type RefreshOptions struct {
	// Days is the look-back window requested from the remote source.
	Days int `json:"days"`

	// Page and PerPage select one page of the remote result set. Zero
	// values leave pagination to the server.
	Page    int `json:"page"`
	PerPage int `json:"per_page"`

	// Force asks the remote source to bypass any server-side response
	// caching.
	Force bool `json:"force"`
}

// RefreshResult reports the outcome of a successful refresh.
type RefreshResult struct {
	// SavedCount and ErrorCount are the best-effort batch insert tallies;
	// they always sum to the number of records the remote source returned.
	SavedCount int `json:"saved_count"`
	ErrorCount int `json:"error_count"`

	// Pagination is the server-supplied descriptor when present, otherwise
	// one synthesized from the local record count. The two are never
	// reconciled when they disagree.
	Pagination Pagination `json:"pagination"`

	// CacheStatus is passed through from the remote response when present.
	CacheStatus *CacheStatus `json:"cache_status,omitempty"`
}

// BulkResult is the per-item outcome accumulator of a best-effort batch
// write: the batch commits whatever succeeded rather than aborting on the
// first rejected record.
type BulkResult struct {
	Saved  int `json:"saved"`
	Failed int `json:"failed"`
}
