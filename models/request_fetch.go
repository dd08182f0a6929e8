package models

// FetchRequest describes one read from the remote note source: the site to
// fetch, the look-back window in days, an optional page selection, and an
// optional force flag that bypasses server-side response caching.
type FetchRequest struct {
	Site    string `json:"site"`
	Days    int    `json:"days"`
	Page    int    `json:"page,omitempty"`
	PerPage int    `json:"per_page,omitempty"`
	Force   bool   `json:"force,omitempty"`
}

// DiagnosticEvent is a best-effort failure report sent to the remote
// diagnostics sink when a refresh fails. Losing one of these is acceptable;
// the sink exists for observability, not correctness.
type DiagnosticEvent struct {
	TraceID string `json:"trace_id"`
	Site    string `json:"site"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}
