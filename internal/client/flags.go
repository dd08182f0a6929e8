package client

import (
	"flag"
	"fmt"
	"time"
)

// CommandFlags holds the one-shot command selection parsed from the command
// line. At most one of Refresh, Query, Status, Purge, and Clear is expected;
// the first non-empty one in that order wins.
type CommandFlags struct {
	// Refresh names a site to fully refresh from the remote source.
	Refresh string
	// Query names a site whose cached notes should be listed.
	Query string
	// Status names a site whose freshness and record count to print.
	Status string
	// Purge names a site whose cached notes should be dropped.
	Purge string
	// Clear wipes all cached notes and freshness entries.
	Clear bool

	// Refresh tuning.
	Days    int
	Page    int
	PerPage int
	Force   bool

	// Query tuning.
	ClientID string
	From     string
	To       string
	Limit    int
	Offset   int
	SortBy   string
	Order    string
}

// RegisterCommandFlags registers the command flags on the default FlagSet
// and returns the destination struct. It does not parse: the configuration
// layer owns the single flag.Parse call, so this must run before
// config.GetClientConfig.
func RegisterCommandFlags() *CommandFlags {
	cmd := &CommandFlags{}

	flag.StringVar(&cmd.Refresh, "refresh", "", "Refresh the given site from the remote source")
	flag.StringVar(&cmd.Query, "query", "", "List cached notes for the given site")
	flag.StringVar(&cmd.Status, "status", "", "Print freshness and record count for the given site")
	flag.StringVar(&cmd.Purge, "purge", "", "Drop all cached notes for the given site")
	flag.BoolVar(&cmd.Clear, "clear", false, "Wipe all cached notes and freshness entries")

	flag.IntVar(&cmd.Days, "days", 0, "Refresh look-back window in days (0 uses the configured default)")
	flag.IntVar(&cmd.Page, "page", 0, "Remote page to fetch (0 leaves pagination to the server)")
	flag.IntVar(&cmd.PerPage, "per-page", 0, "Remote page size (0 leaves pagination to the server)")
	flag.BoolVar(&cmd.Force, "force", false, "Ask the remote source to bypass its response cache")

	flag.StringVar(&cmd.ClientID, "client", "", "Restrict query results to one client")
	flag.StringVar(&cmd.From, "from", "", "Inclusive lower event-time bound (RFC 3339 or YYYY-MM-DD)")
	flag.StringVar(&cmd.To, "to", "", "Inclusive upper event-time bound (RFC 3339 or YYYY-MM-DD)")
	flag.IntVar(&cmd.Limit, "limit", -1, "Maximum notes to return (-1 uses the configured default)")
	flag.IntVar(&cmd.Offset, "offset", 0, "Matching notes to skip")
	flag.StringVar(&cmd.SortBy, "sort", "", "Sort attribute (event_time, created_time, saved_at, client_id, note_type, remote_id)")
	flag.StringVar(&cmd.Order, "order", "", "Sort direction (asc or desc)")

	return cmd
}

// parseBound accepts an RFC 3339 timestamp or a bare date.
func parseBound(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return &ts, nil
	}
	ts, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid time bound %q: %w", raw, err)
	}
	return &ts, nil
}
