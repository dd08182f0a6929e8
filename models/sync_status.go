package models

import "time"

// SyncStatus is one site's freshness ledger entry. An entry exists for a
// site exactly when at least one refresh has completed successfully for it
// since the last full cache clear.
type SyncStatus struct {
	// Site is the care-facility site this entry belongs to.
	Site string `json:"site"`

	// LastRefreshed is the instant of the last successful refresh, taken
	// from the server's fetch timestamp when it supplied one.
	LastRefreshed time.Time `json:"last_refreshed"`

	// UpdatedAt is when this ledger row itself was last written.
	UpdatedAt time.Time `json:"updated_at"`
}
