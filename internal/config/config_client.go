package config

import (
	"fmt"
	"time"
)

// Defaults applied by GetClientConfig for fields left unset by every source.
const (
	DefaultRequestTimeout  = 30 * time.Second
	DefaultLookbackDays    = 30
	DefaultPageSize        = 50
	DefaultQueryLimit      = 100
	DefaultRefreshInterval = 15 * time.Minute
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the remote note source endpoint.
	BaseURL string
	// DiagnosticsURL is the optional failure-report endpoint.
	DiagnosticsURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientCache groups refresh and query tuning settings.
type ClientCache struct {
	// LookbackDays is the default refresh look-back window.
	LookbackDays int
	// PageSize is the page size for locally synthesized pagination.
	PageSize int
	// QueryLimit is the default local query page size.
	QueryLimit int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the background refresh job runs.
	RefreshInterval time.Duration
	// Sites is the list of sites the background job keeps fresh.
	Sites []string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Cache contains refresh and query tuning settings.
	Cache ClientCache
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for unset tuning knobs,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			DiagnosticsURL: cfg.Adapter.DiagnosticsURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Cache: ClientCache{
			LookbackDays: cfg.Cache.LookbackDays,
			PageSize:     cfg.Cache.PageSize,
			QueryLimit:   cfg.Cache.QueryLimit,
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
			Sites:           cfg.Workers.Sites,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Cache.LookbackDays == 0 {
		cfg.Cache.LookbackDays = DefaultLookbackDays
	}
	if cfg.Cache.PageSize == 0 {
		cfg.Cache.PageSize = DefaultPageSize
	}
	if cfg.Cache.QueryLimit == 0 {
		cfg.Cache.QueryLimit = DefaultQueryLimit
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
}
