// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juno Health

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// notecache application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote note source endpoint and timeout settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Cache holds refresh and query tuning knobs.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds background refresh job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// BaseURL is the HTTP endpoint of the remote note source.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// DiagnosticsURL is the optional endpoint refresh failures are reported
	// to on a best-effort basis. Empty disables remote diagnostics.
	// Env: ADAPTER_DIAGNOSTICS_URL
	DiagnosticsURL string `env:"DIAGNOSTICS_URL"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local database connection settings.
type DB struct {
	// DSN is the SQLite file path used for the local cache.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Cache holds refresh and query tuning knobs.
type Cache struct {
	// LookbackDays is the default look-back window requested from the
	// remote source during a refresh.
	// Env: CACHE_LOOKBACK_DAYS
	LookbackDays int `env:"LOOKBACK_DAYS"`

	// PageSize is the page size used when pagination metadata has to be
	// synthesized locally.
	// Env: CACHE_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// QueryLimit is the default page size of local queries.
	// Env: CACHE_QUERY_LIMIT
	QueryLimit int `env:"QUERY_LIMIT"`
}

// Workers contains background refresh job settings.
type Workers struct {
	// RefreshInterval defines how often the background job re-refreshes
	// the configured sites. Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// Sites is the list of sites the background job keeps fresh.
	// Env: WORKERS_SITES (comma-separated)
	Sites []string `env:"SITES" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all supported sources.
//
// Sources are merged with mergo in the order env → flags → JSON file, with
// earlier sources taking precedence for fields they set.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
