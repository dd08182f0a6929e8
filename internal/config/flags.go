package config

import (
	"flag"
	"strings"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-server remote note source base URL
//	-diagnostics remote diagnostics endpoint URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d local cache database path
//	-lookback-days default refresh look-back window in days
//	-page-size page size for locally synthesized pagination
//	-query-limit default local query page size
//	-refresh-interval background refresh interval (e.g., "15m")
//	-sites comma-separated sites kept fresh by the background job
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var diagnosticsURL string
	var requestTimeout time.Duration
	var databaseDSN string
	var lookbackDays int
	var pageSize int
	var queryLimit int
	var refreshInterval time.Duration
	var sites string
	var jsonConfigPath string

	flag.StringVar(&baseURL, "server", "", "Remote note source base URL")
	flag.StringVar(&diagnosticsURL, "diagnostics", "", "Diagnostics endpoint URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database path")
	flag.IntVar(&lookbackDays, "lookback-days", 0, "Default refresh look-back window in days")
	flag.IntVar(&pageSize, "page-size", 0, "Synthesized pagination page size")
	flag.IntVar(&queryLimit, "query-limit", 0, "Default local query page size")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 15m)")
	flag.StringVar(&sites, "sites", "", "Comma-separated sites for the background refresh job")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			DiagnosticsURL: diagnosticsURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Cache: Cache{
			LookbackDays: lookbackDays,
			PageSize:     pageSize,
			QueryLimit:   queryLimit,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
			Sites:           splitSites(sites),
		},
		JSONFilePath: jsonConfigPath,
	}
}

func splitSites(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	sites := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sites = append(sites, s)
		}
	}
	return sites
}
