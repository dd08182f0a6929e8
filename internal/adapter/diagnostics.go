// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juno Health

package adapter

import (
	"context"

	"github.com/junohealth/notecache/internal/config"
	"github.com/junohealth/notecache/internal/logger"
	"github.com/junohealth/notecache/internal/utils"
	"github.com/junohealth/notecache/models"
)

type httpDiagnosticSink struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

type nopDiagnosticSink struct{}

// NewDiagnosticSink constructs a [DiagnosticSink] for the configured
// diagnostics endpoint. When adapterCfg.DiagnosticsURL is empty a no-op sink
// is returned, so callers can always report without nil checks.
func NewDiagnosticSink(adapterCfg config.ClientAdapter, logger *logger.Logger) DiagnosticSink {
	if adapterCfg.DiagnosticsURL == "" {
		return nopDiagnosticSink{}
	}

	baseURL, err := normalizeBaseURL(adapterCfg.DiagnosticsURL)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("func", "NewDiagnosticSink").
			Msg("invalid diagnostics url, failure reports disabled")
		return nopDiagnosticSink{}
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpDiagnosticSink{client: client, logger: logger}
}

// Report implements [DiagnosticSink]. Delivery is best effort: transport and
// server errors are logged at debug level and never returned, so a broken
// diagnostics endpoint cannot affect refresh handling.
func (h *httpDiagnosticSink) Report(ctx context.Context, event models.DiagnosticEvent) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post("/api/diagnostics")
	if err != nil {
		log.Debug().
			Err(err).
			Str("func", "httpDiagnosticSink.Report").
			Str("site", event.Site).
			Msg("failure report not delivered")
		return
	}
	if resp.IsError() {
		log.Debug().
			Str("func", "httpDiagnosticSink.Report").
			Str("site", event.Site).
			Int("status", resp.StatusCode()).
			Msg("diagnostics endpoint rejected failure report")
	}
}

func (nopDiagnosticSink) Report(context.Context, models.DiagnosticEvent) {}
