// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juno Health

// Package adapter provides transport-layer abstractions for communicating
// with the remote progress-note service.
//
// The primary abstraction is [RemoteSource], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteSource]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrRemoteUnavailable] for 5xx, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/junohealth/notecache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteSource is the paginated read source the cache is refreshed from.
// The cache never writes through this interface; the remote service is the
// system of record and the local store is a disposable projection of it.
type RemoteSource interface {
	// FetchNotes requests one snapshot of notes for the site and look-back
	// window described by req. The returned envelope carries the records
	// plus optional pagination and cache-status descriptors. A response
	// with Success=false is converted into an [ErrRemoteFailure] error, so
	// a nil error always means a usable snapshot.
	FetchNotes(ctx context.Context, req models.FetchRequest) (models.NotesResponse, error)
}

// DiagnosticSink receives best-effort failure reports from the sync engine.
// Implementations must never let a reporting failure propagate: losing a
// diagnostic event is always acceptable.
type DiagnosticSink interface {
	// Report delivers one failure event. Errors are swallowed by the
	// implementation; the method exists purely for observability.
	Report(ctx context.Context, event models.DiagnosticEvent)
}
