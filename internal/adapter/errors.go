package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the remote service rejects the
	// request for lack of valid credentials.
	ErrUnauthorized = errors.New("remote source unauthorized")

	// ErrNotFound is returned when the remote service does not know the
	// requested resource.
	ErrNotFound = errors.New("remote resource not found")

	// ErrRemoteUnavailable is returned on 5xx responses and signals a
	// server-side outage the caller may retry later.
	ErrRemoteUnavailable = errors.New("remote source unavailable")

	// ErrRemoteFailure is returned when the remote service answered 2xx
	// but reported Success=false in the envelope.
	ErrRemoteFailure = errors.New("remote source reported failure")
)
