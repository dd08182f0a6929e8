// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juno Health

// Package client implements the one-shot command-line client runtime.
//
// It wires the cache services, the remote-source adapter, and the optional
// background refresh worker into a single process lifecycle and dispatches
// the command selected on the command line.
package client
