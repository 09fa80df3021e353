// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer. Callers can match against
// them with [errors.Is].
var (
	// ErrNotFound is returned by route handlers when a path parameter does
	// not identify an existing resource.
	ErrNotFound = errors.New("resource not found")

	// ErrPanic wraps a value recovered from a panicking handler.
	ErrPanic = errors.New("handler panicked")

	// ErrNoSession is returned when a handler that needs the session runs
	// without the session middleware.
	ErrNoSession = errors.New("no session in request context")

	// ErrNoUser is returned when a handler that needs the resolved user runs
	// for an anonymous request.
	ErrNoUser = errors.New("no user in request context")
)

// ErrUnknownView is returned when a handler renders a template that was
// not parsed at startup.
var ErrUnknownView = errors.New("unknown view")
