// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrTLSMaterialMissing is returned when the certificate or key file
	// cannot be read and the startup policy does not allow plain HTTP.
	ErrTLSMaterialMissing = errors.New("TLS certificate or key is missing")

	errNoHandlerIsCreated = errors.New("no HTTP handler is created")
)
