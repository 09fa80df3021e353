// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServicesProvided is returned by NewHandlers when it is called without
// the service layer. No route can be served in that case, so the
// application fails at startup.
var errNoServicesProvided = errors.New("no services provided")
