// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// statusWriter records the status and body size of a response. The access
// log and metrics read them after the handler returns; the error boundary
// uses written to decide whether an error page can still be sent.
type statusWriter struct {
	http.ResponseWriter

	status  int
	size    int
	written bool
}

// WriteHeader forwards only the first status code.
func (w *statusWriter) WriteHeader(statusCode int) {
	if w.written {
		return
	}
	w.status = statusCode
	w.written = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap exposes the wrapped writer to [http.ResponseController].
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// statusOr returns the recorded status, or fallback when nothing was written.
func (w *statusWriter) statusOr(fallback int) int {
	if !w.written {
		return fallback
	}
	return w.status
}

// headerWritten walks the writer chain down to the first writer that
// tracks the response status.
func headerWritten(w http.ResponseWriter) bool {
	for {
		switch rw := w.(type) {
		case *statusWriter:
			return rw.written
		case interface{ Unwrap() http.ResponseWriter }:
			w = rw.Unwrap()
		default:
			return false
		}
	}
}
