package session

import (
	"context"
	"net/http"
)

// committingWriter runs commit once, right before the first WriteHeader or
// Write reaches the wrapped writer, so that session cookies can still be
// added to the headers.
type committingWriter struct {
	http.ResponseWriter
	commit    func(w http.ResponseWriter) error
	committed bool
	err       error
}

func (w *committingWriter) commitOnce() {
	if w.committed {
		return
	}
	w.committed = true
	w.err = w.commit(w.ResponseWriter)
}

func (w *committingWriter) WriteHeader(statusCode int) {
	w.commitOnce()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *committingWriter) Write(b []byte) (int, error) {
	w.commitOnce()
	return w.ResponseWriter.Write(b)
}

func (w *committingWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Commit is returned by [Manager.Wrap]. Calling it commits the session if no
// response has been written yet. A commit error is reported by the first
// call only.
type Commit func() error

// Wrap returns a writer that commits s before the response headers go out,
// and a function to finish the commit for handlers that wrote nothing.
func (m *Manager) Wrap(w http.ResponseWriter, r *http.Request, s *Session) (http.ResponseWriter, Commit) {
	secure := r.TLS != nil
	cw := &committingWriter{
		ResponseWriter: w,
		commit: func(rw http.ResponseWriter) error {
			return m.Commit(r.Context(), rw, s, secure)
		},
	}

	return cw, func() error {
		cw.commitOnce()
		err := cw.err
		cw.err = nil
		return err
	}
}

type commitCtxKey struct{}

// WithCommit returns a copy of ctx carrying the commit of the request's
// session.
func WithCommit(ctx context.Context, commit Commit) context.Context {
	return context.WithValue(ctx, commitCtxKey{}, commit)
}

// CommitPending commits the request's session ahead of the response so
// that a failed save can still be answered with an error page. It is a
// no-op without a session or once the session was committed.
func CommitPending(ctx context.Context) error {
	commit, ok := ctx.Value(commitCtxKey{}).(Commit)
	if !ok || commit == nil {
		return nil
	}
	return commit()
}
