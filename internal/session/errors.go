package session

import "errors"

var (
	// ErrSessionStore is returned when the session store cannot be read or
	// written. The request must fail instead of continuing anonymously.
	ErrSessionStore = errors.New("session store unavailable")

	// ErrGeneratingID is returned when no random session id can be produced.
	ErrGeneratingID = errors.New("failed to generate session id")
)
