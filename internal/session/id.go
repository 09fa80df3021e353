package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// idSize is the number of random bytes in a session id (256 bits).
const idSize = 32

// GenerateID returns a cryptographically secure, base64url-encoded session id.
func GenerateID() (string, error) {
	b := make([]byte, idSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingID, err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
