package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"hash"
	"strings"
	"sync"
)

// signatureSeparator splits a signed value from its signature.
const signatureSeparator = "."

// Signer signs and verifies short values such as session ids with
// HMAC-SHA256. It is safe for concurrent use.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a Signer keyed with secret.
func NewSigner(secret string) *Signer {
	key := []byte(secret)
	return &Signer{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sign returns value followed by a dot and its base64url signature.
func (s *Signer) Sign(value string) string {
	return value + signatureSeparator + base64.RawURLEncoding.EncodeToString(s.mac([]byte(value)))
}

// Verify checks a value produced by Sign and returns the original value.
// ok is false when the input is malformed or the signature does not match.
func (s *Signer) Verify(signed string) (string, bool) {
	idx := strings.LastIndex(signed, signatureSeparator)
	if idx <= 0 || idx == len(signed)-1 {
		return "", false
	}

	value, encoded := signed[:idx], signed[idx+1:]
	sig, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", false
	}

	if !hmac.Equal(sig, s.mac([]byte(value))) {
		return "", false
	}

	return value, true
}

func (s *Signer) mac(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}
