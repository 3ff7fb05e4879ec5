// file: internals/features/school/results/service/token.go
package service

import (
	"crypto/rand"
	"encoding/base64"
)

// NewVerificationToken mints the opaque token attached at first publish:
// 16 random bytes (128 bits), URL-safe base64 without padding — 22
// characters.
func NewVerificationToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", Transient("token generation", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
