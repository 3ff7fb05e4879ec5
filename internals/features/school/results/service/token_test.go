package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerificationToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		token, err := NewVerificationToken()
		require.NoError(t, err)

		// 16 bytes → 22 chars of unpadded URL-safe base64
		assert.Len(t, token, 22)
		assert.False(t, strings.ContainsAny(token, "+/="), "token must be URL-safe: %s", token)

		assert.False(t, seen[token], "token collision")
		seen[token] = true
	}
}
