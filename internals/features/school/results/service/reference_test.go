package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatResultRef(t *testing.T) {
	assert.Equal(t, "RES-2025-00001", FormatResultRef(2025, 1))
	assert.Equal(t, "RES-2025-00042", FormatResultRef(2025, 42))
	assert.Equal(t, "RES-2025-99999", FormatResultRef(2025, 99999))
	// wider sequences keep every digit instead of wrapping
	assert.Equal(t, "RES-2025-123456", FormatResultRef(2025, 123456))
}
