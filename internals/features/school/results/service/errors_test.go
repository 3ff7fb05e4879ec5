package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePGErr struct{ state string }

func (e *fakePGErr) Error() string    { return "pg error " + e.state }
func (e *fakePGErr) SQLState() string { return e.state }

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("f", "bad")))
	assert.Equal(t, KindAuthorization, KindOf(Unauthorized()))
	assert.Equal(t, KindNotFound, KindOf(NotFound("result")))
	assert.Equal(t, KindConflict, KindOf(Conflict("dup", true)))
	assert.Equal(t, KindLocked, KindOf(Locked()))
	assert.Equal(t, KindTransient, KindOf(errors.New("driver broke")))

	// wrapped engine errors keep their kind
	wrapped := fmt.Errorf("outer: %w", Locked())
	assert.Equal(t, KindLocked, KindOf(wrapped))
}

func TestAppErrorMessageIncludesField(t *testing.T) {
	assert.Equal(t, "result_score: must be between 0 and the max score",
		Validation("result_score", "must be between 0 and the max score").Error())
	assert.Equal(t, "record is locked for this period", Locked().Error())
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(&fakePGErr{state: "23505"}))
	assert.True(t, IsDuplicateKey(fmt.Errorf("insert: %w", &fakePGErr{state: "23505"})))
	assert.False(t, IsDuplicateKey(&fakePGErr{state: "23503"}))
	assert.False(t, IsDuplicateKey(errors.New("not a pg error")))
}
