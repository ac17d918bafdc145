package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("loan not found")))
	assert.Equal(t, KindInvalidOperation, KindOf(InvalidOperation("no stock available")))
	assert.Equal(t, KindPermissionDenied, KindOf(PermissionDenied("nope")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("create loan: %w", InvalidOperation("no stock available"))
	assert.True(t, IsInvalidOperation(err))
	assert.False(t, IsNotFound(err))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("row not found")
	err := Wrap(KindNotFound, "book not found", cause)
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "book not found", err.Error())
}
