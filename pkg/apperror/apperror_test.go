package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotFound, CodeOf(NotFound("flight not found")))
	assert.Equal(t, CodeConflict, CodeOf(Conflict("flight code already in use")))
	assert.Equal(t, CodeValidation, CodeOf(Validation("cancellation reason is required")))
	assert.Equal(t, "", CodeOf(errors.New("plain error")))
	assert.Equal(t, "", CodeOf(nil))
}

func TestCodeOfWrapped(t *testing.T) {
	err := fmt.Errorf("cancel flight: %w", NotFound("flight not found"))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
	assert.False(t, IsValidation(err))
}

func TestErrorMessage(t *testing.T) {
	assert.EqualError(t, Validation("pilot name is required"), "pilot name is required")
}
