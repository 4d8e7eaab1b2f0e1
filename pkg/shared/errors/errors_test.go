package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandError(t *testing.T) {
	base := fmt.Errorf("missing required values: repository")
	err := NewCommandError(base, 2)

	assert.Equal(t, 2, err.ExitCode)
	assert.Equal(t, base.Error(), err.Error())
	assert.ErrorIs(t, err, base)

	var target *CommandError
	wrapped := fmt.Errorf("pr-comment: %w", err)
	if assert.True(t, stderrors.As(wrapped, &target)) {
		assert.Equal(t, 2, target.ExitCode)
	}
}
