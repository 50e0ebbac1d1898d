package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeInternal, "scoring failed", cause)

	require.True(t, IsCode(err, CodeInternal))
	require.False(t, IsCode(err, CodeInvalidInput))
	require.ErrorIs(t, err, cause)
	require.Equal(t, "scoring failed: boom", err.Error())
	require.Equal(t, "scoring failed", MessageOf(err))
}

func TestIsCodeThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", Wrap(CodeInvalidInput, "Occasion is required", nil))
	require.True(t, IsCode(err, CodeInvalidInput))
	require.Equal(t, "Occasion is required", MessageOf(err))
}

func TestMessageOfForeignError(t *testing.T) {
	require.Equal(t, "plain", MessageOf(errors.New("plain")))
	require.Empty(t, MessageOf(nil))
}
