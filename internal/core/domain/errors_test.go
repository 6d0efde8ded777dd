package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.hollert.ch/sokforge/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestExitCode(t *testing.T) {
	t.Run("direct metadata", func(t *testing.T) {
		err := zerr.With(zerr.New("command failed"), "exit_code", 3)

		code, ok := domain.ExitCode(err)
		assert.True(t, ok)
		assert.Equal(t, 3, code)
	})

	t.Run("wrapped metadata", func(t *testing.T) {
		inner := zerr.With(zerr.New("command failed"), "exit_code", 42)
		err := zerr.Wrap(inner, "task execution failed")

		code, ok := domain.ExitCode(err)
		assert.True(t, ok)
		assert.Equal(t, 42, code)
	})

	t.Run("joined errors", func(t *testing.T) {
		inner := zerr.With(zerr.New("command failed"), "exit_code", 7)
		err := errors.Join(domain.ErrBuildExecutionFailed, inner)

		code, ok := domain.ExitCode(err)
		assert.True(t, ok)
		assert.Equal(t, 7, code)
	})

	t.Run("no exit code present", func(t *testing.T) {
		_, ok := domain.ExitCode(zerr.New("something else"))
		assert.False(t, ok)
	})

	t.Run("nil error", func(t *testing.T) {
		_, ok := domain.ExitCode(nil)
		assert.False(t, ok)
	})
}
