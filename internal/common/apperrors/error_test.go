package apperrors

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("family", func(t *testing.T) {
		ErrRoot := New("root error")
		assert.Equal(t, "root error", ErrRoot.Error())
		assert.ErrorIs(t, ErrRoot, ErrRoot)

		ErrChild := ErrRoot.New("child error")
		assert.Equal(t, "child error", ErrChild.Error())
		assert.ErrorIs(t, ErrChild, ErrRoot)
		assert.NotErrorIs(t, ErrRoot, ErrChild)

		ErrSibling := ErrRoot.New("sibling error")
		assert.NotErrorIs(t, ErrChild, ErrSibling)
	})

	t.Run("msg keeps kind", func(t *testing.T) {
		ErrRoot := New("root error")
		err := ErrRoot.Msg("more detail")
		assert.Equal(t, "more detail", err.Error())
		assert.ErrorIs(t, err, ErrRoot)
	})

	t.Run("attached causes", func(t *testing.T) {
		ErrRoot := New("root error")
		cause := errors.New("cause")
		goCause := fmt.Errorf("go cause")

		err := ErrRoot.Err(cause, goCause)
		assert.Equal(t, "root error", err.Error())
		assert.ErrorIs(t, err, ErrRoot)
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, goCause)
		assert.Len(t, err.UnwrapAll(), 3)

		err = ErrRoot.MsgErr("msg", cause)
		assert.Equal(t, "msg", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("error all", func(t *testing.T) {
		ErrRoot := New("root error")
		cause := errors.New("cause")

		assert.Equal(t, "root error", ErrRoot.Err(cause).ErrorAll())
		assert.Equal(t, "root error; cause", ErrRoot.SetExpandError(true).Err(cause).ErrorAll())
	})

	t.Run("exit code", func(t *testing.T) {
		ErrRoot := New("root error")
		assert.Equal(t, 1, ErrRoot.ExitCode())

		ErrUsage := ErrRoot.SetExitCode(2)
		assert.Equal(t, 2, ErrUsage.ExitCode())
		assert.Equal(t, 1, ErrRoot.ExitCode())
		assert.Equal(t, 2, ErrUsage.New("bad flag").ExitCode())

		assert.Equal(t, 2, ExitCode(ErrUsage.Msg("bad flag")))
		assert.Equal(t, 2, ExitCode(errors.Wrap(ErrUsage, "wrapped")))
		assert.Equal(t, 1, ExitCode(errors.New("plain")))
	})
}
