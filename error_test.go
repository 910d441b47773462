package outline_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/outline"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := outline.Errorf(outline.ENOTFOUND, "source %q not found", "page.html")

	assert.Equal(t, outline.ENOTFOUND, outline.ErrorCode(err))
	assert.Equal(t, "source \"page.html\" not found", outline.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading: %w", outline.Errorf(outline.EINVALID, "loader closed"))

	assert.Equal(t, outline.EINVALID, outline.ErrorCode(err))
	assert.Equal(t, "loader closed", outline.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, outline.EINTERNAL, outline.ErrorCode(err))
	assert.Equal(t, "Internal error.", outline.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, outline.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, outline.ErrorMessage(nil))
}
