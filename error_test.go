package sift_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/sift"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := sift.Errorf(sift.EFETCH, "HTTP %d for %s", 503, "https://example.com")

	assert.Equal(t, sift.EFETCH, sift.ErrorCode(err))
	assert.Equal(t, "HTTP 503 for https://example.com", sift.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("search: %w", sift.Errorf(sift.EMALFORMED, "bad feed"))

	assert.Equal(t, sift.EMALFORMED, sift.ErrorCode(err))
	assert.Equal(t, "bad feed", sift.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, sift.EINTERNAL, sift.ErrorCode(err))
	assert.Equal(t, "Internal error.", sift.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sift.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sift.ErrorMessage(nil))
}

func TestErrorCode_Codes(t *testing.T) {
	t.Parallel()

	t.Run("each code survives wrapping", func(t *testing.T) {
		t.Parallel()

		for _, code := range []string{sift.EINVALID, sift.EINTERNAL, sift.EFETCH, sift.EMALFORMED} {
			err := fmt.Errorf("search: %w", sift.Errorf(code, "failed"))
			assert.Equal(t, code, sift.ErrorCode(err))
		}
	})
}
