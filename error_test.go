package scraped_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/scraped"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := scraped.Errorf(scraped.ENOTFOUND, "key %q not found", "h1")

	assert.Equal(t, scraped.ENOTFOUND, scraped.ErrorCode(err))
	assert.Equal(t, "key \"h1\" not found", scraped.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scraped.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scraped.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch root: %w", scraped.Errorf(scraped.EFETCH, "HTTP 500"))

	assert.Equal(t, scraped.EFETCH, scraped.ErrorCode(err))
	assert.Equal(t, "HTTP 500", scraped.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, scraped.EINTERNAL, scraped.ErrorCode(err))
	assert.Equal(t, "Internal error", scraped.ErrorMessage(err))
}
