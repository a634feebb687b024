package docscrape_test

import (
	"errors"
	"testing"

	"github.com/docmirror/docscrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docscrape.Errorf(docscrape.ENOTFOUND, "section %q not found", "overview")

	assert.Equal(t, docscrape.ENOTFOUND, docscrape.ErrorCode(err))
	assert.Equal(t, "section \"overview\" not found", docscrape.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docscrape.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docscrape.EINTERNAL, docscrape.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docscrape.ErrorMessage(nil))
}
