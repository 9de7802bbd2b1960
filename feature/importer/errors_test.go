package importer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportError_WrappingAndKind(t *testing.T) {
	cause := errors.New("disk full")
	err := wrapError(KindRepositoryError, cause, "failed to apply change-set")

	assert.Equal(t, KindRepositoryError, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "repository_error")
	assert.Contains(t, err.Error(), "disk full")

	// Wrapping the ImportError again keeps the kind reachable.
	outer := fmt.Errorf("import: %w", err)
	assert.Equal(t, KindRepositoryError, KindOf(outer))
}

func TestKindOf_NonImportError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}
