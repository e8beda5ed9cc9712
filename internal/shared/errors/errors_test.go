package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetType(t *testing.T) {
	assert.Equal(t, ErrorTypeNotFound, GetType(NotFoundf("sector %d", 1)))
	assert.Equal(t, ErrorTypeValidation, GetType(Validation("bad input")))
	assert.Equal(t, ErrorTypeValidation, GetType(Validationf("bad %s", "seed")))
	assert.Equal(t, ErrorTypeClassification, GetType(Classificationf("index %d", 99)))
	assert.Equal(t, ErrorTypeConflict, GetType(Conflictf("seed %d collides", 7)))
	assert.Equal(t, ErrorTypeMethodNotAllowed, GetType(MethodNotAllowed("PATCH")))
	assert.Equal(t, ErrorTypeInternal, GetType(stderrors.New("plain")))
}

func TestGetTypeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("generating: %w", Conflictf("seed collision"))
	assert.Equal(t, ErrorTypeConflict, GetType(err))
}

func TestWrappedErrorsUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := WrapInternal("saving document", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "saving document")
	assert.Contains(t, err.Error(), "disk full")
}

func TestMethodNotAllowedMessage(t *testing.T) {
	assert.EqualError(t, MethodNotAllowed("PUT"), "method PUT not allowed")
}
