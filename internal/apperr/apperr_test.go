package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyStatusCodes(t *testing.T) {
	assert.Equal(t, 400, Validation("dup").StatusCode)
	assert.Equal(t, 404, NotFound("missing").StatusCode)
	assert.Equal(t, 401, Unauthorized("nope").StatusCode)
	assert.Equal(t, 500, Internal(errors.New("db down")).StatusCode)
}

func TestInternalHidesCauseButKeepsItForLogging(t *testing.T) {
	cause := errors.New("constraint violated")
	err := Internal(cause)

	assert.Equal(t, GenericMessage, err.Message)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestSchemaViolationsConcatenatesMessages(t *testing.T) {
	err := SchemaViolations([]Violation{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "email must be a valid email address"},
	})

	assert.Equal(t, "name is required; email must be a valid email address", err.Message)
	assert.Len(t, err.Violations, 2)
}

func TestClassify(t *testing.T) {
	appErr, ok := Classify(NotFound("missing"))
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)

	wrapped := fmt.Errorf("use case failed: %w", Unauthorized("nope"))
	appErr, ok = Classify(wrapped)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.StatusCode)

	_, ok = Classify(errors.New("plain"))
	assert.False(t, ok)
}
