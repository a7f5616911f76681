package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/careloop/synthgen/pkg/errors"
)

func TestAppError_MessageFormat(t *testing.T) {
	plain := apperrors.NewValidationError("population size must be a positive integer")
	assert.Equal(t, "VALIDATION: population size must be a positive integer", plain.Error())

	wrapped := apperrors.NewInternalError("failed to insert into patients", errors.New("connection reset"))
	assert.Equal(t, "INTERNAL: failed to insert into patients: connection reset", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := apperrors.NewExternalError("failed to publish run event", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, fmt.Errorf("emit: %w", err), cause)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, apperrors.IsValidation(apperrors.NewValidationError("bad input")))
	assert.True(t, apperrors.IsValidation(fmt.Errorf("wrapped: %w", apperrors.NewValidationError("bad input"))))
	assert.False(t, apperrors.IsValidation(apperrors.NewInternalError("boom", nil)))
	assert.False(t, apperrors.IsValidation(errors.New("plain")))
	assert.False(t, apperrors.IsValidation(nil))
}
