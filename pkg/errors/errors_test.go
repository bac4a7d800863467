package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantType   ErrorType
		wantStatus int
	}{
		{"not found", NewNotFoundError("Activity not found"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("Activity is full"), ErrorTypeConflict, http.StatusBadRequest},
		{"validation", NewValidationError("email is required"), ErrorTypeValidation, http.StatusUnprocessableEntity},
		{"internal", NewInternalError("boom", fmt.Errorf("cause")), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantStatus, tt.err.StatusCode)
		})
	}
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "conflict: Activity is full", NewConflictError("Activity is full").Error())
	assert.Equal(t, "internal: boom (cause)", NewInternalError("boom", fmt.Errorf("cause")).Error())
}

func TestAs(t *testing.T) {
	notFound := NewNotFoundError("Activity not found")

	wrapped := fmt.Errorf("signup: %w", notFound)
	assert.Same(t, notFound, As(wrapped))

	plain := As(fmt.Errorf("socket closed"))
	assert.Equal(t, ErrorTypeInternal, plain.Type)
	assert.Equal(t, "Internal server error", plain.Message)
}
