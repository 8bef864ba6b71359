package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	cause := stderrors.New("UNIQUE constraint failed: contestant.phone")
	err := DatabaseError("failed to insert contestant", cause).WithOperation("Create")

	assert.Equal(t, "DATABASE_ERROR: failed to insert contestant (caused by: UNIQUE constraint failed: contestant.phone)", err.Error())
	assert.Equal(t, "Create", err.Operation)
	assert.True(t, stderrors.Is(err, cause))

	plain := NotFound("Contestant not found", nil)
	assert.Equal(t, "NOT_FOUND: Contestant not found", plain.Error())
}

func TestConstructorRecordsCallSite(t *testing.T) {
	err := ValidationError("bad", nil)

	assert.True(t, strings.HasSuffix(err.File, "errors_test.go"), "file was %s", err.File)
	assert.NotZero(t, err.Line)

	direct := NewAppError(ErrCodeInternalError, "boom", nil)
	assert.True(t, strings.HasSuffix(direct.File, "errors_test.go"), "file was %s", direct.File)
}

func TestAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("Contestant not found", nil))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeNotFound, appErr.Code)
	assert.True(t, HasCode(wrapped, ErrCodeNotFound))
	assert.False(t, HasCode(stderrors.New("plain"), ErrCodeNotFound))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", NotFound("x", nil), http.StatusNotFound},
		{"validation", ValidationError("x", nil), http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("x", nil), http.StatusUnprocessableEntity},
		{"internal", InternalError("x", nil), http.StatusInternalServerError},
		{"database", DatabaseError("x", nil), http.StatusInternalServerError},
		{"plain error", stderrors.New("x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}
