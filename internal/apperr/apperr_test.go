package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors_StatusAndKind(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		kind   Kind
		status int
	}{
		{"validation", Validation("x"), KindValidation, http.StatusUnprocessableEntity},
		{"invalid id", InvalidID("x"), KindValidation, http.StatusUnauthorized},
		{"not found", NotFound("x"), KindNotFound, http.StatusNotFound},
		{"permission", Permission("x"), KindPermission, http.StatusForbidden},
		{"bad credentials", Auth("x"), KindAuth, http.StatusUnprocessableEntity},
		{"bad session", Unauthorized("x"), KindAuth, http.StatusUnauthorized},
		{"conflict", Conflict("x"), KindConflict, http.StatusUnprocessableEntity},
		{"internal", Internal("x", nil), KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, "x", tt.err.Message)
		})
	}
}

func TestInternal_WrapsCause(t *testing.T) {
	cause := errors.New("socket closed")
	err := fmt.Errorf("delete post: %w", Internal("An error occurred while removing the post.", cause))

	assert.True(t, errors.Is(err, cause))
	assert.True(t, Is(err, KindInternal))
	assert.Contains(t, err.Error(), "socket closed")
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("Post not found!")))
}

func TestWithStatus_DoesNotMutate(t *testing.T) {
	orig := NotFound("User Not Found!")
	moved := orig.WithStatus(http.StatusUnauthorized)

	assert.Equal(t, http.StatusNotFound, orig.Status)
	assert.Equal(t, http.StatusUnauthorized, moved.Status)
	assert.Equal(t, KindNotFound, moved.Kind)
}
