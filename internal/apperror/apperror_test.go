package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"NotFound wraps ErrNotFound", NotFound("user", 7), ErrNotFound},
		{"NotFoundMsg wraps ErrNotFound", NotFoundMsg("movie not found"), ErrNotFound},
		{"ValidationFailed wraps ErrValidation", ValidationFailed("name", "name is required"), ErrValidation},
		{"Conflict wraps ErrConflict", Conflict("already in favorites"), ErrConflict},
		{"Upstream wraps ErrUpstream", Upstream("service unreachable", cause), ErrUpstream},
		{"Upstream without cause wraps ErrUpstream", Upstream("service unreachable", nil), ErrUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.target)
		})
	}
}

func TestUpstreamKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream("service unreachable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "service unreachable", err.Error(), "Error() is the user-facing message")
}

func TestMessagesSurviveWrapping(t *testing.T) {
	err := error(ValidationFailed("title", "movie title is required"))

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "movie title is required", appErr.Message)
	assert.Equal(t, "title", appErr.Field)
}

func TestKindsAreDistinct(t *testing.T) {
	assert.NotErrorIs(t, NotFound("user", 1), ErrValidation)
	assert.NotErrorIs(t, Conflict("dup"), ErrNotFound)
	assert.NotErrorIs(t, Upstream("down", nil), ErrConflict)
}
