package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesOnKind(t *testing.T) {
	err := Errorf(ENOTFOUND, KindUserNotFound, "User not found with id: %d", 7)

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrNotFollowing)

	wrapped := fmt.Errorf("loading profile: %w", err)
	assert.ErrorIs(t, wrapped, ErrUserNotFound)
}

func TestInternal(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause)

	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Internal server error", ErrorMessage(err))
	assert.Contains(t, err.Error(), "connection reset")

	// domain errors pass through untouched
	assert.Same(t, ErrSelfFollow, Internal(ErrSelfFollow))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation(map[string]string{"name": "Name is required"}), http.StatusBadRequest},
		{ErrSelfFollow, http.StatusBadRequest},
		{ErrDuplicateUsername, http.StatusConflict},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrTokenExpired, http.StatusUnauthorized},
		{ErrTokenInvalid, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrNotFollowing, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(ErrorKind(tt.err), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestAccessors_ForeignAndNil(t *testing.T) {
	foreign := errors.New("sql: database is closed")

	assert.Equal(t, EINTERNAL, ErrorCode(foreign))
	assert.Equal(t, KindInternal, ErrorKind(foreign))
	assert.Equal(t, "Internal server error", ErrorMessage(foreign))
	assert.Nil(t, ErrorFields(foreign))

	assert.Empty(t, ErrorCode(nil))
	assert.Empty(t, ErrorKind(nil))
	assert.Empty(t, ErrorMessage(nil))
}

func TestValidation_Fields(t *testing.T) {
	err := Validation(map[string]string{"password": "Password must be at least 8 characters long"})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Password must be at least 8 characters long", ErrorFields(err)["password"])
}
