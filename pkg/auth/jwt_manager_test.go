package auth

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)
	id := uuid.New()

	tok, exp, err := m.Generate("alice", id, "REGULAR")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "REGULAR", claims.Role)
	assert.Equal(t, "alice", claims.Subject)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	tok, _, err := m.Generate("bob", uuid.New(), "ADMIN")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewJWTManager("right-secret", time.Hour).Generate("u", uuid.New(), "REGULAR")
	require.NoError(t, err)

	_, err = NewJWTManager("wrong-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("k", time.Hour)
	tok, _, err := m.Generate("u", uuid.New(), "REGULAR")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	forged, _, err := NewJWTManager("other", time.Hour).Generate("u", uuid.New(), "ADMIN")
	require.NoError(t, err)
	parts[1] = strings.Split(forged, ".")[1]

	_, err = m.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := Claims{
		Username: "u",
		UserID:   uuid.New(),
		Role:     "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTManager("k", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewJWTManager("k", time.Hour).Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "case insensitive scheme", header: "bearer tok", want: "tok"},
		{name: "missing", header: "", wantErr: true},
		{name: "basic", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "empty token", header: "Bearer   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodGet, "/", nil)
			require.NoError(t, err)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			got, err := ExtractTokenFromHeader(r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
