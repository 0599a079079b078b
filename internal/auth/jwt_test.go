package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret"

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	token, err := Issue(testSecret, "operator", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, "operator", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	token, err := Issue(testSecret, "operator", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(testSecret, token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := Issue(testSecret, "operator", "admin", time.Hour)
	require.NoError(t, err)

	_, err = Parse("another-secret", token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "hello"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(testSecret, tt.token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestParseKeepsNonAdminRole(t *testing.T) {
	t.Parallel()

	token, err := Issue(testSecret, "viewer", "reader", time.Hour)
	require.NoError(t, err)

	claims, err := Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "reader", claims.Role)
}
