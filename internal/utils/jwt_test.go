package utils

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("unit-test-secret", 8*time.Hour, "federation-site")

	token, err := m.GenerateJWT(42, "ops@fed.org", "super-admin")
	require.NoError(t, err)

	claims, err := m.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.AdminID)
	assert.Equal(t, "super-admin", claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTExpired(t *testing.T) {
	past := clockwork.NewFakeClockAt(time.Now().Add(-9 * time.Hour))
	m := NewJWTManagerWithClock("unit-test-secret", 8*time.Hour, "federation-site", past)

	token, err := m.GenerateJWT(1, "a@fed.org", "admin")
	require.NoError(t, err)

	_, err = NewJWTManager("unit-test-secret", 8*time.Hour, "federation-site").ValidateJWT(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTExpiryFollowsClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC))
	m := NewJWTManagerWithClock("unit-test-secret", 8*time.Hour, "federation-site", clock)

	token, err := m.GenerateJWT(1, "a@fed.org", "admin")
	require.NoError(t, err)

	clock.Advance(7 * time.Hour)
	_, err = m.ValidateJWT(token)
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)
	_, err = m.ValidateJWT(token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	early := NewJWTManagerWithClock("unit-test-secret", 8*time.Hour, "federation-site",
		clockwork.NewFakeClockAt(time.Date(2029, 12, 31, 0, 0, 0, 0, time.UTC)))
	_, err = early.ValidateJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTRejectsGarbageAndForeignSecret(t *testing.T) {
	m := NewJWTManager("unit-test-secret", time.Hour, "federation-site")

	_, err := m.ValidateJWT("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewJWTManager("another-secret", time.Hour, "federation-site")
	token, err := other.GenerateJWT(1, "a@fed.org", "admin")
	require.NoError(t, err)

	_, err = m.ValidateJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTRejectsOtherIssuer(t *testing.T) {
	m := NewJWTManager("unit-test-secret", time.Hour, "federation-site")
	other := NewJWTManager("unit-test-secret", time.Hour, "someone-else")

	token, err := other.GenerateJWT(1, "a@fed.org", "admin")
	require.NoError(t, err)

	_, err = m.ValidateJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
