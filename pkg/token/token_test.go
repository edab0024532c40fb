package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := NewManager(testSecret, 7*24*time.Hour)

	signed, err := m.Issue(42)
	require.NoError(t, err)

	userID, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestVerifyExpiredToken(t *testing.T) {
	m := NewManager(testSecret, time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	signed, err := m.Issue(42)
	require.NoError(t, err)

	verifier := NewManager(testSecret, time.Hour)
	_, err = verifier.Verify(signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	signed, err := m.Issue(7)
	require.NoError(t, err)

	other := NewManager("different-secret", time.Hour)
	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	m := NewManager(testSecret, time.Hour)
	_, err = m.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMissingUserID(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	m := NewManager(testSecret, time.Hour)
	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
