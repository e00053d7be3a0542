package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/resource-hub-web/internal/models"
	"github.com/noah-isme/resource-hub-web/pkg/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(config.SessionConfig{
		Secret:     "test_secret",
		TTL:        ttl,
		CookieName: "session",
	})
}

func TestIssueVerifyRoundtrip(t *testing.T) {
	m := newTestManager(time.Hour)
	user := models.User{ID: "u1", Email: "student@example.com", Name: "Ada", Role: models.RoleContributor}

	signed, err := m.Issue(user, "backend-token")
	require.NoError(t, err)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "student@example.com", claims.Email)
	assert.Equal(t, models.RoleContributor, claims.Role)
	assert.Equal(t, "backend-token", claims.APIToken)
	assert.True(t, claims.Authorized())
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := newTestManager(-time.Minute)

	signed, err := m.Issue(models.User{ID: "u1"}, "tok")
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := newTestManager(time.Hour)
	other := NewManager(config.SessionConfig{Secret: "other", TTL: time.Hour, CookieName: "session"})

	signed, err := other.Issue(models.User{ID: "u1"}, "tok")
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	m := newTestManager(time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, &models.SessionClaims{UserID: "u1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.Error(t, err)
}

func TestSessionWithoutTokenIsAnonymousForAPIPurposes(t *testing.T) {
	m := newTestManager(time.Hour)

	signed, err := m.Issue(models.User{ID: "u1", Email: "a@b.c", Role: models.RoleStudent}, "")
	require.NoError(t, err)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.False(t, claims.Authorized())
}
