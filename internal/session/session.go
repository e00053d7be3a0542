// Package session signs and verifies the stateless session cookie. The
// cookie is the only place session state lives; destroying it is logout.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/noah-isme/resource-hub-web/internal/models"
	"github.com/noah-isme/resource-hub-web/pkg/config"
	appErrors "github.com/noah-isme/resource-hub-web/pkg/errors"
)

// Manager issues and verifies signed session credentials and moves them in
// and out of the transport cookie. Signing happens only at this boundary;
// everything downstream works with verified *models.SessionClaims.
type Manager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
}

// NewManager constructs a Manager from session configuration.
func NewManager(cfg config.SessionConfig) *Manager {
	return &Manager{
		secret:     []byte(cfg.Secret),
		ttl:        cfg.TTL,
		cookieName: cfg.CookieName,
		secure:     cfg.CookieSecure,
	}
}

// Issue builds a signed session for the given user carrying the upstream
// bearer token. The raw password never reaches this package.
func (m *Manager) Issue(user models.User, apiToken string) (string, error) {
	now := time.Now().UTC()
	claims := &models.SessionClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		APIToken: apiToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a session credential.
func (m *Manager) Verify(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid session")
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid session claims")
	}

	return claims, nil
}

// FromRequest reads and verifies the session cookie, returning nil when no
// valid session is present. An absent or broken cookie is not an error:
// the caller decides whether anonymity is acceptable.
func (m *Manager) FromRequest(c *gin.Context) *models.SessionClaims {
	raw, err := c.Cookie(m.cookieName)
	if err != nil || raw == "" {
		return nil
	}
	claims, err := m.Verify(raw)
	if err != nil {
		return nil
	}
	return claims
}

// SetCookie attaches the signed session to the response.
func (m *Manager) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
}

// ClearCookie destroys the session.
func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}

// CookieName exposes the configured cookie name for tests and handlers.
func (m *Manager) CookieName() string {
	return m.cookieName
}
