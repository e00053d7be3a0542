package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/resource-hub-web/internal/models"
	"github.com/noah-isme/resource-hub-web/internal/session"
)

// ContextSessionKey is the gin context key storing verified session claims.
const ContextSessionKey = "currentSession"

// Session loads the session cookie into the request context when present.
// It never blocks: an absent or invalid cookie simply leaves the request
// anonymous. Gates downstream decide what anonymity means.
func Session(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := manager.FromRequest(c); claims != nil {
			c.Set(ContextSessionKey, claims)
		}
		c.Next()
	}
}

// Claims returns the verified session claims for the request, or nil.
func Claims(c *gin.Context) *models.SessionClaims {
	if v, exists := c.Get(ContextSessionKey); exists {
		if claims, ok := v.(*models.SessionClaims); ok {
			return claims
		}
	}
	return nil
}

// Bearer returns the upstream API token carried by the session, or "" when
// the request must go out unauthenticated.
func Bearer(c *gin.Context) string {
	if claims := Claims(c); claims.Authorized() {
		return claims.APIToken
	}
	return ""
}
