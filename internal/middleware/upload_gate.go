package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/resource-hub-web/internal/models"
	appErrors "github.com/noah-isme/resource-hub-web/pkg/errors"
	"github.com/noah-isme/resource-hub-web/pkg/response"
)

// UploadGate rejects resource uploads before any upstream call. The upstream
// API is authoritative and re-checks authorization on its side; this gate is
// a UX shortcut that distinguishes "wrong role" from "session token missing",
// both recoverable by the user.
func UploadGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil || claims.Role != models.RoleContributor {
			response.Error(c, appErrors.ErrNotContributor)
			c.Abort()
			return
		}
		if !claims.Authorized() {
			response.Error(c, appErrors.ErrSessionTokenMissing)
			c.Abort()
			return
		}
		c.Next()
	}
}
