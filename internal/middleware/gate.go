package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const loginPath = "/login"

// PageGate is the edge-level access decision for rendered pages. Exactly two
// redirect outcomes exist: anonymous users are sent to the login page, and
// authenticated users are kept away from it. Everything else passes. Role
// checks do not happen here; they belong to the operations that need them.
func PageGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		loggedIn := Claims(c) != nil
		onLoginPage := c.Request.URL.Path == loginPath

		switch {
		case !loggedIn && !onLoginPage:
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
		case loggedIn && onLoginPage:
			c.Redirect(http.StatusFound, "/")
			c.Abort()
		default:
			c.Next()
		}
	}
}
