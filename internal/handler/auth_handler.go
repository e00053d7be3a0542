package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/resource-hub-web/internal/models"
	"github.com/noah-isme/resource-hub-web/internal/service"
	"github.com/noah-isme/resource-hub-web/internal/session"
	appErrors "github.com/noah-isme/resource-hub-web/pkg/errors"
	"github.com/noah-isme/resource-hub-web/pkg/response"
)

// AuthHandler wires the login and logout endpoints. Login accepts either the
// HTML form post or a JSON body; both funnel through the same authenticator.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(auth *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// Login godoc
// @Summary Authenticate and establish a session
// @Tags Authentication
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.loginFailure(c, appErrors.ErrInvalidCredentials)
		return
	}

	signed, err := h.auth.Authenticate(c.Request.Context(), req)
	if err != nil {
		h.loginFailure(c, err)
		return
	}

	h.sessions.SetCookie(c, signed)

	if wantsJSON(c) {
		response.JSON(c, http.StatusOK, gin.H{"ok": true})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout godoc
// @Summary Destroy the session
// @Tags Authentication
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)

	if wantsJSON(c) {
		response.NoContent(c)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) loginFailure(c *gin.Context, err error) {
	if wantsJSON(c) {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/login?error=1")
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.ContentType(), "json") ||
		strings.Contains(c.GetHeader("Accept"), "json")
}
