package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/resource-hub-web/internal/models"
)

func gateRouter(claims *models.SessionClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(ContextSessionKey, claims)
		}
	})
	r.Use(PageGate())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "page") }
	r.GET("/", ok)
	r.GET("/login", ok)
	r.GET("/login-help", ok)
	r.GET("/departments/:slug", ok)
	return r
}

func TestPageGateRedirectsAnonymousToLogin(t *testing.T) {
	r := gateRouter(nil)

	// /login-help is an ordinary page: only the exact login path is exempt.
	for _, path := range []string{"/", "/departments/pharmacy", "/login-help"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}
}

func TestPageGateAllowsAnonymousLoginPage(t *testing.T) {
	r := gateRouter(nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPageGateRedirectsAuthenticatedAwayFromLogin(t *testing.T) {
	r := gateRouter(&models.SessionClaims{UserID: "u1"})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestPageGatePassesAuthenticatedPages(t *testing.T) {
	// The gate has no role branching: STUDENT and CONTRIBUTOR pass alike.
	for _, role := range []models.Role{models.RoleStudent, models.RoleContributor} {
		r := gateRouter(&models.SessionClaims{UserID: "u1", Role: role})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
