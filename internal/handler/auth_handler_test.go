package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/resource-hub-web/internal/backend"
	"github.com/noah-isme/resource-hub-web/internal/middleware"
	"github.com/noah-isme/resource-hub-web/internal/proxy"
	"github.com/noah-isme/resource-hub-web/internal/service"
	"github.com/noah-isme/resource-hub-web/internal/session"
	"github.com/noah-isme/resource-hub-web/pkg/config"
)

// authFixture wires the real login → session → proxy chain against a fake
// upstream, mirroring how cmd/web assembles the application.
type authFixture struct {
	router    *gin.Engine
	loginHits *int
	lastAuth  *string
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loginHits := 0
	lastAuth := ""
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			loginHits++
			body, _ := io.ReadAll(r.Body)
			if strings.Contains(string(body), `"password":"secret1"`) {
				w.Write([]byte(`{"user":{"id":"u1","email":"ada@example.edu","role":"CONTRIBUTOR"},"token":"upstream-token"}`))
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
		case "/api/v1/resources":
			lastAuth = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(upstream.Close)

	sessions := session.NewManager(config.SessionConfig{
		Secret:     "test_secret",
		TTL:        time.Hour,
		CookieName: "session",
	})
	client := backend.NewClient(config.BackendConfig{BaseURL: upstream.URL, Timeout: 5 * time.Second}, zap.NewNop())
	authSvc := service.NewAuthService(client, sessions, validator.New(), zap.NewNop())
	p := proxy.New(client.HTTPClient(), client.BaseURL(), zap.NewNop(), nil)

	authHandler := NewAuthHandler(authSvc, sessions)
	proxyHandler := NewProxyHandler(p)

	r := gin.New()
	r.Use(middleware.Session(sessions))
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)
	r.GET("/api/v1/resources", proxyHandler.ListResources)

	return &authFixture{router: r, loginHits: &loginHits, lastAuth: &lastAuth}
}

func (f *authFixture) postLoginForm(email, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	return nil
}

func TestLoginLogoutSessionLifecycle(t *testing.T) {
	f := newAuthFixture(t)

	// login: session cookie carries the upstream token
	rec := f.postLoginForm("ada@example.edu", "secret1")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	cookie := sessionCookieFrom(rec)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)

	// proxied fetch with the session includes the bearer header
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources", nil)
	req.AddCookie(cookie)
	f.router.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "Bearer upstream-token", *f.lastAuth)

	// logout clears the cookie
	logoutReq := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	logoutReq.AddCookie(cookie)
	logoutRec := httptest.NewRecorder()
	f.router.ServeHTTP(logoutRec, logoutReq)
	cleared := sessionCookieFrom(logoutRec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	// the same fetch without a session omits the header
	f.router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/resources", nil))
	assert.Empty(t, *f.lastAuth)
}

func TestLoginRejectionRedirectsWithGenericError(t *testing.T) {
	f := newAuthFixture(t)

	rec := f.postLoginForm("ada@example.edu", "wrong-password")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?error=1", rec.Header().Get("Location"))
	assert.Nil(t, sessionCookieFrom(rec))
}

func TestLoginMalformedInputSkipsUpstream(t *testing.T) {
	f := newAuthFixture(t)

	rec := f.postLoginForm("not-an-email", "12345")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?error=1", rec.Header().Get("Location"))
	assert.Zero(t, *f.loginHits)
}

func TestLoginJSONFailureShape(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ada@example.edu","password":"wrong-password"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t,
		`{"error":{"code":"INVALID_CREDENTIALS","message":"Invalid credentials."}}`,
		rec.Body.String())
}
