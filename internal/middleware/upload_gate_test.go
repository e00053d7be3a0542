package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/resource-hub-web/internal/models"
)

func uploadRouter(claims *models.SessionClaims, forwarded *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(ContextSessionKey, claims)
		}
	})
	r.POST("/api/v1/resources", UploadGate(), func(c *gin.Context) {
		*forwarded++
		c.Status(http.StatusCreated)
	})
	return r
}

func postUpload(r *gin.Engine) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resources", strings.NewReader("payload"))
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code, body.Error.Message
}

func TestUploadGateRejectsAnonymous(t *testing.T) {
	forwarded := 0
	rec := postUpload(uploadRouter(nil, &forwarded))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, forwarded)
	_, message := decodeError(t, rec)
	assert.Equal(t, "Unauthorized: Only contributors can upload resources.", message)
}

func TestUploadGateRejectsStudent(t *testing.T) {
	forwarded := 0
	claims := &models.SessionClaims{UserID: "u1", Role: models.RoleStudent, APIToken: "tok"}
	rec := postUpload(uploadRouter(claims, &forwarded))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, forwarded)
}

func TestUploadGateRejectsContributorWithoutToken(t *testing.T) {
	forwarded := 0
	claims := &models.SessionClaims{UserID: "u1", Role: models.RoleContributor}
	rec := postUpload(uploadRouter(claims, &forwarded))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, forwarded)
	_, message := decodeError(t, rec)
	assert.Equal(t, "Authentication session error: Token not found. Please log in again.", message)
}

func TestUploadGatePassesContributor(t *testing.T) {
	forwarded := 0
	claims := &models.SessionClaims{UserID: "u1", Role: models.RoleContributor, APIToken: "tok"}
	rec := postUpload(uploadRouter(claims, &forwarded))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, forwarded)
}
