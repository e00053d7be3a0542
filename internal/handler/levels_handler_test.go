package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/levels", NewLevelsHandler().Levels)

	cases := map[string]int{
		"":                    4,
		"Computer Science":    4,
		"Pharmacy":            6,
		"School of ARCHITECTURE": 5,
	}
	for department, count := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/levels", nil)
		req.URL.RawQuery = "department=" + url.QueryEscape(department)
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, department)
		var body struct {
			Levels []string `json:"levels"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Levels, count, department)
	}
}
