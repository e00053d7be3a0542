package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/resource-hub-web/pkg/errors"
)

// ErrorBody mirrors the upstream API's error contract:
// { "error": { "code": ..., "message": ... } }.
type ErrorBody struct {
	Error *appErrors.Error `json:"error"`
}

// JSON sends a success payload. Every response is marked no-store: lists must
// always reflect current upstream state.
func JSON(c *gin.Context, status int, data interface{}) {
	NoStore(c)
	c.JSON(status, data)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	NoStore(c)
	c.JSON(appErr.Status, ErrorBody{Error: appErr})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// NoStore disables caching on the response.
func NoStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}
