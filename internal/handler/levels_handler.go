package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/resource-hub-web/internal/levels"
	"github.com/noah-isme/resource-hub-web/pkg/response"
)

// LevelsHandler serves the department-dependent level ladder. This endpoint
// is local, not proxied: the ladder is gateway policy and every UI surface
// (upload form, filter sidebar, department page) must read it from here so
// the rule cannot drift between call sites.
type LevelsHandler struct{}

// NewLevelsHandler creates a new handler.
func NewLevelsHandler() *LevelsHandler {
	return &LevelsHandler{}
}

// Levels godoc
// @Summary Allowed level ladder for a department
// @Tags Levels
// @Produce json
// @Param department query string false "Department name"
// @Success 200 {object} map[string][]string
// @Router /api/v1/levels [get]
func (h *LevelsHandler) Levels(c *gin.Context) {
	department := c.Query("department")
	response.JSON(c, http.StatusOK, gin.H{"levels": levels.Allowed(department)})
}
