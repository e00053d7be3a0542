package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/resource-hub-web/internal/middleware"
	"github.com/noah-isme/resource-hub-web/internal/proxy"
)

// ProxyHandler exposes the same-origin /api/v1 surface that relays browser
// requests to the upstream API. Every route is a thin Forward call with a
// route-specific fault message; the proxy layer owns the forwarding rules.
type ProxyHandler struct {
	proxy *proxy.Proxy
}

// NewProxyHandler creates a new handler.
func NewProxyHandler(p *proxy.Proxy) *ProxyHandler {
	return &ProxyHandler{proxy: p}
}

// Departments godoc
// @Summary List departments
// @Tags Proxy
// @Produce json
// @Success 200 {array} models.Department
// @Router /api/v1/departments [get]
func (h *ProxyHandler) Departments(c *gin.Context) {
	h.proxy.Forward(c, http.MethodGet, "/api/v1/departments", middleware.Bearer(c),
		"Failed to fetch departments via proxy.")
}

// Department godoc
// @Summary Fetch one department by slug
// @Tags Proxy
// @Produce json
// @Param slug path string true "Department slug"
// @Success 200 {object} models.Department
// @Router /api/v1/departments/{slug} [get]
func (h *ProxyHandler) Department(c *gin.Context) {
	slug := url.PathEscape(c.Param("slug"))
	h.proxy.Forward(c, http.MethodGet, "/api/v1/departments/"+slug, middleware.Bearer(c),
		"Failed to fetch department via proxy.")
}

// ListResources godoc
// @Summary List and filter resources
// @Tags Proxy
// @Produce json
// @Param department query string false "Department filter"
// @Param category query string false "Category filter"
// @Param level query string false "Level filter"
// @Param sort query string false "recent or popular"
// @Param limit query int false "Max results"
// @Success 200 {array} models.Resource
// @Router /api/v1/resources [get]
func (h *ProxyHandler) ListResources(c *gin.Context) {
	h.proxy.Forward(c, http.MethodGet, "/api/v1/resources", middleware.Bearer(c),
		"Failed to fetch resources via proxy.")
}

// CreateResource godoc
// @Summary Upload a resource (contributors only)
// @Tags Proxy
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} models.Resource
// @Failure 403 {object} response.ErrorBody
// @Router /api/v1/resources [post]
func (h *ProxyHandler) CreateResource(c *gin.Context) {
	h.proxy.Forward(c, http.MethodPost, "/api/v1/resources", middleware.Bearer(c),
		"Failed to upload resource via proxy.")
}

// DownloadResource godoc
// @Summary Mint a download URL for a resource
// @Tags Proxy
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} map[string]string
// @Router /api/v1/resources/{id}/download [post]
func (h *ProxyHandler) DownloadResource(c *gin.Context) {
	id := url.PathEscape(c.Param("id"))
	h.proxy.Forward(c, http.MethodPost, "/api/v1/resources/"+id+"/download", middleware.Bearer(c),
		"Failed to process resource download via proxy.")
}

// Me godoc
// @Summary Current user profile
// @Tags Proxy
// @Produce json
// @Success 200 {object} models.User
// @Router /api/v1/auth/me [get]
func (h *ProxyHandler) Me(c *gin.Context) {
	h.proxy.Forward(c, http.MethodGet, "/api/v1/auth/me", middleware.Bearer(c),
		"Failed to fetch current user via proxy.")
}
