package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/resource-hub-web/internal/levels"
	"github.com/noah-isme/resource-hub-web/internal/middleware"
	"github.com/noah-isme/resource-hub-web/internal/models"
	"github.com/noah-isme/resource-hub-web/internal/service"
	appErrors "github.com/noah-isme/resource-hub-web/pkg/errors"
)

type pageBackend interface {
	Departments(ctx context.Context, bearer string) ([]models.Department, error)
	Department(ctx context.Context, bearer, slug string) (*models.Department, error)
	Resources(ctx context.Context, bearer string, query url.Values) ([]models.Resource, error)
}

// PageHandler renders the server-side pages. Presentation is deliberately
// thin; all data comes through the same backend boundary the proxy uses.
type PageHandler struct {
	backend   pageBackend
	auth      *service.AuthService
	dashboard *service.DashboardService
	// apiBase is the browser-facing API base URL. Empty means same-origin,
	// which is the normal deployment: the browser talks to this gateway's
	// /api/v1 proxy rather than the upstream directly.
	apiBase string
	logger  *zap.Logger
}

// NewPageHandler creates a new handler.
func NewPageHandler(backend pageBackend, auth *service.AuthService, dashboard *service.DashboardService, apiBase string, logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{backend: backend, auth: auth, dashboard: dashboard, apiBase: apiBase, logger: logger}
}

// LoginPage renders the credential form. A failed submission redirects back
// here with ?error=1; the message is always the generic one.
func (h *PageHandler) LoginPage(c *gin.Context) {
	data := gin.H{}
	if c.Query("error") != "" {
		data["Error"] = "Invalid credentials."
	}
	c.HTML(http.StatusOK, "login.html", data)
}

// Dashboard renders the landing page: popular and recent resources fetched
// concurrently, plus best-effort user banner and department sidebar. The
// side reads never block or fail the page.
func (h *PageHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	claims := middleware.Claims(c)
	bearer := middleware.Bearer(c)

	overview := h.dashboard.Overview(ctx, bearer)

	user := h.auth.CurrentUser(ctx, claims)

	departments, err := h.backend.Departments(ctx, bearer)
	if err != nil {
		h.logger.Debug("department sidebar unavailable", zap.Error(err))
		departments = nil
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":        user,
		"Session":     claims,
		"Popular":     overview.Popular,
		"Recent":      overview.Recent,
		"Departments": departments,
	})
}

// DepartmentPage renders one department with its resources and level ladder.
// A missing department surfaces as a page error, unlike the optional reads.
func (h *PageHandler) DepartmentPage(c *gin.Context) {
	ctx := c.Request.Context()
	bearer := middleware.Bearer(c)
	slug := c.Param("slug")

	department, err := h.backend.Department(ctx, bearer, slug)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Failed to load department."
		if errors.Is(err, appErrors.ErrNotFound) {
			status = http.StatusNotFound
			message = "Department not found."
		}
		c.HTML(status, "error.html", gin.H{"Message": message})
		return
	}

	claims := middleware.Claims(c)

	query := url.Values{}
	query.Set("department", department.Name)
	if level := c.Query("level"); level != "" {
		query.Set("level", level)
	}

	resources, err := h.backend.Resources(ctx, bearer, query)
	if err != nil {
		h.logger.Warn("department resources unavailable", zap.String("slug", slug), zap.Error(err))
		resources = nil
	}

	c.HTML(http.StatusOK, "department.html", gin.H{
		"Session":    claims,
		"Department": department,
		"Resources":  resources,
		"Levels":     levels.Allowed(department.Name),
		"APIBase":    h.apiBase,
		"CanUpload":  claims != nil && claims.Role == models.RoleContributor,
	})
}

// GrowthPage renders a growth-category listing.
func (h *PageHandler) GrowthPage(c *gin.Context) {
	ctx := c.Request.Context()
	bearer := middleware.Bearer(c)
	category := c.Param("category")

	query := url.Values{}
	query.Set("category", category)

	resources, err := h.backend.Resources(ctx, bearer, query)
	if err != nil {
		h.logger.Warn("growth resources unavailable", zap.String("category", category), zap.Error(err))
		resources = nil
	}

	c.HTML(http.StatusOK, "growth.html", gin.H{
		"Session":   middleware.Claims(c),
		"Category":  category,
		"Resources": resources,
	})
}
