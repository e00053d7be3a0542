package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/resource-hub-web/api/swagger"
	"github.com/noah-isme/resource-hub-web/internal/backend"
	"github.com/noah-isme/resource-hub-web/internal/handler"
	"github.com/noah-isme/resource-hub-web/internal/middleware"
	"github.com/noah-isme/resource-hub-web/internal/proxy"
	"github.com/noah-isme/resource-hub-web/internal/service"
	"github.com/noah-isme/resource-hub-web/internal/session"
	"github.com/noah-isme/resource-hub-web/pkg/config"
	"github.com/noah-isme/resource-hub-web/pkg/logger"
	corsmiddleware "github.com/noah-isme/resource-hub-web/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/resource-hub-web/pkg/middleware/requestid"
)

// @title Resource Hub Web Gateway
// @version 0.1.0
// @description Session-bridging front-end gateway for the resource sharing platform
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := session.NewManager(cfg.Session)
	client := backend.NewClient(cfg.Backend, logr)
	metricsSvc := service.NewMetricsService()
	validate := validator.New()

	authSvc := service.NewAuthService(client, sessions, validate, logr)
	dashboardSvc := service.NewDashboardService(client, logr, cfg.Dashboard)
	apiProxy := proxy.New(client.HTTPClient(), client.BaseURL(), logr, metricsSvc)

	authHandler := handler.NewAuthHandler(authSvc, sessions)
	proxyHandler := handler.NewProxyHandler(apiProxy)
	levelsHandler := handler.NewLevelsHandler()
	pageHandler := handler.NewPageHandler(client, authSvc, dashboardSvc, cfg.Backend.PublicBaseURL, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.Session(sessions))

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/auth/login", middleware.LoginRateLimit(cfg.LoginRate), authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)

	api := r.Group("/api/v1")
	{
		api.GET("/auth/me", proxyHandler.Me)
		api.GET("/departments", proxyHandler.Departments)
		api.GET("/departments/:slug", proxyHandler.Department)
		api.GET("/resources", proxyHandler.ListResources)
		api.POST("/resources", middleware.UploadGate(), proxyHandler.CreateResource)
		api.POST("/resources/:id/download", proxyHandler.DownloadResource)
		api.GET("/levels", levelsHandler.Levels)
	}

	pages := r.Group("/", middleware.PageGate())
	{
		pages.GET("/", pageHandler.Dashboard)
		pages.GET("/login", pageHandler.LoginPage)
		pages.GET("/departments/:slug", pageHandler.DepartmentPage)
		pages.GET("/growth/:category", pageHandler.GrowthPage)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "backend", cfg.Backend.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
