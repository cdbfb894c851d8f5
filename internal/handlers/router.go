package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pathstarter/backend/internal/metrics"
	"github.com/pathstarter/backend/internal/session"
	"go.uber.org/zap"
)

// RouterConfig collects everything the HTTP surface needs.
type RouterConfig struct {
	Auth         *AuthHandler
	Jobs         *JobHandler
	Applications *ApplicationHandler
	Sessions     session.Store
	Metrics      *metrics.HTTPMetrics
	Logger       *zap.Logger
	StaticDir    string
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(cfg.Logger))
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
		r.GET("/metrics", cfg.Metrics.Handler())
	}

	requireAuth := RequireAuth(cfg.Sessions, cfg.Logger)

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		api.POST("/register", cfg.Auth.Register)
		api.POST("/login", cfg.Auth.Login)
		api.POST("/logout", requireAuth, cfg.Auth.Logout)
		api.GET("/profile", requireAuth, cfg.Auth.Profile)

		api.GET("/jobs", cfg.Jobs.ListJobs)
		api.GET("/jobs/:id", cfg.Jobs.GetJob)
		api.POST("/jobs", requireAuth, cfg.Jobs.CreateJob)

		api.POST("/jobs/:id/apply", requireAuth, cfg.Applications.Apply)
		api.GET("/applications", requireAuth, cfg.Applications.ListApplications)
	}

	// Unmatched routes fall back to the static entry document.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		index := filepath.Join(cfg.StaticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.File(index)
	})

	return r
}
