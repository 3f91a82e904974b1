package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DeValentRT/Horario-Prototipo/config"
	"github.com/DeValentRT/Horario-Prototipo/internal/api/handler"
	"github.com/DeValentRT/Horario-Prototipo/internal/api/middleware"
	"github.com/DeValentRT/Horario-Prototipo/pkg/redis"
)

const (
	maxBodyBytes    = 1 << 20 // 1MB, plenty for course payloads and ICS uploads
	rateLimitMax    = 120
	rateLimitWindow = time.Minute
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(rdb, rateLimitMax, rateLimitWindow))
	{
		v1.GET("/planner", h.Course.GetPlanner)

		courses := v1.Group("/courses")
		{
			courses.POST("", h.Course.AddCourse)
			courses.PUT("/:id", h.Course.UpdateCourse)
			courses.DELETE("/:id", h.Course.DeleteCourse)
		}

		groups := v1.Group("/groups")
		{
			groups.POST("/toggle", h.Group.Toggle)
			groups.POST("/toggle-all", h.Group.ToggleAll)
			groups.PUT("/visibility", h.Group.SetVisibility)
		}

		savedViews := v1.Group("/saved-views")
		{
			savedViews.GET("", h.SavedView.List)
			savedViews.POST("", h.SavedView.Save)
			savedViews.POST("/:id/apply", h.SavedView.Apply)
			savedViews.DELETE("/:id", h.SavedView.Delete)
		}

		v1.POST("/timetable/import", h.Timetable.ImportICS)

		export := v1.Group("/export")
		{
			export.GET("/xlsx", h.Export.ExportXLSX)
			export.GET("/ics", h.Export.ExportICS)
		}
	}

	return r
}
