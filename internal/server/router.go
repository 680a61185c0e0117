package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/ryan-the-brodsky/tastemaker/internal/handlers"
	"github.com/ryan-the-brodsky/tastemaker/internal/middleware"
)

type RouterConfig struct {
	AuthHandler        *handlers.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	SessionHandler     *handlers.SessionHandler
	ComparisonHandler  *handlers.ComparisonHandler
	ExplorationHandler *handlers.ExplorationHandler
	StudioHandler      *handlers.StudioHandler
	RuleHandler        *handlers.RuleHandler
	AuditHandler       *handlers.AuditHandler
	RecordingHandler   *handlers.RecordingHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("tastemaker"))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)
	// Sessions
	protected.POST("/sessions", cfg.SessionHandler.Create)
	protected.GET("/sessions", cfg.SessionHandler.List)
	protected.GET("/sessions/:session_id", cfg.SessionHandler.Get)
	protected.DELETE("/sessions/:session_id", cfg.SessionHandler.Delete)
	protected.GET("/sessions/:session_id/progress", cfg.SessionHandler.Progress)
	// Comparisons
	protected.GET("/sessions/:session_id/comparisons/next", cfg.ComparisonHandler.Next)
	protected.POST("/sessions/:session_id/comparisons/choice/:comparison_id", cfg.ComparisonHandler.SubmitChoice)
	protected.POST("/sessions/:session_id/comparisons/batch", cfg.ComparisonHandler.Batch)
	protected.POST("/sessions/:session_id/comparisons/lock-in", cfg.ComparisonHandler.LockIn)
	// Exploration
	protected.GET("/sessions/:session_id/explore/colors", cfg.ExplorationHandler.PaletteOptions)
	protected.POST("/sessions/:session_id/explore/colors/select", cfg.ExplorationHandler.SelectPalette)
	protected.GET("/sessions/:session_id/explore/typography", cfg.ExplorationHandler.TypographyOptions)
	protected.POST("/sessions/:session_id/explore/typography/select", cfg.ExplorationHandler.SelectTypography)
	// Component studio
	protected.GET("/sessions/:session_id/studio/progress", cfg.StudioHandler.Progress)
	protected.GET("/sessions/:session_id/studio/components/:component_type/dimensions", cfg.StudioHandler.Dimensions)
	protected.GET("/sessions/:session_id/studio/components/:component_type/state", cfg.StudioHandler.ComponentState)
	protected.POST("/sessions/:session_id/studio/components/:component_type/choice", cfg.StudioHandler.SubmitDimensionChoice)
	protected.POST("/sessions/:session_id/studio/components/:component_type/go-back", cfg.StudioHandler.GoBack)
	protected.POST("/sessions/:session_id/studio/lock", cfg.StudioHandler.LockComponent)
	protected.GET("/sessions/:session_id/studio/checkpoints/:checkpoint_id", cfg.StudioHandler.Checkpoint)
	protected.POST("/sessions/:session_id/studio/checkpoints/:checkpoint_id/approve", cfg.StudioHandler.ApproveCheckpoint)
	protected.GET("/sessions/:session_id/studio/preview-styles", cfg.StudioHandler.PreviewStyles)
	// Rules
	protected.GET("/sessions/:session_id/rules", cfg.RuleHandler.List)
	protected.POST("/sessions/:session_id/rules/stated", cfg.RuleHandler.AddStated)
	protected.PATCH("/sessions/:session_id/rules/:rule_id", cfg.RuleHandler.Update)
	protected.DELETE("/sessions/:session_id/rules/:rule_id", cfg.RuleHandler.Delete)
	// Audit
	protected.POST("/sessions/:session_id/audit", cfg.AuditHandler.Screenshot)
	protected.POST("/sessions/:session_id/audit/interactive/recordings", cfg.RecordingHandler.Create)
	protected.GET("/sessions/:session_id/audit/interactive/recordings", cfg.RecordingHandler.ListBySession)
	protected.GET("/audit/interactive/recordings/:recording_id/status", cfg.RecordingHandler.Status)
	protected.GET("/audit/interactive/recordings/:recording_id/results", cfg.RecordingHandler.Results)

	return router
}
