package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	sets := NewSetsController(cfg.Database, cfg.Auditor)
	cards := NewCardsController(cfg.Database, cfg.Auditor)
	imports := NewImportController(cfg.Importer, cfg.Auditor)
	settings := NewSettingsController(cfg.Database, cfg.Auditor)
	stats := NewStatsController(cfg.Database, cfg.TaskClient)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Text import endpoints
	router.POST("/api/import/preview", imports.Preview)
	router.POST("/api/import", imports.Import)

	// Set endpoints
	router.GET("/api/sets", sets.GetAllSets)
	router.POST("/api/sets", sets.CreateSet)
	router.GET("/api/sets/:id", sets.GetSet)
	router.PUT("/api/sets/:id", sets.UpdateSet)
	router.DELETE("/api/sets/:id", sets.DeleteSet)
	router.GET("/api/sets/:id/export", sets.ExportSet)

	// Card endpoints
	router.GET("/api/sets/:id/cards", cards.GetCards)
	router.GET("/api/sets/:id/cards/:cardId", cards.GetCard)
	router.POST("/api/sets/:id/cards", cards.CreateCard)
	router.PUT("/api/sets/:id/cards/:cardId", cards.UpdateCard)
	router.DELETE("/api/sets/:id/cards/:cardId", cards.DeleteCard)

	// Settings endpoints
	router.GET("/api/settings", settings.GetSettings)
	router.PUT("/api/settings", settings.UpdateSettings)

	// Statistics endpoints
	router.GET("/api/stats", stats.GetStats)
	router.POST("/api/stats/refresh", stats.RefreshStats)

	// Audit log endpoint
	if cfg.Auditor != nil {
		auditController := NewAuditController(cfg.Auditor)
		router.GET("/api/audit", auditController.GetAuditEvents)
	}

	return router
}
