// Package handler adapts the server to the Vercel Go serverless runtime,
// wiring the same routes as cmd/server, except /metrics, behind a single
// cold-start init.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/roster-feasibility/internal/config"
	"github.com/arnavshah/roster-feasibility/internal/logging"
	"github.com/arnavshah/roster-feasibility/pkg/auth"
	"github.com/arnavshah/roster-feasibility/pkg/database"
	"github.com/arnavshah/roster-feasibility/pkg/handlers"
)

var r *gin.Engine

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		panic(err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		panic(err)
	}
	_ = auth.EnsureAdminExists(db)

	h := handlers.New(db, logger, cfg)

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Recovery(), logging.GinMiddleware(logger))

	r.StaticFS("/static", h.GetStaticFS())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Roster Feasibility API (Vercel)",
			"version": "1.0.0",
		})
	})

	r.GET("/admin", h.AdminInterface)
	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	api := r.Group("/api/v1")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/feasibility/check", h.CheckFeasibility)
		api.POST("/feasibility/impact", h.ImpactForTarget)
		api.POST("/config/validate", h.ValidateConfig)
		api.POST("/generate", h.Generate)
		api.POST("/check-feasibility", h.CheckFeasibilityPreflight)
		api.GET("/config", h.GetConfig)
		api.PUT("/config", h.PutConfig)
		api.POST("/export", h.ExportSnapshot)
		api.POST("/import", h.ImportSnapshot)
		api.GET("/usage", h.GetMyUsage)
	}
}

// Handler is the entry point for the Vercel Go runtime.
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
