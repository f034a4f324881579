package main

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/arnavshah/roster-feasibility/internal/config"
	"github.com/arnavshah/roster-feasibility/internal/logging"
	"github.com/arnavshah/roster-feasibility/pkg/auth"
	"github.com/arnavshah/roster-feasibility/pkg/database"
	"github.com/arnavshah/roster-feasibility/pkg/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("could not init database", zap.Error(err))
	}
	if err := auth.EnsureAdminExists(db); err != nil {
		logger.Warn("could not ensure admin user exists", zap.Error(err))
	}

	h := handlers.New(db, logger, cfg)

	r := gin.New()
	r.Use(gin.Recovery(), logging.GinMiddleware(logger))

	r.StaticFS("/static", h.GetStaticFS())
	r.GET("/admin", h.AdminInterface)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Roster Feasibility API",
			"version": "1.0.0",
		})
	})

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

	port := strconv.Itoa(cfg.Port)
	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("could not run server", zap.Error(err))
	}
}
