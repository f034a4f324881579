package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/wire"
)

// GetConfig returns the persisted constraint configuration,
// deep-merged over the built-in defaults.
func (h *Handler) GetConfig(c *gin.Context) {
	cfg, err := h.Store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load config"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// PutConfig persists a new constraint configuration.
func (h *Handler) PutConfig(c *gin.Context) {
	var cfg domain.ConstraintConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := wire.Validate.Struct(cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.Save(cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save config"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
