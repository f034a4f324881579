package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/roster-feasibility/internal/configvalidator"
	"github.com/arnavshah/roster-feasibility/internal/wire"
)

// ValidateConfig runs the static sanity pre-check over a ConstraintConfig
// independent of the constraint engine.
func (h *Handler) ValidateConfig(c *gin.Context) {
	var req wire.ConfigValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := wire.Validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	advisories := configvalidator.Validate(req.Config, req.StaffCount)
	c.JSON(http.StatusOK, gin.H{"advisories": advisories})
}
