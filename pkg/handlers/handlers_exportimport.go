package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/roster-feasibility/internal/exportimport"
	"github.com/arnavshah/roster-feasibility/internal/wire"
)

// ExportSnapshot bundles staff, schedule, config, and boundary context into
// one self-contained payload.
func (h *Handler) ExportSnapshot(c *gin.Context) {
	var req wire.FeasibilityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := wire.Validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload := exportimport.Export(req.Staff, req.Schedule, req.Config, req.PreviousPeriodEnd, time.Now().UTC().Format(time.RFC3339))
	c.JSON(http.StatusOK, payload)
}

// ImportSnapshot reloads a previously exported payload, validating its shape.
func (h *Handler) ImportSnapshot(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, err := exportimport.Import(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payload)
}
