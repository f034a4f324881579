package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arnavshah/roster-feasibility/internal/cache"
	"github.com/arnavshah/roster-feasibility/internal/feasibility"
	"github.com/arnavshah/roster-feasibility/internal/impact"
	"github.com/arnavshah/roster-feasibility/internal/metrics"
	"github.com/arnavshah/roster-feasibility/internal/wire"
)

// CheckFeasibility runs the local feasibility checker
// against the posted staff/schedule/config, transparently consulting
// the result cache first.
func (h *Handler) CheckFeasibility(c *gin.Context) {
	var req wire.FeasibilityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := wire.Validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := cache.Key(req.Schedule, req.Config, req.PreviousPeriodEnd)
	if cached, ok := h.Cache.Get(c.Request.Context(), key); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	start := time.Now()
	result := feasibility.Check(req.Schedule, req.Staff, req.Config, req.PreviousPeriodEnd)
	metrics.EvaluationsTotal.Inc()
	metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
	for _, v := range result.Violations {
		metrics.ViolationsTotal.WithLabelValues(v.ConstraintID, string(v.Severity)).Inc()
	}

	h.Cache.Set(c.Request.Context(), key, result)
	h.RecordUsage(c, len(result.Violations))

	if h.Log != nil {
		h.Log.Info("feasibility_check",
			zap.Bool("feasible", result.Feasible),
			zap.Int("violations", len(result.Violations)),
		)
	}

	c.JSON(http.StatusOK, result)
}

// ImpactForTarget computes the impact map for editing one cell.
func (h *Handler) ImpactForTarget(c *gin.Context) {
	var req wire.FeasibilityImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := wire.Validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := impact.Target{StaffID: req.Target.StaffID, Date: req.Target.Date}
	records := impact.Compute(req.Schedule, req.Staff, target)
	folded := impact.Fold(records)

	cells := make([]gin.H, 0, len(folded))
	for key, reason := range folded {
		cells = append(cells, gin.H{"staffId": key.StaffID, "date": key.Date, "reason": reason})
	}

	c.JSON(http.StatusOK, gin.H{"records": records, "cells": cells})
}
