package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/feasibility"
	"github.com/arnavshah/roster-feasibility/internal/localgen"
	"github.com/arnavshah/roster-feasibility/internal/wire"
)

// Generate proxies to the configured external optimizer,
// or falls back to the local greedy generator when none is configured.
// The local generator's output is re-verified against the real
// feasibility checker before it is returned; the optimizer's response
// is passed through as received.
func (h *Handler) Generate(c *gin.Context) {
	var req wire.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := wire.Validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.Optimizer.Configured() {
		resp, err := h.Optimizer.Generate(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusOK, wire.GenerateResponse{
				Success: false,
				Error:   &wire.GenerateError{Code: wire.ErrorTimeout, Message: err.Error()},
			})
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	schedule := domain.Schedule{StartDate: req.StartDate, Assignments: req.LockedAssignments}
	result := localgen.Generate(schedule, req.Staff, req.Constraints, req.PreviousPeriodEnd)

	verified := feasibility.Check(
		domain.Schedule{StartDate: req.StartDate, Assignments: result.Assignments},
		req.Staff, req.Constraints, req.PreviousPeriodEnd,
	)

	if !verified.Feasible {
		diagnosis := &wire.GenerateDiagnosis{}
		for _, v := range verified.Violations {
			if v.Severity == domain.SeverityError {
				diagnosis.ConflictingConstraints = append(diagnosis.ConflictingConstraints, v.ConstraintID)
			}
		}
		for _, conflict := range result.Conflicts {
			diagnosis.Suggestions = append(diagnosis.Suggestions, conflict.Reason)
		}
		c.JSON(http.StatusOK, wire.GenerateResponse{
			Success: false,
			Error: &wire.GenerateError{
				Code:      wire.ErrorInfeasible,
				Message:   "local fallback generator could not produce a feasible schedule",
				Diagnosis: diagnosis,
			},
		})
		return
	}

	c.JSON(http.StatusOK, wire.GenerateResponse{
		Success:  true,
		Schedule: &wire.GenerateScheduleResult{Assignments: result.Assignments},
	})
}

// CheckFeasibilityPreflight lets callers
// surface a diagnostic before waiting on a solver timeout.
func (h *Handler) CheckFeasibilityPreflight(c *gin.Context) {
	var req wire.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := wire.Validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.Optimizer.Configured() {
		resp, err := h.Optimizer.CheckFeasibility(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	c.JSON(http.StatusOK, localPreflight(req))
}

func localPreflight(req wire.GenerateRequest) wire.CheckFeasibilityResponse {
	staffCount := len(req.Staff)
	weekdayMin := req.Constraints.WeekdayStaffing.Day.Min + req.Constraints.WeekdayStaffing.Evening.Min + req.Constraints.WeekdayStaffing.Night.Min
	weekendMin := req.Constraints.WeekendStaffing.Day.Min + req.Constraints.WeekendStaffing.Evening.Min + req.Constraints.WeekendStaffing.Night.Min
	offDaysRequired := 7 - requiredWorkDays(req.Constraints.WeeklyWorkHours)

	var reasons []string
	feasible := true
	if weekdayMin > staffCount {
		feasible = false
		reasons = append(reasons, "weekday minimum coverage exceeds staff count")
	}
	if weekendMin > staffCount {
		feasible = false
		reasons = append(reasons, "weekend minimum coverage exceeds staff count")
	}

	return wire.CheckFeasibilityResponse{
		Feasible: feasible,
		Reasons:  reasons,
		Analysis: wire.CheckFeasibilityAnalysis{
			StaffCount:      staffCount,
			WeekdayMinStaff: weekdayMin,
			WeekendMinStaff: weekendMin,
			OffDaysRequired: offDaysRequired,
			WeeklyWorkHours: req.Constraints.WeeklyWorkHours,
		},
	}
}

func requiredWorkDays(weeklyWorkHours int) int {
	hours := weeklyWorkHours
	if hours <= 0 {
		return 0
	}
	days := hours / 8
	if hours%8 != 0 {
		days++
	}
	return days
}
