// Package wire defines the HTTP request/response bodies for the
// feasibility API, validated at the boundary with go-playground/validator
// struct tags.
package wire

import (
	"github.com/go-playground/validator/v10"

	"github.com/arnavshah/roster-feasibility/internal/domain"
)

// Validate is the shared struct validator for every wire request type.
var Validate = validator.New()

// FeasibilityCheckRequest is the body of POST /api/v1/feasibility/check.
type FeasibilityCheckRequest struct {
	Staff             []domain.Staff            `json:"staff" validate:"required,dive"`
	Schedule          domain.Schedule           `json:"schedule" validate:"required"`
	PreviousPeriodEnd []domain.ShiftAssignment  `json:"previousPeriodEnd,omitempty" validate:"omitempty,dive"`
	Config            domain.ConstraintConfig   `json:"config" validate:"required"`
}

// ImpactTarget identifies the cell an impact query is for.
type ImpactTarget struct {
	StaffID string `json:"staffId" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
}

// FeasibilityImpactRequest is the body of POST /api/v1/feasibility/impact.
type FeasibilityImpactRequest struct {
	Staff    []domain.Staff          `json:"staff" validate:"required,dive"`
	Schedule domain.Schedule         `json:"schedule" validate:"required"`
	Config   domain.ConstraintConfig `json:"config" validate:"required"`
	Target   ImpactTarget            `json:"target" validate:"required"`
}

// ConfigValidateRequest is the body of POST /api/v1/config/validate.
type ConfigValidateRequest struct {
	Config     domain.ConstraintConfig `json:"config" validate:"required"`
	StaffCount int                     `json:"staffCount" validate:"gte=0"`
}

// GenerateRequest is the external-optimizer request, also accepted by
// the local fallback generator.
type GenerateRequest struct {
	Staff             []domain.Staff           `json:"staff" validate:"required,dive"`
	StartDate         string                   `json:"startDate" validate:"required,datetime=2006-01-02"`
	Constraints       domain.ConstraintConfig  `json:"constraints" validate:"required"`
	PreviousPeriodEnd []domain.ShiftAssignment `json:"previousPeriodEnd,omitempty"`
	LockedAssignments []domain.ShiftAssignment `json:"lockedAssignments,omitempty"`
}

// GenerateErrorCode enumerates the generate error envelope codes.
type GenerateErrorCode string

const (
	ErrorInfeasible   GenerateErrorCode = "INFEASIBLE"
	ErrorTimeout      GenerateErrorCode = "TIMEOUT"
	ErrorInvalidInput GenerateErrorCode = "INVALID_INPUT"
)

// GenerateDiagnosis is the optional INFEASIBLE diagnosis payload.
type GenerateDiagnosis struct {
	ConflictingConstraints []string `json:"conflicting_constraints,omitempty"`
	ConflictingInputs       []string `json:"conflicting_inputs,omitempty"`
	Suggestions             []string `json:"suggestions,omitempty"`
}

// GenerateError is the generate endpoint's error envelope.
type GenerateError struct {
	Code      GenerateErrorCode  `json:"code"`
	Message   string             `json:"message"`
	Diagnosis *GenerateDiagnosis `json:"diagnosis,omitempty"`
}

// GenerateScheduleResult is the successful schedule payload.
type GenerateScheduleResult struct {
	Assignments []domain.ShiftAssignment `json:"assignments"`
}

// StaffJuhuDay pairs a staff id with their legal weekly off-day.
type StaffJuhuDay struct {
	StaffID string `json:"staffId"`
	JuhuDay int    `json:"juhuDay"`
}

// GenerateResponse is the generate endpoint's response envelope.
type GenerateResponse struct {
	Success       bool                    `json:"success"`
	Schedule      *GenerateScheduleResult `json:"schedule,omitempty"`
	StaffJuhuDays []StaffJuhuDay          `json:"staffJuhuDays,omitempty"`
	Error         *GenerateError          `json:"error,omitempty"`
}

// CheckFeasibilityAnalysis is the pre-check diagnostic payload.
type CheckFeasibilityAnalysis struct {
	StaffCount       int `json:"staffCount"`
	WeekdayMinStaff  int `json:"weekdayMinStaff"`
	WeekendMinStaff  int `json:"weekendMinStaff"`
	OffDaysRequired  int `json:"offDaysRequired"`
	WeeklyWorkHours  int `json:"weeklyWorkHours"`
}

// CheckFeasibilityResponse is the preflight check response.
type CheckFeasibilityResponse struct {
	Feasible bool                     `json:"feasible"`
	Reasons  []string                 `json:"reasons"`
	Analysis CheckFeasibilityAnalysis `json:"analysis"`
}

// ExportPayload is the self-contained export snapshot.
type ExportPayload struct {
	Version           int                      `json:"version"`
	ExportedAt        string                   `json:"exportedAt"`
	Staff             []domain.Staff           `json:"staff"`
	Schedule          domain.Schedule          `json:"schedule"`
	Config            domain.ConstraintConfig  `json:"config"`
	PreviousPeriodEnd []domain.ShiftAssignment `json:"previousPeriodEnd,omitempty"`
}

// APIError is a {code, message, diagnosis} error envelope. The handlers
// in pkg/handlers do not use it; their non-2xx responses carry
// {"error": message}.
type APIError struct {
	Code      string             `json:"code"`
	Message   string             `json:"message"`
	Diagnosis *GenerateDiagnosis `json:"diagnosis,omitempty"`
}
