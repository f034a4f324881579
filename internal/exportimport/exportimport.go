// Package exportimport builds and validates the self-contained JSON
// snapshot.
package exportimport

import (
	"encoding/json"
	"fmt"

	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/wire"
)

// CurrentVersion is the export schema version this build writes.
const CurrentVersion = 1

// Export builds an ExportPayload for the given state, stamped with
// exportedAt. The timestamp is supplied by the caller rather than read
// here, keeping Export a pure function.
func Export(staff []domain.Staff, schedule domain.Schedule, cfg domain.ConstraintConfig, previousPeriodEnd []domain.ShiftAssignment, exportedAt string) wire.ExportPayload {
	return wire.ExportPayload{
		Version:           CurrentVersion,
		ExportedAt:        exportedAt,
		Staff:             staff,
		Schedule:          schedule,
		Config:            cfg,
		PreviousPeriodEnd: previousPeriodEnd,
	}
}

// Import parses and validates raw export JSON, requiring version, staff,
// schedule, and config to be present. On success the
// caller is expected to replace its in-memory state atomically with the
// returned payload.
func Import(raw []byte) (wire.ExportPayload, error) {
	var payload wire.ExportPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return wire.ExportPayload{}, fmt.Errorf("exportimport: invalid JSON: %w", err)
	}

	if payload.Version == 0 {
		return wire.ExportPayload{}, fmt.Errorf("exportimport: missing version")
	}
	if len(payload.Staff) == 0 {
		return wire.ExportPayload{}, fmt.Errorf("exportimport: missing staff")
	}
	if payload.Schedule.StartDate == "" {
		return wire.ExportPayload{}, fmt.Errorf("exportimport: missing schedule")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields["config"] == nil {
		return wire.ExportPayload{}, fmt.Errorf("exportimport: missing config")
	}

	return payload, nil
}
