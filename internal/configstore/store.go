// Package configstore persists the single process-lifetime
// ConstraintConfig object under a schema-versioned GORM record.
// Reads deep-merge the stored object over the in-code defaults so
// additive schema changes need no migration; breaking changes bump
// SchemaVersion and the owner is expected to clear dependent keys.
package configstore

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/pkg/database"
)

// SchemaVersion is the current on-disk schema version written by Save.
// Bump this and handle migration in Load when a field is removed or
// changes meaning.
const SchemaVersion = 1

// Store owns the single persisted ConstraintConfig row.
type Store struct {
	db *gorm.DB
}

// New builds a Store bound to db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Defaults returns the baseline ConstraintConfig used to fill any key
// absent from the persisted object.
func Defaults() domain.ConstraintConfig {
	return domain.ConstraintConfig{
		WeeklyWorkHours:       40,
		MaxConsecutiveNights:  4,
		MonthlyNightsRequired: 7,
		WeekdayStaffing: domain.StaffingRequirement{
			Day:     domain.DailyStaffing{Min: 2, Max: 4},
			Evening: domain.DailyStaffing{Min: 2, Max: 4},
			Night:   domain.DailyStaffing{Min: 1, Max: 2},
		},
		WeekendStaffing: domain.StaffingRequirement{
			Day:     domain.DailyStaffing{Min: 1, Max: 3},
			Evening: domain.DailyStaffing{Min: 1, Max: 3},
			Night:   domain.DailyStaffing{Min: 1, Max: 2},
		},
		EnabledConstraints: map[domain.HardConstraintID]bool{},
		ConstraintSeverity: map[domain.HardConstraintID]domain.SeverityClass{},
		SoftConstraints:    domain.SoftConstraintConfig{},
		Jurisdiction:       domain.JurisdictionKRDefault,
	}
}

// Load reads the persisted config, deep-merged over Defaults(). A
// missing record (first run) returns Defaults() unmodified.
func (s *Store) Load() (domain.ConstraintConfig, error) {
	var record database.ConfigRecord
	err := s.db.Order("id desc").First(&record).Error
	if err == gorm.ErrRecordNotFound {
		return Defaults(), nil
	}
	if err != nil {
		return domain.ConstraintConfig{}, fmt.Errorf("configstore: load: %w", err)
	}

	var stored domain.ConstraintConfig
	if err := json.Unmarshal([]byte(record.Payload), &stored); err != nil {
		return domain.ConstraintConfig{}, fmt.Errorf("configstore: decode stored config: %w", err)
	}

	return deepMerge(Defaults(), stored), nil
}

// Save writes cfg as the new current config, schema-versioned.
func (s *Store) Save(cfg domain.ConstraintConfig) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("configstore: encode config: %w", err)
	}

	record := database.ConfigRecord{SchemaVersion: SchemaVersion, Payload: string(payload)}
	return s.db.Create(&record).Error
}

// deepMerge overlays stored's explicitly-set map keys onto defaults;
// scalar fields are taken from stored wholesale (viper-style defaults
// handle the zero-value case identically to an absent key for scalars).
func deepMerge(defaults, stored domain.ConstraintConfig) domain.ConstraintConfig {
	merged := stored

	if merged.EnabledConstraints == nil {
		merged.EnabledConstraints = defaults.EnabledConstraints
	}
	if merged.ConstraintSeverity == nil {
		merged.ConstraintSeverity = defaults.ConstraintSeverity
	}
	if merged.SoftConstraints == nil {
		merged.SoftConstraints = defaults.SoftConstraints
	} else {
		for id, params := range defaults.SoftConstraints {
			if _, ok := merged.SoftConstraints[id]; !ok {
				merged.SoftConstraints[id] = params
			}
		}
	}
	if merged.WeeklyWorkHours == 0 {
		merged.WeeklyWorkHours = defaults.WeeklyWorkHours
	}
	if merged.MaxConsecutiveNights == 0 {
		merged.MaxConsecutiveNights = defaults.MaxConsecutiveNights
	}
	if merged.MonthlyNightsRequired == 0 {
		merged.MonthlyNightsRequired = defaults.MonthlyNightsRequired
	}

	return merged
}
