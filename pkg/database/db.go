// Package database owns the GORM connection and the schema for API-key
// auth, usage accounting, admin users, and the persisted constraint
// config store.
package database

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arnavshah/roster-feasibility/internal/config"
)

// APIKey represents the api_keys table.
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"key"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `gorm:"not null" json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table, one row per (key, day).
type APIUsage struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	KeyID           uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date            string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount    int    `gorm:"default:0" json:"request_count"`
	EvaluationCount int    `gorm:"default:0" json:"evaluation_count"`
	ViolationCount  int    `gorm:"default:0" json:"violation_count"`
}

// MasterUser represents the master_users table (admin login).
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// ConfigRecord persists the single schema-versioned ConstraintConfig
// object consumed by internal/configstore.
type ConfigRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SchemaVersion int       `gorm:"not null" json:"schema_version"`
	Payload       string    `gorm:"type:text;not null" json:"payload"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InitDB opens the database connection described by cfg and migrates
// the schema. Postgres is used when a DSN is configured; otherwise a
// local sqlite file.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	if cfg.Database.DSN != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.Database.DSN,
			PreferSimpleProtocol: true,
		}), &gorm.Config{PrepareStmt: false})
	} else {
		path := cfg.Database.SQLitePath
		if path == "" {
			path = "roster_feasibility.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&APIKey{}, &APIUsage{}, &MasterUser{}, &ConfigRecord{}); err != nil {
		return nil, err
	}

	return db, nil
}
