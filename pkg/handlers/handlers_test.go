package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arnavshah/roster-feasibility/internal/cache"
	"github.com/arnavshah/roster-feasibility/internal/config"
	"github.com/arnavshah/roster-feasibility/internal/domain"
	"github.com/arnavshah/roster-feasibility/internal/optimizer"
	"github.com/arnavshah/roster-feasibility/pkg/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testHandler(t *testing.T) *Handler {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&database.APIKey{}, &database.APIUsage{}, &database.MasterUser{}, &database.ConfigRecord{}))

	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", APIKeySecret: "test-api-secret"}}
	return &Handler{
		DB:        db,
		Cfg:       cfg,
		Cache:     cache.New("", "", 0, 0),
		Optimizer: optimizer.New("", 0),
	}
}

func postJSON(h *Handler, method func(*gin.Context), path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	payload, _ := json.Marshal(body)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	method(c)
	return w
}

func minimalStaffingConfig() domain.ConstraintConfig {
	return domain.ConstraintConfig{
		WeeklyWorkHours:       40,
		MaxConsecutiveNights:  4,
		MonthlyNightsRequired: 7,
		WeekdayStaffing: domain.StaffingRequirement{
			Day: domain.DailyStaffing{Min: 0, Max: 10},
		},
		WeekendStaffing: domain.StaffingRequirement{
			Day: domain.DailyStaffing{Min: 0, Max: 10},
		},
		EnabledConstraints: map[domain.HardConstraintID]bool{
			domain.StaffingID:     false,
			domain.MonthlyNightID: false,
		},
		ConstraintSeverity: map[domain.HardConstraintID]domain.SeverityClass{},
		SoftConstraints:    domain.SoftConstraintConfig{},
	}
}

func TestValidateConfigReturnsAdvisoriesForZeroStaff(t *testing.T) {
	h := testHandler(t)
	body := map[string]interface{}{
		"config":     minimalStaffingConfig(),
		"staffCount": 0,
	}

	w := postJSON(h, h.ValidateConfig, "/api/v1/config/validate", body)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Advisories []struct {
			Code string `json:"code"`
		} `json:"advisories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Advisories, 1)
	assert.Equal(t, "zero-staff", resp.Advisories[0].Code)
}

func TestValidateConfigRejectsMalformedBody(t *testing.T) {
	h := testHandler(t)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/config/validate", bytes.NewReader([]byte("{not json")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.ValidateConfig(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckFeasibilityReturnsFeasibleForACleanSchedule(t *testing.T) {
	h := testHandler(t)
	body := map[string]interface{}{
		"staff":    []domain.Staff{{ID: "s1", Name: "Alice"}},
		"schedule": domain.Schedule{StartDate: "2024-01-01"},
		"config":   minimalStaffingConfig(),
	}

	w := postJSON(h, h.CheckFeasibility, "/api/v1/feasibility/check", body)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Feasible   bool          `json:"feasible"`
		Violations []interface{} `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Feasible)
	assert.Empty(t, resp.Violations)
}

func TestImpactForTargetReturnsFoldedCells(t *testing.T) {
	h := testHandler(t)
	schedule := domain.Schedule{
		StartDate: "2024-01-01",
		Assignments: []domain.ShiftAssignment{
			{StaffID: "s1", Date: "2024-01-01", Shift: domain.Night},
		},
	}
	body := map[string]interface{}{
		"staff":    []domain.Staff{{ID: "s1", Name: "Alice"}},
		"schedule": schedule,
		"config":   minimalStaffingConfig(),
		"target":   map[string]string{"staffId": "s1", "date": "2024-01-01"},
	}

	w := postJSON(h, h.ImpactForTarget, "/api/v1/feasibility/impact", body)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Cells []map[string]interface{} `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Cells)
}

func TestGenerateKeyCreatesAnHMACSignedKeyRecord(t *testing.T) {
	h := testHandler(t)
	body := map[string]interface{}{"name": "client-a"}

	w := postJSON(h, h.GenerateKey, "/admin/keys", body)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Name string `json:"name"`
		Key  string `json:"key"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "client-a", resp.Name)
	assert.NotEmpty(t, resp.Key)

	var stored database.APIKey
	require.NoError(t, h.DB.Where("name = ?", "client-a").First(&stored).Error)
	assert.Equal(t, resp.Key, stored.Key)
}

func TestGenerateKeyRejectsMissingName(t *testing.T) {
	h := testHandler(t)
	w := postJSON(h, h.GenerateKey, "/admin/keys", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListKeysReturnsEveryStoredKey(t *testing.T) {
	h := testHandler(t)
	require.NoError(t, h.DB.Create(&database.APIKey{Key: "k1", Name: "a", KeyPreview: "k1*"}).Error)
	require.NoError(t, h.DB.Create(&database.APIKey{Key: "k2", Name: "b", KeyPreview: "k2*"}).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/keys", nil)

	h.ListKeys(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Keys []database.APIKey `json:"keys"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Keys, 2)
}
