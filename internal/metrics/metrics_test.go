package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEvaluationsTotalIncrementsOnEachCall(t *testing.T) {
	before := testutil.ToFloat64(EvaluationsTotal)

	EvaluationsTotal.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(EvaluationsTotal))
}

func TestViolationsTotalIsPartitionedByConstraintAndSeverity(t *testing.T) {
	ViolationsTotal.WithLabelValues("staffing", "error").Inc()
	ViolationsTotal.WithLabelValues("staffing", "warning").Inc()
	ViolationsTotal.WithLabelValues("staffing", "warning").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(ViolationsTotal.WithLabelValues("staffing", "error")))
	assert.Equal(t, float64(2), testutil.ToFloat64(ViolationsTotal.WithLabelValues("staffing", "warning")))
}

func TestEvaluationDurationRecordsObservations(t *testing.T) {
	EvaluationDuration.Observe(0.05)

	assert.Equal(t, 1, testutil.CollectAndCount(EvaluationDuration))
}
