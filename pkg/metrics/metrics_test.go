package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordDispatch(t *testing.T) {
	before := testutil.ToFloat64(dispatchTotal.WithLabelValues("IntentRequest", "SetTimer", "handled"))
	RecordDispatch("IntentRequest", "SetTimer", "handled", 0.02)
	after := testutil.ToFloat64(dispatchTotal.WithLabelValues("IntentRequest", "SetTimer", "handled"))
	assert.Equal(t, before+1, after)
}

func TestRecordFanoutResult(t *testing.T) {
	okBefore := testutil.ToFloat64(fanoutResultsTotal.WithLabelValues("pause", "ok"))
	failedBefore := testutil.ToFloat64(fanoutResultsTotal.WithLabelValues("pause", "failed"))

	RecordFanoutResult("pause", true)
	RecordFanoutResult("pause", false)
	RecordFanoutResult("pause", false)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(fanoutResultsTotal.WithLabelValues("pause", "ok")))
	assert.Equal(t, failedBefore+2, testutil.ToFloat64(fanoutResultsTotal.WithLabelValues("pause", "failed")))
}

func TestSetActiveSessions(t *testing.T) {
	SetActiveSessions(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(activeSessions))
}
