package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflow_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.CaseStatusChanged(models.CaseStatusActive)
	m.CaseStatusChanged(models.CaseStatusActive)
	m.CaseStatusChanged(models.CaseStatusClosed)
	m.AgreementStatusChanged(models.AgreementExecuted)
	m.DetailMutated(models.CaseTypeLand, "add_ownership")
	m.DocumentStored()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CaseStatusChanges.WithLabelValues("ACTIVE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CaseStatusChanges.WithLabelValues("CLOSED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AgreementStatusChanges.WithLabelValues("EXECUTED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DetailMutations.WithLabelValues("LAND", "add_ownership")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DocumentsStored))
}

func TestWorkflow_NilRecordsNothing(t *testing.T) {
	var m *Workflow

	assert.NotPanics(t, func() {
		m.CaseStatusChanged(models.CaseStatusNew)
		m.AgreementStatusChanged(models.AgreementDraft)
		m.DetailMutated(models.CaseTypeOther, "set_details")
		m.DocumentStored()
		m.ObserveRequest(http.MethodGet, "200", time.Now())
	})
}

func TestWorkflow_Handler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.DocumentStored()
	m.ObserveRequest(http.MethodPost, "201", time.Now())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "legal_documents_stored_total 1")
	assert.Contains(t, rec.Body.String(), "legal_http_request_duration_seconds_count{code=\"201\",method=\"POST\"} 1")
}
