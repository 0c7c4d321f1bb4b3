// Package metrics exposes Prometheus counters of the legal workflow.
package metrics

import (
	"net/http"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Workflow counts state changes of cases and agreements, detail mutations
// and stored documents. A nil *Workflow records nothing.
type Workflow struct {
	CaseStatusChanges      *prometheus.CounterVec
	AgreementStatusChanges *prometheus.CounterVec
	DetailMutations        *prometheus.CounterVec
	DocumentsStored        prometheus.Counter
	RequestDuration        *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers the workflow metrics with reg.
func New(reg *prometheus.Registry) *Workflow {
	factory := promauto.With(reg)

	return &Workflow{
		CaseStatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "legal_case_status_changes_total",
			Help: "Total number of case status changes by target status",
		}, []string{"status"}),
		AgreementStatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "legal_agreement_status_changes_total",
			Help: "Total number of agreement status changes by target status",
		}, []string{"status"}),
		DetailMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "legal_case_detail_mutations_total",
			Help: "Total number of case detail mutations by case type and operation",
		}, []string{"case_type", "operation"}),
		DocumentsStored: factory.NewCounter(prometheus.CounterOpts{
			Name: "legal_documents_stored_total",
			Help: "Total number of documents written to the document store",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "legal_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and status code",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "code"}),
		gatherer: reg,
	}
}

// CaseStatusChanged records a case moving to status.
func (m *Workflow) CaseStatusChanged(status models.CaseStatus) {
	if m == nil {
		return
	}
	m.CaseStatusChanges.WithLabelValues(string(status)).Inc()
}

// AgreementStatusChanged records an agreement moving to status.
func (m *Workflow) AgreementStatusChanged(status models.AgreementStatus) {
	if m == nil {
		return
	}
	m.AgreementStatusChanges.WithLabelValues(string(status)).Inc()
}

// DetailMutated records a write to the detail extension of a caseType case.
// operation names the write, e.g. "set_details" or "add_transaction".
func (m *Workflow) DetailMutated(caseType models.CaseType, operation string) {
	if m == nil {
		return
	}
	m.DetailMutations.WithLabelValues(string(caseType), operation).Inc()
}

// DocumentStored records a successful document upload.
func (m *Workflow) DocumentStored() {
	if m == nil {
		return
	}
	m.DocumentsStored.Inc()
}

// ObserveRequest records the duration of a finished HTTP request.
// Call with the time the request started.
func (m *Workflow) ObserveRequest(method, code string, start time.Time) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, code).Observe(time.Since(start).Seconds())
}

// Handler serves the registered metrics in the Prometheus text format.
func (m *Workflow) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
