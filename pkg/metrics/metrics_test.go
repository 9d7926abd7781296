package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ProjectOperation(t *testing.T) {
	m := NewMetrics()

	m.ProjectOperation("create", "ok")
	m.ProjectOperation("create", "ok")
	m.ProjectOperation("delete", "not_found")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.projectOpsTotal.WithLabelValues("create", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.projectOpsTotal.WithLabelValues("delete", "not_found")))
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := NewMetrics()

	m.ObserveRequest("/projects", http.MethodGet, http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("/projects", http.MethodGet, "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ContactSubmission("ok")

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `portfolio_contact_submissions_total{outcome="ok"} 1`)
}
