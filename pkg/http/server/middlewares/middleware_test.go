package middlewares

import (
	"net/http"
	"net/http/httptest"
	"portfolio/pkg/constants"
	"portfolio/pkg/metrics"
	"testing"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextMiddleware(t *testing.T) {
	middleware := NewMiddlewareHandler(hclog.NewNullLogger())

	var seen string
	handler := middleware.ContextMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get(constants.RequestIDHeader))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEqual(t, seen, recorder.Header().Get(constants.RequestIDHeader), "ids must be unique per request")
}

func TestGetRequestID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", GetRequestID(req.Context()))
}

func TestRecoveryMiddleware(t *testing.T) {
	middleware := NewMiddlewareHandler(hclog.NewNullLogger())
	onPanic := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("oops"))
	})

	handler := middleware.RecoveryMiddleware(onPanic)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "oops", recorder.Body.String())
}

func TestRecoveryMiddleware_PassThrough(t *testing.T) {
	middleware := NewMiddlewareHandler(hclog.NewNullLogger())
	onPanic := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("onPanic must not run")
	})

	handler := middleware.RecoveryMiddleware(onPanic)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, recorder.Code)
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewMetrics()
	middleware := NewMiddlewareHandler(hclog.NewNullLogger())

	router := mux.NewRouter()
	router.Use(middleware.MetricsMiddleware(m))
	router.HandleFunc("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}).Methods(http.MethodPost)
	router.HandleFunc("/plain", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	for _, id := range []string{"1", "2", "3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/items/"+id, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plain", nil))

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := recorder.Body.String()

	assert.Contains(t, body, `portfolio_http_requests_total{code="201",method="POST",route="/items/{id}"} 3`)
	assert.Contains(t, body, `portfolio_http_requests_total{code="200",method="GET",route="/plain"} 1`)
}
