package middlewares

import (
	"context"
	"net/http"
	"portfolio/pkg/constants"
	"portfolio/pkg/metrics"
	"runtime/debug"
	"time"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/segmentio/ksuid"
)

type contextKey int

const (
	RequestID contextKey = iota + 1
)

// middlewareHandler middleware type
type middlewareHandler struct {
	logger hclog.Logger
}

type MiddlewareHandler interface {
	ContextMiddleware(next http.Handler) http.Handler
	RecoveryMiddleware(onPanic http.Handler) func(next http.Handler) http.Handler
	MetricsMiddleware(m *metrics.Metrics) func(next http.Handler) http.Handler
}

func NewMiddlewareHandler(logger hclog.Logger) MiddlewareHandler {
	return &middlewareHandler{
		logger: logger.Named("middleware"),
	}
}

// ContextMiddleware tags every request with a fresh id, in the context and in the response headers
func (m *middlewareHandler) ContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ksuid.New().String()
		w.Header().Set(constants.RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), RequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the id set by ContextMiddleware, or an empty string.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestID).(string)
	return id
}

// RecoveryMiddleware turns a panicking handler into a call to onPanic
func (m *middlewareHandler) RecoveryMiddleware(onPanic http.Handler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					m.logger.Error("recovered from panic",
						"requestId", GetRequestID(r.Context()),
						"path", r.URL.Path,
						"panic", rec,
						"stack", string(debug.Stack()),
					)
					onPanic.ServeHTTP(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// MetricsMiddleware counts requests by route template so ids never blow up the label space
func (m *middlewareHandler) MetricsMiddleware(mtr *metrics.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			mtr.ObserveRequest(routeTemplate(r), r.Method, recorder.status, time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return tmpl
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	return s.ResponseWriter.Write(b)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
