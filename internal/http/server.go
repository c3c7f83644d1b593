// Package http exposes the reporting engine as a JSON API.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"finhealth/internal/log"
	"finhealth/internal/reporting"
)

// Pinger reports storage readiness for /readyz.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	http.Server

	engine  *reporting.Engine
	store   Pinger
	logger  *log.Logger
	limiter *rateLimiter
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(addr string, engine *reporting.Engine, store Pinger, logger *log.Logger) *Server {
	s := &Server{
		engine:  engine,
		store:   store,
		logger:  logger.WithComponent(log.ComponentHTTP),
		limiter: newRateLimiter(),
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/readyz", s.handleReady).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.Use(s.withRequestLogging)

	v1.HandleFunc("/init", s.handleInit).Methods(http.MethodPost)
	v1.HandleFunc("/addresses", s.handleConfigureAddresses).Methods(http.MethodPost)
	v1.HandleFunc("/addresses", s.handleGetAddresses).Methods(http.MethodGet)
	v1.HandleFunc("/admin", s.handleGetAdmin).Methods(http.MethodGet)

	v1.HandleFunc("/reports/remittance", s.handleRemittanceSummary).Methods(http.MethodGet)
	v1.HandleFunc("/reports/savings", s.handleSavingsReport).Methods(http.MethodGet)
	v1.HandleFunc("/reports/bills", s.handleBillCompliance).Methods(http.MethodGet)
	v1.HandleFunc("/reports/insurance", s.handleInsuranceReport).Methods(http.MethodGet)
	v1.HandleFunc("/reports/health-score", s.handleHealthScore).Methods(http.MethodGet)
	v1.HandleFunc("/reports/financial-health", s.handleFinancialHealthReport).Methods(http.MethodGet)
	v1.HandleFunc("/reports/trend", s.handleTrendAnalysis).Methods(http.MethodGet)
	v1.HandleFunc("/reports/{owner}/{periodKey:[0-9]+}", s.handleStoreReport).Methods(http.MethodPut)
	v1.HandleFunc("/reports/{owner}/{periodKey:[0-9]+}", s.handleGetStoredReport).Methods(http.MethodGet)

	s.Addr = addr
	s.Handler = r
	s.ReadTimeout = 10 * time.Second
	s.WriteTimeout = 30 * time.Second
	s.IdleTimeout = 120 * time.Second

	return s
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.stop()
	return s.Server.Shutdown(ctx)
}

// withRequestLogging assigns a request ID, logs the request, and rate
// limits mutating methods per client IP.
func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := generateRequestID()
		clientIP := extractClientIP(r)

		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
			if !s.limiter.allow(clientIP) {
				s.logger.WarnContext(r.Context(), "Rate limit exceeded",
					log.FieldRequestID, requestID,
					log.FieldClientIP, clientIP)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
		}

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		s.logger.InfoContext(r.Context(), "Request handled",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatusCode, rw.statusCode,
			log.FieldDuration, time.Since(start).Milliseconds(),
			log.FieldClientIP, clientIP)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

func extractClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "storage not ready")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
