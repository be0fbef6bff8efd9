// Package httpapi exposes the prediction service over HTTP: a small form UI,
// a JSON prediction API, and health, readiness, and metrics endpoints.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/food-freshness/internal/domain"
	"github.com/couchcryptid/food-freshness/internal/predict"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SampleScorer scores one loosely-typed sample.
type SampleScorer interface {
	Predict(predict.Sample) (domain.Label, map[domain.Label]float64, error)
}

// Server exposes the form UI, prediction API, and operational endpoints.
// A nil scorer serves everything except predictions; /readyz reports 503
// until a model is available.
type Server struct {
	httpServer *http.Server
	scorer     SampleScorer
	logger     *slog.Logger
}

// NewServer wires up all routes on addr.
func NewServer(addr string, scorer SampleScorer, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		scorer: scorer,
		logger: logger,
	}

	mux.HandleFunc("GET /{$}", s.handleForm)
	mux.HandleFunc("POST /predict", s.handlePredictForm)
	mux.HandleFunc("POST /api/predict", s.handlePredictJSON)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleForm(w http.ResponseWriter, _ *http.Request) {
	s.renderForm(w, http.StatusOK, formData{})
}

// handlePredictForm scores a form submission and re-renders the page with
// the verdict. Invalid input renders a user-visible message, never a 5xx.
func (s *Server) handlePredictForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderForm(w, http.StatusBadRequest, formData{Error: "could not read form submission"})
		return
	}

	sample := make(predict.Sample, len(domain.TrainedFeatures()))
	for _, col := range domain.TrainedFeatures() {
		if v := r.PostFormValue(col); v != "" {
			sample[col] = v
		}
	}

	data := formData{Values: sample, City: r.PostFormValue("city")}
	if data.City != "" {
		if preset, err := domain.LookupCity(data.City); err == nil {
			data.Climate = &preset
		}
	}
	label, probs, err := s.score(sample)
	if err != nil {
		var invalid *predict.InvalidSampleError
		if errors.As(err, &invalid) {
			data.Error = invalid.Error()
			s.renderForm(w, http.StatusBadRequest, data)
			return
		}
		s.logger.Error("form prediction failed", "error", err)
		data.Error = "prediction service unavailable"
		s.renderForm(w, http.StatusServiceUnavailable, data)
		return
	}

	data.Result = &formResult{Label: label, Probabilities: orderedProbs(probs)}
	s.renderForm(w, http.StatusOK, data)
}

// predictResponse is the JSON API reply.
type predictResponse struct {
	Label         domain.Label             `json:"label"`
	Probabilities map[domain.Label]float64 `json:"probabilities"`
}

// handlePredictJSON scores a JSON object keyed by feature name. Values may
// be strings or numbers; numbers are formatted before validation so callers
// can post either form.
func (s *Server) handlePredictJSON(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	sample := make(predict.Sample, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			sample[key] = v
		case float64:
			sample[key] = formatNumber(v)
		default:
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("field %q must be a string or number", key),
			})
			return
		}
	}

	label, probs, err := s.score(sample)
	if err != nil {
		var invalid *predict.InvalidSampleError
		if errors.As(err, &invalid) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": invalid.Error()})
			return
		}
		s.logger.Error("api prediction failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "prediction service unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, predictResponse{Label: label, Probabilities: probs})
}

var errNoModel = errors.New("no model loaded")

func (s *Server) score(sample predict.Sample) (domain.Label, map[domain.Label]float64, error) {
	if s.scorer == nil {
		return "", nil, errNoModel
	}
	return s.scorer.Predict(sample)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if s.scorer == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  errNoModel.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}
