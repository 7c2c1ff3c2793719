// Package http exposes a read-only HTTP surface over a model registry:
// model listings, topology diagrams and generated test suites, plus
// Prometheus metrics.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/sxm/internal/presentation/graph"
	"github.com/aretw0/sxm/pkg/registry"
)

// Server serves the registry over HTTP.
type Server struct {
	registry *registry.Registry
	logger   *slog.Logger
	metrics  *metrics
}

type metrics struct {
	registry       *prometheus.Registry
	testsGenerated *prometheus.CounterVec
	uncovered      *prometheus.CounterVec
	duration       *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		testsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sxm_generated_tests_total",
				Help: "Test cases generated, by model and kind.",
			},
			[]string{"model", "kind"},
		),
		uncovered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sxm_uncovered_obligations_total",
				Help: "Phi obligations the guard-aware search could not cover.",
			},
			[]string{"model"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sxm_request_duration_seconds",
				Help:    "HTTP request duration.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
	m.registry.MustRegister(m.testsGenerated, m.uncovered, m.duration)
	return m
}

// NewHandler creates the HTTP handler for a registry.
func NewHandler(reg *registry.Registry, logger *slog.Logger) http.Handler {
	s := &Server{
		registry: reg,
		logger:   logger,
		metrics:  newMetrics(),
	}

	r := chi.NewRouter()
	r.Get("/models", s.timed("models", s.handleListModels))
	r.Get("/models/{name}/graph", s.timed("graph", s.handleGraph))
	r.Get("/models/{name}/tests/{kind}", s.timed("tests", s.handleTests))
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) timed(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		s.metrics.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

type modelSummary struct {
	Name   string `json:"name"`
	States int    `json:"states"`
	Inputs int    `json:"inputs"`
	Phis   int    `json:"phis"`
}

func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	summaries := make([]modelSummary, 0)
	for _, name := range s.registry.Names() {
		model, _ := s.registry.Get(name)
		topo := model.Topology()
		summaries = append(summaries, modelSummary{
			Name:   name,
			States: len(topo.States),
			Inputs: len(topo.Inputs),
			Phis:   len(topo.Phis),
		})
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	model, ok := s.registry.Get(chi.URLParam(r, "name"))
	if !ok {
		http.Error(w, "model not found", http.StatusNotFound)
		return
	}

	topo := model.Topology()
	var rendered string
	switch format := r.URL.Query().Get("format"); format {
	case "", "dot":
		rendered = graph.GenerateDot(topo)
	case "mermaid":
		rendered = graph.GenerateMermaid(topo)
	default:
		http.Error(w, "unknown format (want dot or mermaid)", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(rendered))
}

func (s *Server) handleTests(w http.ResponseWriter, r *http.Request) {
	model, ok := s.registry.Get(chi.URLParam(r, "name"))
	if !ok {
		http.Error(w, "model not found", http.StatusNotFound)
		return
	}

	depth := 0
	if raw := r.URL.Query().Get("depth"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "depth must be a positive integer", http.StatusBadRequest)
			return
		}
		depth = parsed
	}

	kind := registry.Kind(chi.URLParam(r, "kind"))
	suite, err := model.Generate(kind, depth)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.testsGenerated.WithLabelValues(suite.Model, string(suite.Kind)).Add(float64(len(suite.Cases)))
	s.metrics.uncovered.WithLabelValues(suite.Model).Add(float64(len(suite.Uncovered)))
	s.writeJSON(w, http.StatusOK, suite)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}
