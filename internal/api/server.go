package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ballistics_calculator/internal/ballistics"
	"ballistics_calculator/internal/config"
	"ballistics_calculator/internal/logging"
	"ballistics_calculator/internal/models"
)

type Server struct {
	svc *ballistics.Service
	cfg config.Config
	log *logging.Logger
}

// New constructs the HTTP router wired to the calculation service.
func New(svc *ballistics.Service, cfg config.Config, log *logging.Logger) http.Handler {
	s := &Server{svc: svc, cfg: cfg, log: log}
	r := chi.NewRouter()
	r.Use(corsMiddleware(cfg.AllowedOrigins))

	r.Get("/", s.handleRoot)

	r.Route(cfg.APIPrefix, func(r chi.Router) {
		r.Post("/calculate", s.handleCalculate)
		r.Post("/calculate/batch", s.handleCalculateBatch)
		r.Get("/drag-models", s.handleDragModels)
		r.Post("/validate", s.handleValidate)
		r.Get("/health", s.handleHealth)
		r.Get("/info", s.handleInfo)
	})

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": config.AppName,
		"version": config.Version,
	})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req models.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body", "")
		return
	}

	resp, err := s.svc.Calculate(req)
	if err != nil {
		s.log.Error("trajectory calculation failed", "error", err)
		writeError(w, statusFor(err), err.Error(), ballistics.ErrorCode(err))
		return
	}

	s.log.Info("trajectory calculated",
		"points", len(resp.Trajectory), "zero_adjustment_mil", resp.ZeroAdjustment)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCalculateBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []models.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body", "")
		return
	}
	if len(reqs) == 0 {
		writeError(w, http.StatusBadRequest, "batch is empty", "")
		return
	}

	items := s.svc.CalculateBatch(r.Context(), reqs)
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleDragModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.DragModels())
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req models.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body", "")
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Validate(req))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:      "healthy",
		Version:     config.Version,
		Environment: s.cfg.Environment,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	b := s.svc.Bounds()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"app_name":    config.AppName,
		"version":     config.Version,
		"environment": s.cfg.Environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"api_limits": map[string]float64{
			"max_range_yards": b.MaxRangeYards,
			"min_range_yards": b.MinRangeYards,
			"max_step_size":   b.MaxStepSize,
			"min_step_size":   b.MinStepSize,
		},
	})
}

// ===== helpers =====

// statusFor maps pipeline errors to HTTP statuses: bad input and
// unsolvable zeroes are the caller's problem, a gridless trajectory is
// unprocessable, anything else is an engine failure.
func statusFor(err error) int {
	var ve *ballistics.ValidationError
	var ze *ballistics.ZeroConvergenceError
	switch {
	case errors.As(err, &ve), errors.As(err, &ze):
		return http.StatusBadRequest
	case errors.Is(err, ballistics.ErrNoGridPoints):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail, code string) {
	if detail == "" {
		detail = http.StatusText(status)
	}
	writeJSON(w, status, models.ErrorResponse{Detail: detail, ErrorCode: code})
}

func corsMiddleware(allowed []string) func(http.Handler) http.Handler {
	allowedSet := make(map[string]bool, len(allowed))
	allowAll := false
	for _, o := range allowed {
		if o == "*" {
			allowAll = true
		}
		allowedSet[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if allowedSet[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
