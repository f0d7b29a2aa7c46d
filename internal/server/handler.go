// Package server exposes the simulation engine over HTTP with result caching.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	calc "github.com/bvrgo/buyrent-calculator/internal/calculation"
	"github.com/bvrgo/buyrent-calculator/internal/config"
	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// SimulateHandler runs projections for POSTed parameter sets.
type SimulateHandler struct {
	engine *calc.Engine
	parser *config.InputParser
	cache  ResultCache
}

func NewSimulateHandler(engine *calc.Engine, cache ResultCache) *SimulateHandler {
	return &SimulateHandler{
		engine: engine,
		parser: config.NewInputParser(),
		cache:  cache,
	}
}

// Simulate handles POST /api/simulate.
func (h *SimulateHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var params domain.SimulationParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.parser.ValidateParams(&params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := CacheKey(&params)
	if key != "" {
		if cached, ok := h.cache.Get(key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "hit")
			_, _ = w.Write([]byte(cached))
			return
		}
	}

	result := h.engine.Run(&params)
	body, err := json.Marshal(result)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if key != "" {
		_ = h.cache.Set(key, string(body))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "miss")
	_, _ = w.Write(body)
}

// BreakEven handles POST /api/breakeven. It runs the projection and returns
// only the crossover point.
func (h *SimulateHandler) BreakEven(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var params domain.SimulationParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.parser.ValidateParams(&params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.engine.Run(&params)
	be, err := calc.CalculateNetWorthBreakEven(result.YearlyData)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if be == nil {
		_ = json.NewEncoder(w).Encode(map[string]any{"break_even": nil})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"break_even": be})
}

// Healthz handles GET /healthz.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// NewMux builds the full route table with rate limiting applied to the
// simulation endpoints.
func NewMux(engine *calc.Engine, cache ResultCache, limiter *RateLimiter) *http.ServeMux {
	handler := NewSimulateHandler(engine, cache)

	mux := http.NewServeMux()
	mux.Handle("/api/simulate", RateLimitMiddleware(limiter, http.HandlerFunc(handler.Simulate)))
	mux.Handle("/api/breakeven", RateLimitMiddleware(limiter, http.HandlerFunc(handler.BreakEven)))
	mux.HandleFunc("/healthz", Healthz)
	return mux
}

// DefaultRateLimit is the per-client request budget per refill window.
const (
	DefaultRateLimit     = 30
	DefaultRefillWindow  = time.Minute
	DefaultListenAddress = ":8080"
)
