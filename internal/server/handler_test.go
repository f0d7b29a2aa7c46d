package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	calc "github.com/bvrgo/buyrent-calculator/internal/calculation"
	"github.com/bvrgo/buyrent-calculator/internal/config"
	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

func validParamsJSON(t *testing.T) []byte {
	t.Helper()
	params := config.NewInputParser().CreateExampleParams()
	params.Years = 5
	body, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	return body
}

func TestSimulateHandler_OK(t *testing.T) {
	handler := NewSimulateHandler(calc.NewEngine(), NewMemoryCache())

	req := httptest.NewRequest(http.MethodPost, "/api/simulate", bytes.NewBuffer(validParamsJSON(t)))
	w := httptest.NewRecorder()

	handler.Simulate(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, w.Body.String())
	}
	if got := resp.Header.Get("X-Cache"); got != "miss" {
		t.Fatalf("expected cache miss on first call, got %q", got)
	}

	var result domain.SimulationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(result.YearlyData) != 5 {
		t.Fatalf("expected 5 yearly records, got %d", len(result.YearlyData))
	}
}

func TestSimulateHandler_CacheHit(t *testing.T) {
	handler := NewSimulateHandler(calc.NewEngine(), NewMemoryCache())
	body := validParamsJSON(t)

	w1 := httptest.NewRecorder()
	handler.Simulate(w1, httptest.NewRequest(http.MethodPost, "/api/simulate", bytes.NewBuffer(body)))
	if w1.Code != http.StatusOK {
		t.Fatalf("first call: expected 200, got %d", w1.Code)
	}

	w2 := httptest.NewRecorder()
	handler.Simulate(w2, httptest.NewRequest(http.MethodPost, "/api/simulate", bytes.NewBuffer(body)))
	if w2.Code != http.StatusOK {
		t.Fatalf("second call: expected 200, got %d", w2.Code)
	}
	if got := w2.Header().Get("X-Cache"); got != "hit" {
		t.Fatalf("expected cache hit on second call, got %q", got)
	}
	if w1.Body.String() != w2.Body.String() {
		t.Fatal("cached response differs from computed response")
	}
}

func TestSimulateHandler_MethodNotAllowed(t *testing.T) {
	handler := NewSimulateHandler(calc.NewEngine(), NewMemoryCache())

	req := httptest.NewRequest(http.MethodGet, "/api/simulate", nil)
	w := httptest.NewRecorder()

	handler.Simulate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestSimulateHandler_BadRequest(t *testing.T) {
	handler := NewSimulateHandler(calc.NewEngine(), NewMemoryCache())

	req := httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.Simulate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSimulateHandler_ValidationError(t *testing.T) {
	handler := NewSimulateHandler(calc.NewEngine(), NewMemoryCache())

	req := httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(`{"years": 10}`))
	w := httptest.NewRecorder()

	handler.Simulate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing budget strategy, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "budget strategy") {
		t.Fatalf("expected budget strategy error, got: %s", w.Body.String())
	}
}

func TestBreakEvenHandler(t *testing.T) {
	handler := NewSimulateHandler(calc.NewEngine(), NewMemoryCache())

	req := httptest.NewRequest(http.MethodPost, "/api/breakeven", bytes.NewBuffer(validParamsJSON(t)))
	w := httptest.NewRecorder()

	handler.BreakEven(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var payload map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := payload["break_even"]; !ok {
		t.Fatal("expected break_even field in response")
	}
}

func TestRateLimiterEnforcesBudget(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") || !rl.Allow("10.0.0.1") {
		t.Fatal("first two requests should pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("third request should be rejected")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatal("different client should pass")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := RateLimitMiddleware(rl, next)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = "192.0.2.1:4000"

	w1 := httptest.NewRecorder()
	wrapped.ServeHTTP(w1, req)
	if w1.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w1.Code)
	}

	w2 := httptest.NewRecorder()
	wrapped.ServeHTTP(w2, req)
	if w2.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", w2.Code)
	}
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	Healthz(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
