package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Checker is a function that checks the health of a dependency.
type Checker func(ctx context.Context) error

// Status represents the health status of a component.
type Status string

const (
	StatusUp       Status = "up"
	StatusDown     Status = "down"
	StatusDegraded Status = "degraded"
)

// Response is the JSON body returned by the health endpoints.
type Response struct {
	Status    Status                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is the result of a single health check.
type CheckResult struct {
	Status    Status `json:"status"`
	Critical  bool   `json:"critical"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

type dependency struct {
	name     string
	check    Checker
	critical bool
}

// Handler serves liveness and readiness endpoints.
//
// A failing critical check makes the service not ready (503). A failing
// non-critical check only degrades it (200, status "degraded"). Checks run
// concurrently and share one timeout.
type Handler struct {
	mu      sync.RWMutex
	deps    map[string]dependency
	timeout time.Duration
}

// NewHandler creates a new health check handler.
func NewHandler() *Handler {
	return &Handler{
		deps:    make(map[string]dependency),
		timeout: 5 * time.Second,
	}
}

// RegisterCritical adds a checker whose failure marks the service down.
// Registering a name twice replaces the earlier checker.
func (h *Handler) RegisterCritical(name string, checker Checker) {
	h.register(dependency{name: name, check: checker, critical: true})
}

// RegisterNonCritical adds a checker whose failure only degrades the service.
func (h *Handler) RegisterNonCritical(name string, checker Checker) {
	h.register(dependency{name: name, check: checker})
}

func (h *Handler) register(d dependency) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deps[d.name] = d
}

// LivenessHandler always reports up while the process is running.
func (h *Handler) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, Response{
			Status:    StatusUp,
			Timestamp: time.Now().UTC(),
		})
	}
}

// ReadinessHandler runs all registered checks and returns 200 or 503.
func (h *Handler) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		checks := h.runChecks(ctx)

		overall := StatusUp
		for _, c := range checks {
			switch {
			case c.Status == StatusUp:
			case c.Critical:
				overall = StatusDown
			case overall == StatusUp:
				overall = StatusDegraded
			}
		}

		status := http.StatusOK
		if overall == StatusDown {
			status = http.StatusServiceUnavailable
		}
		writeResponse(w, status, Response{
			Status:    overall,
			Timestamp: time.Now().UTC(),
			Checks:    checks,
		})
	}
}

func (h *Handler) runChecks(ctx context.Context) map[string]CheckResult {
	h.mu.RLock()
	deps := make([]dependency, 0, len(h.deps))
	for _, d := range h.deps {
		deps = append(deps, d)
	}
	h.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]CheckResult, len(deps))
	)
	for _, d := range deps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			err := d.check(ctx)

			res := CheckResult{Status: StatusUp, Critical: d.critical, LatencyMS: time.Since(start).Milliseconds()}
			if err != nil {
				res.Status = StatusDown
				res.Error = err.Error()
			}

			mu.Lock()
			results[d.name] = res
			mu.Unlock()
		}()
	}
	wg.Wait()
	return results
}

func writeResponse(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
