package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"cruxpad/internal/contextutil"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ModelChecker reports whether the configured LLM model is being served.
type ModelChecker interface {
	ModelAvailable(ctx context.Context) (bool, error)
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	db                 Pinger
	models             ModelChecker
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler. models may be nil, in which
// case the LLM is not checked.
func NewHealthHandler(db Pinger, models ModelChecker) *HealthHandler {
	return &HealthHandler{
		db:                 db,
		models:             models,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
//
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall health status: "healthy", "degraded", or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is degraded or unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// The database is critical: if it is unreachable the service is unhealthy
// (503). An unreachable LLM only degrades the service (200), since uploads,
// exports and the theme still work.
//
// swagger:route GET /api/health healthCheck
//
// # Health check endpoint
//
// ---
// produces:
// - application/json
// responses:
//
//	'200':
//	  description: System is healthy or degraded
//	  schema:
//	    "$ref": "#/definitions/HealthResponse"
//	'503':
//	  description: System is unhealthy
//	  schema:
//	    "$ref": "#/definitions/HealthResponse"
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string
	status := "healthy"
	httpStatus := http.StatusOK

	if h.checkDatabase(checkCtx, logger) {
		checks["database"] = "ok"
	} else {
		checks["database"] = "error"
		issues = append(issues, "database_unavailable")
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	if h.models != nil {
		if h.checkModel(checkCtx, logger) {
			checks["llm"] = "ok"
		} else {
			checks["llm"] = "error"
			issues = append(issues, "llm_unavailable")
			if status == "healthy" {
				status = "degraded"
			}
		}
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}

// checkDatabase checks if the database is reachable.
func (h *HealthHandler) checkDatabase(ctx context.Context, logger *slog.Logger) bool {
	if err := h.db.PingContext(ctx); err != nil {
		logger.WarnContext(ctx, "database health check failed", "error", err)
		return false
	}
	return true
}

// checkModel checks if the LLM server lists the configured model.
func (h *HealthHandler) checkModel(ctx context.Context, logger *slog.Logger) bool {
	ok, err := h.models.ModelAvailable(ctx)
	if err != nil {
		logger.WarnContext(ctx, "llm health check failed", "error", err)
		return false
	}
	if !ok {
		logger.WarnContext(ctx, "llm model not listed by server")
		return false
	}
	return true
}
