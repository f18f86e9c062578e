// Package handler provides HTTP handlers for the action planner.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sevigo/action-planner/internal/core"
	"github.com/sevigo/action-planner/internal/llm"
	"github.com/sevigo/action-planner/internal/planner"
)

const maxRequestBytes = 1 << 20

// Planner is the subset of the action planner the HTTP layer needs.
type Planner interface {
	Config() *core.ActionPlannerConfig
	AvailableFunctions(ctx context.Context) ([]core.FunctionView, error)
	CreatePlan(ctx context.Context, goal string) (*core.Plan, error)
	CreatePlans(ctx context.Context, goals []string, concurrency int) ([]*core.Plan, error)
}

// PlanHandler serves planning requests.
type PlanHandler struct {
	planner     Planner
	concurrency int
	logger      *slog.Logger
}

// NewPlanHandler creates a handler backed by p.
func NewPlanHandler(p Planner, concurrency int, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{planner: p, concurrency: concurrency, logger: logger}
}

type planRequest struct {
	Goal string `json:"goal"`
}

type plansRequest struct {
	Goals []string `json:"goals"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Config returns the effective planner configuration.
func (h *PlanHandler) Config(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.planner.Config())
}

// ListFunctions returns the functions the planner may choose from.
func (h *PlanHandler) ListFunctions(w http.ResponseWriter, r *http.Request) {
	fns, err := h.planner.AvailableFunctions(r.Context())
	if err != nil {
		h.logger.Error("failed to list functions", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list functions"})
		return
	}
	writeJSON(w, http.StatusOK, fns)
}

// CreatePlan plans a single goal.
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := decode(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	plan, err := h.planner.CreatePlan(r.Context(), req.Goal)
	if err != nil {
		h.writePlanError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// CreatePlans plans several goals concurrently.
func (h *PlanHandler) CreatePlans(w http.ResponseWriter, r *http.Request) {
	var req plansRequest
	if err := decode(w, r, &req); err != nil || len(req.Goals) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request must contain at least one goal"})
		return
	}

	plans, err := h.planner.CreatePlans(r.Context(), req.Goals, h.concurrency)
	if err != nil {
		h.writePlanError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (h *PlanHandler) writePlanError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, planner.ErrEmptyGoal), errors.Is(err, planner.ErrPromptTooLarge):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, planner.ErrUnknownFunction), errors.Is(err, llm.ErrInvalidPlanResponse):
		h.logger.Warn("model returned an unusable plan", "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: "planning timed out"})
	default:
		h.logger.Error("planning failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "planning failed"})
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
