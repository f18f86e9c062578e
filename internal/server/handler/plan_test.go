package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/action-planner/internal/core"
	"github.com/sevigo/action-planner/internal/llm"
	"github.com/sevigo/action-planner/internal/planner"
)

type fakePlanner struct {
	cfg       *core.ActionPlannerConfig
	functions []core.FunctionView
	listErr   error
	planErr   error
	gotGoals  []string
	gotLimit  int
}

func (f *fakePlanner) Config() *core.ActionPlannerConfig { return f.cfg }

func (f *fakePlanner) AvailableFunctions(context.Context) ([]core.FunctionView, error) {
	return f.functions, f.listErr
}

func (f *fakePlanner) CreatePlan(_ context.Context, goal string) (*core.Plan, error) {
	if f.planErr != nil {
		return nil, f.planErr
	}
	return &core.Plan{ID: "p1", Goal: goal}, nil
}

func (f *fakePlanner) CreatePlans(_ context.Context, goals []string, limit int) ([]*core.Plan, error) {
	f.gotGoals, f.gotLimit = goals, limit
	if f.planErr != nil {
		return nil, f.planErr
	}
	plans := make([]*core.Plan, len(goals))
	for i, g := range goals {
		plans[i] = &core.Plan{ID: fmt.Sprint(i), Goal: g}
	}
	return plans, nil
}

func newHandler(p *fakePlanner) *PlanHandler {
	return NewPlanHandler(p, 3, slog.New(slog.DiscardHandler))
}

func TestPlanHandler_CreatePlan(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		planErr    error
		wantStatus int
	}{
		{name: "ok", body: `{"goal":"send mail"}`, wantStatus: http.StatusOK},
		{name: "bad json", body: `{"goal":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"target":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "empty goal", body: `{"goal":""}`, planErr: planner.ErrEmptyGoal, wantStatus: http.StatusBadRequest},
		{name: "prompt too large", body: `{"goal":"g"}`, planErr: planner.ErrPromptTooLarge, wantStatus: http.StatusBadRequest},
		{name: "bad model output", body: `{"goal":"g"}`, planErr: fmt.Errorf("wrap: %w", llm.ErrInvalidPlanResponse), wantStatus: http.StatusBadGateway},
		{name: "no plan object in model output", body: `{"goal":"g"}`, planErr: fmt.Errorf("%w: %w", llm.ErrInvalidPlanResponse, llm.ErrNoJSONObject), wantStatus: http.StatusBadGateway},
		{name: "unknown function", body: `{"goal":"g"}`, planErr: planner.ErrUnknownFunction, wantStatus: http.StatusBadGateway},
		{name: "timeout", body: `{"goal":"g"}`, planErr: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout},
		{name: "other failure", body: `{"goal":"g"}`, planErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandler(&fakePlanner{planErr: tt.planErr})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/plan", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.CreatePlan(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.wantStatus == http.StatusOK {
				var plan core.Plan
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
				assert.Equal(t, "send mail", plan.Goal)
			}
		})
	}
}

func TestPlanHandler_CreatePlans(t *testing.T) {
	fp := &fakePlanner{}
	h := newHandler(fp)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(`{"goals":["a","b"]}`))
	rec := httptest.NewRecorder()
	h.CreatePlans(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"a", "b"}, fp.gotGoals)
	assert.Equal(t, 3, fp.gotLimit)

	var plans []core.Plan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plans))
	assert.Len(t, plans, 2)

	rec = httptest.NewRecorder()
	h.CreatePlans(rec, httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(`{"goals":[]}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlanHandler_ListFunctionsAndConfig(t *testing.T) {
	fp := &fakePlanner{
		cfg:       core.NewActionPlannerConfig(core.WithExcludedPlugins("FilePlugin")),
		functions: []core.FunctionView{{PluginName: "TimePlugin", Name: "Now"}},
	}
	h := newHandler(fp)

	rec := httptest.NewRecorder()
	h.ListFunctions(rec, httptest.NewRequest(http.MethodGet, "/api/v1/functions", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"plugin":"TimePlugin"`)

	rec = httptest.NewRecorder()
	h.Config(rec, httptest.NewRequest(http.MethodGet, "/api/v1/config", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var cfg core.ActionPlannerConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, []string{"FilePlugin"}, cfg.ExcludedPlugins)
	assert.Equal(t, 1024, cfg.MaxTokens)

	fp.listErr = errors.New("down")
	rec = httptest.NewRecorder()
	h.ListFunctions(rec, httptest.NewRequest(http.MethodGet, "/api/v1/functions", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
