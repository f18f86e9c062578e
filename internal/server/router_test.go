package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/action-planner/internal/catalog"
	"github.com/sevigo/action-planner/internal/config"
	"github.com/sevigo/action-planner/internal/core"
	"github.com/sevigo/action-planner/internal/llm"
	"github.com/sevigo/action-planner/internal/planner"
	"github.com/sevigo/action-planner/mocks"
)

func TestRouter_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(`{"plan":{"rationale":"clock","function":"TimePlugin.Now","parameters":{}}}`, nil)

	cat, err := catalog.New(core.FunctionView{PluginName: "TimePlugin", Name: "Now", Description: "Current time"})
	require.NoError(t, err)
	pm, err := llm.NewPromptManager()
	require.NoError(t, err)
	logger := slog.New(slog.DiscardHandler)

	p, err := planner.New(nil, cat, gen, &llm.Tokenizer{}, pm, logger)
	require.NoError(t, err)

	cfg := &config.Config{GenerateTimeout: time.Second, PlannerConcurrency: 2}
	srv := httptest.NewServer(NewRouter(cfg, p, logger))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, srv.URL+"/api/v1/plan", strings.NewReader(`{"goal":"what time is it"}`))
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
