package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/action-planner/internal/core"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "ollama", cfg.LLMProvider)
	assert.Equal(t, "gemma3:latest", cfg.GeneratorModelName)
	assert.Equal(t, 2*time.Minute, cfg.GenerateTimeout)
	assert.Equal(t, "info", cfg.LoggerConfig.Level)
	assert.Equal(t, 128, cfg.PlannerCacheSize)
	assert.Equal(t, core.DefaultActionPlannerConfig(), cfg.Planner)
}

func TestLoad_Providers(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]any
		wantModel string
		wantErr   bool
	}{
		{
			name:    "gemini without key",
			values:  map[string]any{"LLM_PROVIDER": "gemini"},
			wantErr: true,
		},
		{
			name:      "gemini default model",
			values:    map[string]any{"LLM_PROVIDER": "gemini", "GEMINI_API_KEY": "k"},
			wantModel: "gemini-2.5-flash",
		},
		{
			name: "gemini explicit model",
			values: map[string]any{
				"LLM_PROVIDER":                "Gemini",
				"GEMINI_API_KEY":              "k",
				"GEMINI_GENERATOR_MODEL_NAME": "gemini-2.5-pro",
			},
			wantModel: "gemini-2.5-pro",
		},
		{
			name:    "unknown provider",
			values:  map[string]any{"LLM_PROVIDER": "openai"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.values {
				v.Set(k, val)
			}
			cfg, err := Load(v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, cfg.GeneratorModelName)
		})
	}
}

func TestLoad_UnknownLogLevelFallsBack(t *testing.T) {
	v := viper.New()
	v.Set("LOG_LEVEL", "loud")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LoggerConfig.Level)
}

func TestLoad_PlannerOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "planner.yaml", `
excluded_plugins: [FilePlugin]
excluded_functions: [Delete]
max_tokens: 2048
`)

	t.Run("file only", func(t *testing.T) {
		v := viper.New()
		v.Set("PLANNER_CONFIG_PATH", path)

		cfg, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, []string{"FilePlugin"}, cfg.Planner.ExcludedPlugins)
		assert.Equal(t, []string{"Delete"}, cfg.Planner.ExcludedFunctions)
		assert.Equal(t, 2048, cfg.Planner.MaxTokens)
	})

	t.Run("env wins over file", func(t *testing.T) {
		v := viper.New()
		v.Set("PLANNER_CONFIG_PATH", path)
		v.Set("PLANNER_EXCLUDED_PLUGINS", "EmailPlugin, ,TimePlugin")
		v.Set("PLANNER_MAX_TOKENS", 512)

		cfg, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, []string{"EmailPlugin", "TimePlugin"}, cfg.Planner.ExcludedPlugins)
		assert.Equal(t, []string{"Delete"}, cfg.Planner.ExcludedFunctions)
		assert.Equal(t, 512, cfg.Planner.MaxTokens)
	})

	t.Run("list values", func(t *testing.T) {
		v := viper.New()
		v.Set("PLANNER_EXCLUDED_FUNCTIONS", []string{"Send", "Read"})

		cfg, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, []string{"Send", "Read"}, cfg.Planner.ExcludedFunctions)
		assert.Empty(t, cfg.Planner.ExcludedPlugins)
	})

	t.Run("missing file keeps defaults", func(t *testing.T) {
		v := viper.New()
		v.Set("PLANNER_CONFIG_PATH", filepath.Join(dir, "absent.yaml"))

		cfg, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, core.DefaultMaxTokens, cfg.Planner.MaxTokens)
	})

	t.Run("negative budget rejected", func(t *testing.T) {
		v := viper.New()
		v.Set("PLANNER_MAX_TOKENS", -5)

		_, err := Load(v)
		assert.ErrorIs(t, err, core.ErrInvalidMaxTokens)
	})
}

func TestLoadPlannerConfig(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name          string
		content       string
		wantErr       error
		wantPlugins   []string
		wantFunctions []string
		wantMaxTokens int
	}{
		{
			name:          "empty document keeps defaults",
			content:       "",
			wantPlugins:   []string{},
			wantFunctions: []string{},
			wantMaxTokens: 1024,
		},
		{
			name:          "explicit nulls become empty lists",
			content:       "excluded_plugins: null\nexcluded_functions: ~\n",
			wantPlugins:   []string{},
			wantFunctions: []string{},
			wantMaxTokens: 1024,
		},
		{
			name:          "only max tokens",
			content:       "max_tokens: 300\n",
			wantPlugins:   []string{},
			wantFunctions: []string{},
			wantMaxTokens: 300,
		},
		{
			name:    "malformed yaml",
			content: "excluded_plugins: [unterminated\n",
			wantErr: ErrConfigParsing,
		},
		{
			name:    "blank identifier",
			content: "excluded_functions: ['']\n",
			wantErr: ErrConfigParsing,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, filepath.Base(t.Name())+string(rune('a'+i))+".yaml", tt.content)
			cfg, err := LoadPlannerConfig(path)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPlugins, cfg.ExcludedPlugins)
			assert.Equal(t, tt.wantFunctions, cfg.ExcludedFunctions)
			assert.Equal(t, tt.wantMaxTokens, cfg.MaxTokens)
		})
	}
}

func TestLoadPlannerConfig_NotFound(t *testing.T) {
	cfg, err := LoadPlannerConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
	require.NotNil(t, cfg)
	assert.Equal(t, core.DefaultActionPlannerConfig(), cfg)
}
