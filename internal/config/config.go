package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/action-planner/internal/core"
	"github.com/sevigo/action-planner/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	ServerPort         string
	LLMProvider        string
	GeminiAPIKey       string
	OllamaHost         string
	GeneratorModelName string
	GenerateTimeout    time.Duration
	CatalogPath        string
	LoggerConfig       logger.Config
	Planner            *core.ActionPlannerConfig
	PlannerCacheSize   int
	PlannerConcurrency int
}

// LoadConfig reads configuration from environment variables and a .env file
// through the global viper instance, so flags bound by the CLI take part in
// the precedence.
func LoadConfig() (*Config, error) {
	v := viper.GetViper()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}

	return Load(v)
}

// Load builds a Config from an already populated viper instance, applying
// defaults and validating the result.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	provider := strings.ToLower(v.GetString("LLM_PROVIDER"))
	generatorModel := v.GetString("GENERATOR_MODEL_NAME")
	switch provider {
	case "ollama":
	case "gemini":
		if v.GetString("GEMINI_API_KEY") == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY must be set for the gemini provider")
		}
		if geminiModel := v.GetString("GEMINI_GENERATOR_MODEL_NAME"); geminiModel != "" {
			generatorModel = geminiModel
		} else {
			generatorModel = "gemini-2.5-flash"
		}
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", provider)
	}

	logLevel := v.GetString("LOG_LEVEL")
	if _, ok := logger.ParseLevel(logLevel); !ok {
		slog.Warn("unrecognized log level, defaulting to info", "provided", logLevel)
		logLevel = "info"
	}

	planner, err := loadPlanner(v)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:         v.GetString("SERVER_PORT"),
		LLMProvider:        provider,
		GeminiAPIKey:       v.GetString("GEMINI_API_KEY"),
		OllamaHost:         v.GetString("OLLAMA_HOST"),
		GeneratorModelName: generatorModel,
		GenerateTimeout:    v.GetDuration("GENERATE_TIMEOUT"),
		CatalogPath:        v.GetString("CATALOG_PATH"),
		LoggerConfig: logger.Config{
			Level:  logLevel,
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
			File:   v.GetString("LOG_FILE"),
		},
		Planner:            planner,
		PlannerCacheSize:   v.GetInt("PLANNER_CACHE_SIZE"),
		PlannerConcurrency: v.GetInt("PLANNER_CONCURRENCY"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("LLM_PROVIDER", "ollama")
	v.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	v.SetDefault("GENERATOR_MODEL_NAME", "gemma3:latest")
	v.SetDefault("GENERATE_TIMEOUT", 2*time.Minute)
	v.SetDefault("CATALOG_PATH", "plugins.yaml")
	v.SetDefault("PLANNER_CACHE_SIZE", 128)
	v.SetDefault("PLANNER_CONCURRENCY", 4)
}

// loadPlanner starts from the optional planner YAML file and lets
// PLANNER_* values override individual fields.
func loadPlanner(v *viper.Viper) (*core.ActionPlannerConfig, error) {
	planner := core.DefaultActionPlannerConfig()

	if path := v.GetString("PLANNER_CONFIG_PATH"); path != "" {
		fromFile, err := LoadPlannerConfig(path)
		switch {
		case errors.Is(err, ErrConfigNotFound):
			slog.Warn("planner config file not found, using defaults", "path", path)
		case err != nil:
			return nil, err
		}
		planner = fromFile
	}

	if v.IsSet("PLANNER_EXCLUDED_PLUGINS") {
		planner.ExcludedPlugins = stringList(v.Get("PLANNER_EXCLUDED_PLUGINS"))
	}
	if v.IsSet("PLANNER_EXCLUDED_FUNCTIONS") {
		planner.ExcludedFunctions = stringList(v.Get("PLANNER_EXCLUDED_FUNCTIONS"))
	}
	if v.IsSet("PLANNER_MAX_TOKENS") {
		planner.MaxTokens = v.GetInt("PLANNER_MAX_TOKENS")
	}

	planner.Normalize()
	if err := planner.Validate(); err != nil {
		return nil, fmt.Errorf("invalid planner configuration: %w", err)
	}
	return planner, nil
}

// stringList accepts either a comma separated string (as found in env vars)
// or a list value (as set from flags or code).
func stringList(raw any) []string {
	var items []string
	switch val := raw.(type) {
	case string:
		items = strings.Split(val, ",")
	case []string:
		items = val
	case []any:
		for _, item := range val {
			items = append(items, fmt.Sprint(item))
		}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
