package wire

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/gemini"
	"github.com/sevigo/goframe/llms/ollama"

	"github.com/sevigo/action-planner/internal/app"
	"github.com/sevigo/action-planner/internal/catalog"
	"github.com/sevigo/action-planner/internal/config"
	"github.com/sevigo/action-planner/internal/core"
	"github.com/sevigo/action-planner/internal/llm"
	"github.com/sevigo/action-planner/internal/logger"
	"github.com/sevigo/action-planner/internal/planner"
	"github.com/sevigo/action-planner/internal/server"
	"github.com/sevigo/action-planner/internal/server/handler"
)

var AppSet = wire.NewSet(
	app.NewApp,
	server.NewServer,
	logger.NewLogger,
	config.LoadConfig,
	llm.NewPromptManager,
	provideGeneratorLLM,
	provideGenerator,
	provideTokenizer,
	provideCatalog,
	providePlanner,
	provideLoggerConfig,
	provideLogWriter,
	wire.Bind(new(handler.Planner), new(*planner.ActionPlanner)),
)

func provideGeneratorLLM(ctx context.Context, cfg *config.Config, logger *slog.Logger) (llms.Model, error) {
	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set in environment for gemini provider")
		}
		return gemini.New(ctx,
			gemini.WithModel(cfg.GeneratorModelName),
			gemini.WithAPIKey(cfg.GeminiAPIKey),
		)
	case "ollama":
		return ollama.New(
			ollama.WithServerURL(cfg.OllamaHost),
			ollama.WithHTTPClient(newOllamaHTTPClient()),
			ollama.WithModel(cfg.GeneratorModelName),
			ollama.WithLogger(logger),
		)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}

func provideGenerator(model llms.Model, cfg *config.Config, logger *slog.Logger) core.Generator {
	return llm.NewGoframeGenerator(model, cfg.GenerateTimeout, logger)
}

func provideTokenizer(logger *slog.Logger) core.Tokenizer {
	return llm.NewTokenizer(llm.DefaultEncoding, logger)
}

func provideCatalog(cfg *config.Config) (core.FunctionCatalog, error) {
	c, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load function catalog: %w", err)
	}
	return c, nil
}

func providePlanner(
	cfg *config.Config,
	fc core.FunctionCatalog,
	gen core.Generator,
	tok core.Tokenizer,
	pm *llm.PromptManager,
	logger *slog.Logger,
) (*planner.ActionPlanner, error) {
	return planner.New(cfg.Planner, fc, gen, tok, pm, logger,
		planner.WithCacheSize(cfg.PlannerCacheSize),
		planner.WithProvider(llm.ModelProvider(cfg.LLMProvider)),
	)
}

// newOllamaHTTPClient creates an HTTP client with longer timeouts for Ollama requests.
func newOllamaHTTPClient() *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   5 * time.Minute,
	}
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.LoggerConfig
}

// provideLogWriter opens the configured log destination. The cleanup closes
// the log file when output goes to one.
func provideLogWriter(cfg logger.Config) (io.Writer, func(), error) {
	return logger.OpenOutput(cfg)
}
