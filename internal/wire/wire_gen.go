// Code generated manually. DO NOT EDIT.

//go:build !wireinject
// +build !wireinject

//go:generate go run -mod=mod github.com/google/wire/cmd/wire

package wire

import (
	"context"
	"fmt"

	"github.com/sevigo/action-planner/internal/app"
	"github.com/sevigo/action-planner/internal/config"
	"github.com/sevigo/action-planner/internal/llm"
	"github.com/sevigo/action-planner/internal/logger"
	"github.com/sevigo/action-planner/internal/server"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	loggerConfig := provideLoggerConfig(cfg)
	logWriter, closeLog, err := provideLogWriter(loggerConfig)
	if err != nil {
		return nil, nil, err
	}
	slogLogger := logger.NewLogger(loggerConfig, logWriter)

	// Generator LLM
	model, err := provideGeneratorLLM(ctx, cfg, slogLogger)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to create generator LLM: %w", err)
	}
	generator := provideGenerator(model, cfg, slogLogger)

	// Function catalog
	functionCatalog, err := provideCatalog(cfg)
	if err != nil {
		closeLog()
		return nil, nil, err
	}

	// Prompt Manager
	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to create prompt manager: %w", err)
	}

	// Planner
	actionPlanner, err := providePlanner(cfg, functionCatalog, generator, provideTokenizer(slogLogger), promptMgr, slogLogger)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to create planner: %w", err)
	}

	// Server
	srv := server.NewServer(ctx, cfg, actionPlanner, slogLogger)

	// App
	application := app.NewApp(cfg, actionPlanner, srv, slogLogger)

	cleanup := func() {
		closeLog()
	}

	return application, cleanup, nil
}
