package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "planner-cli",
	Short: "planner-cli asks a model which function best serves a goal.",
	Long: `A CLI for the action planner. It loads a plugin catalog, filters it with the
planner configuration (excluded plugins, excluded functions, token budget) and
asks the configured LLM to choose one function for each goal.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// flagBindings maps persistent flags onto the configuration keys read by config.Load.
var flagBindings = map[string]string{
	"catalog":          "CATALOG_PATH",
	"planner-config":   "PLANNER_CONFIG_PATH",
	"max-tokens":       "PLANNER_MAX_TOKENS",
	"exclude-plugin":   "PLANNER_EXCLUDED_PLUGINS",
	"exclude-function": "PLANNER_EXCLUDED_FUNCTIONS",
	"provider":         "LLM_PROVIDER",
	"model":            "GENERATOR_MODEL_NAME",
	"log-level":        "LOG_LEVEL",
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	flags := rootCmd.PersistentFlags()
	flags.String("catalog", "", "Path to the plugin catalog YAML (default plugins.yaml)")
	flags.String("planner-config", "", "Path to a planner config YAML")
	flags.Int("max-tokens", 0, "Token budget for prompt and reply (default 1024)")
	flags.StringSlice("exclude-plugin", nil, "Plugin to hide from the model (repeatable)")
	flags.StringSlice("exclude-function", nil, "Function to hide from the model (repeatable)")
	flags.String("provider", "", "LLM provider: ollama or gemini")
	flags.String("model", "", "Generator model name")
	flags.String("log-level", "", "Log level: debug, info, warn, error")

	for flag, key := range flagBindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}
}
