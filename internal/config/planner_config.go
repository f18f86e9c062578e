package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/action-planner/internal/core"
)

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParsing  = errors.New("config parsing failed")
)

// LoadPlannerConfig loads and parses a planner YAML file. A missing file
// yields the defaults together with ErrConfigNotFound so callers may continue.
func LoadPlannerConfig(path string) (*core.ActionPlannerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.DefaultActionPlannerConfig(), ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read planner config %s: %w", path, err)
	}
	return ParsePlannerConfig(data)
}

// ParsePlannerConfig decodes planner settings from YAML. Keys that are absent
// keep their defaults; explicit nulls are normalized back to empty lists.
func ParsePlannerConfig(data []byte) (*core.ActionPlannerConfig, error) {
	cfg := core.DefaultActionPlannerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParsing, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParsing, err)
	}
	return cfg, nil
}
