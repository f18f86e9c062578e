package core

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultMaxTokens is the token budget used when none is supplied.
const DefaultMaxTokens = 1024

// ActionPlannerConfig holds the settings the action planner consumes when it
// enumerates candidate functions and sizes its prompt.
type ActionPlannerConfig struct {
	// Plugins whose functions are never offered to the model.
	ExcludedPlugins []string `yaml:"excluded_plugins" json:"excluded_plugins" mapstructure:"excluded_plugins"`

	// Individual functions that are never offered to the model.
	// Matched against the bare function name, not "plugin.function".
	ExcludedFunctions []string `yaml:"excluded_functions" json:"excluded_functions" mapstructure:"excluded_functions"`

	// Upper bound on prompt and reply size, in tokens.
	MaxTokens int `yaml:"max_tokens" json:"max_tokens" mapstructure:"max_tokens"`
}

// PlannerOption customizes an ActionPlannerConfig during construction.
type PlannerOption func(*ActionPlannerConfig)

// WithExcludedPlugins sets the excluded plugin names. A nil slice is stored as empty.
func WithExcludedPlugins(plugins ...string) PlannerOption {
	return func(c *ActionPlannerConfig) {
		c.ExcludedPlugins = cloneStrings(plugins)
	}
}

// WithExcludedFunctions sets the excluded function names. A nil slice is stored as empty.
func WithExcludedFunctions(functions ...string) PlannerOption {
	return func(c *ActionPlannerConfig) {
		c.ExcludedFunctions = cloneStrings(functions)
	}
}

// WithMaxTokens sets the token budget.
func WithMaxTokens(maxTokens int) PlannerOption {
	return func(c *ActionPlannerConfig) {
		c.MaxTokens = maxTokens
	}
}

// DefaultActionPlannerConfig returns a config with default values.
func DefaultActionPlannerConfig() *ActionPlannerConfig {
	return &ActionPlannerConfig{
		ExcludedPlugins:   []string{},
		ExcludedFunctions: []string{},
		MaxTokens:         DefaultMaxTokens,
	}
}

// NewActionPlannerConfig builds a config from the defaults and applies opts in order.
func NewActionPlannerConfig(opts ...PlannerOption) *ActionPlannerConfig {
	cfg := DefaultActionPlannerConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Normalize()
	return cfg
}

// Normalize replaces nil exclusion lists with empty ones and a zero token
// budget with DefaultMaxTokens. Loaders call it after decoding.
func (c *ActionPlannerConfig) Normalize() {
	if c.ExcludedPlugins == nil {
		c.ExcludedPlugins = []string{}
	}
	if c.ExcludedFunctions == nil {
		c.ExcludedFunctions = []string{}
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
}

// Validate reports whether the config can be used by a planner.
func (c *ActionPlannerConfig) Validate() error {
	if c.MaxTokens <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxTokens, c.MaxTokens)
	}
	for i, p := range c.ExcludedPlugins {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: excluded_plugins[%d]", ErrBlankIdentifier, i)
		}
	}
	for i, f := range c.ExcludedFunctions {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("%w: excluded_functions[%d]", ErrBlankIdentifier, i)
		}
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate a planner's settings.
func (c *ActionPlannerConfig) Clone() *ActionPlannerConfig {
	return &ActionPlannerConfig{
		ExcludedPlugins:   cloneStrings(c.ExcludedPlugins),
		ExcludedFunctions: cloneStrings(c.ExcludedFunctions),
		MaxTokens:         c.MaxTokens,
	}
}

// IsPluginExcluded reports whether name is in the excluded plugins.
func (c *ActionPlannerConfig) IsPluginExcluded(name string) bool {
	return slices.Contains(c.ExcludedPlugins, name)
}

// IsFunctionExcluded reports whether name is in the excluded functions.
func (c *ActionPlannerConfig) IsFunctionExcluded(name string) bool {
	return slices.Contains(c.ExcludedFunctions, name)
}

// Excludes reports whether fn must be skipped, either by its plugin or by its name.
func (c *ActionPlannerConfig) Excludes(fn FunctionView) bool {
	return c.IsPluginExcluded(fn.PluginName) || c.IsFunctionExcluded(fn.Name)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}
