// Package core defines the essential interfaces and data structures that form the
// backbone of the planner. These components are kept abstract so the catalog,
// the model backend and the token counter can be swapped independently.
package core

import (
	"context"
	"strings"
)

// ParameterView describes a single input of a function as shown to the model.
type ParameterView struct {
	Name         string `yaml:"name" json:"name"`
	Description  string `yaml:"description" json:"description,omitempty"`
	DefaultValue string `yaml:"default_value" json:"default_value,omitempty"`
	Required     bool   `yaml:"required" json:"required,omitempty"`
}

// FunctionView is the read-only description of a callable function.
type FunctionView struct {
	PluginName  string          `yaml:"plugin" json:"plugin"`
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description" json:"description,omitempty"`
	Parameters  []ParameterView `yaml:"parameters" json:"parameters,omitempty"`
}

// FullyQualifiedName returns "plugin.function", or just the function name
// when the function does not belong to a plugin.
func (f FunctionView) FullyQualifiedName() string {
	if f.PluginName == "" {
		return f.Name
	}
	return f.PluginName + "." + f.Name
}

// SplitQualifiedName splits "plugin.function" at the last dot. A name without
// a dot yields an empty plugin.
func SplitQualifiedName(qualified string) (plugin, name string) {
	qualified = strings.TrimSpace(qualified)
	idx := strings.LastIndex(qualified, ".")
	if idx < 0 {
		return "", qualified
	}
	return qualified[:idx], qualified[idx+1:]
}

// FunctionCatalog enumerates the functions a planner may choose from.
type FunctionCatalog interface {
	// ListFunctions returns every registered function, excluded or not.
	ListFunctions(ctx context.Context) ([]FunctionView, error)
	// Lookup returns the function registered under plugin and name.
	// It returns ErrFunctionNotFound if there is none.
	Lookup(ctx context.Context, plugin, name string) (FunctionView, error)
}

// Generator produces a completion for a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Tokenizer counts and truncates text in model tokens.
type Tokenizer interface {
	CountTokens(text string) int
	TruncateToTokens(text string, maxTokens int) string
}
