// Package catalog provides an in-memory function catalog loaded from a YAML
// plugin manifest.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/action-planner/internal/core"
)

var (
	ErrDuplicateFunction = errors.New("function already registered")
	ErrInvalidFunction   = errors.New("invalid function definition")
	ErrManifestParsing   = errors.New("manifest parsing failed")
)

// Manifest is the on-disk layout of a plugin catalog.
//
//	plugins:
//	  - name: EmailPlugin
//	    functions:
//	      - name: Send
//	        description: Send an email
//	        parameters:
//	          - name: to
//	            required: true
type Manifest struct {
	Plugins []PluginManifest `yaml:"plugins"`
}

// PluginManifest groups the functions of one plugin.
type PluginManifest struct {
	Name      string             `yaml:"name"`
	Functions []FunctionManifest `yaml:"functions"`
}

// FunctionManifest describes a single function inside a plugin.
type FunctionManifest struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Parameters  []core.ParameterView `yaml:"parameters"`
}

// Catalog is a concurrency-safe core.FunctionCatalog backed by a map.
type Catalog struct {
	mu        sync.RWMutex
	functions map[string]core.FunctionView
}

var _ core.FunctionCatalog = (*Catalog)(nil)

// New creates a catalog holding the given functions.
func New(functions ...core.FunctionView) (*Catalog, error) {
	c := &Catalog{functions: make(map[string]core.FunctionView, len(functions))}
	for _, fn := range functions {
		if err := c.Register(fn); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadFile reads a YAML manifest from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog manifest %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML manifest bytes.
func Parse(data []byte) (*Catalog, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestParsing, err)
	}

	var functions []core.FunctionView
	for _, plugin := range manifest.Plugins {
		for _, fn := range plugin.Functions {
			functions = append(functions, core.FunctionView{
				PluginName:  plugin.Name,
				Name:        fn.Name,
				Description: fn.Description,
				Parameters:  fn.Parameters,
			})
		}
	}
	return New(functions...)
}

// Register adds fn to the catalog. Names must be non-blank and must not
// contain dots; "plugin.function" has to stay unambiguous.
func (c *Catalog) Register(fn core.FunctionView) error {
	fn.PluginName = strings.TrimSpace(fn.PluginName)
	fn.Name = strings.TrimSpace(fn.Name)
	if fn.Name == "" {
		return fmt.Errorf("%w: function name is empty (plugin %q)", ErrInvalidFunction, fn.PluginName)
	}
	if strings.Contains(fn.Name, ".") || strings.Contains(fn.PluginName, ".") {
		return fmt.Errorf("%w: %q must not contain dots", ErrInvalidFunction, fn.FullyQualifiedName())
	}

	key := fn.FullyQualifiedName()

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.functions[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFunction, key)
	}
	c.functions[key] = cloneFunction(fn)
	return nil
}

// ListFunctions returns all functions sorted by fully qualified name.
func (c *Catalog) ListFunctions(_ context.Context) ([]core.FunctionView, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]core.FunctionView, 0, len(c.functions))
	for _, fn := range c.functions {
		out = append(out, cloneFunction(fn))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FullyQualifiedName() < out[j].FullyQualifiedName()
	})
	return out, nil
}

// Lookup returns the function registered as plugin.name.
func (c *Catalog) Lookup(_ context.Context, plugin, name string) (core.FunctionView, error) {
	key := core.FunctionView{PluginName: plugin, Name: name}.FullyQualifiedName()

	c.mu.RLock()
	defer c.mu.RUnlock()
	fn, ok := c.functions[key]
	if !ok {
		return core.FunctionView{}, fmt.Errorf("%w: %s", core.ErrFunctionNotFound, key)
	}
	return cloneFunction(fn), nil
}

// cloneFunction detaches the parameter slice so callers cannot edit the catalog.
func cloneFunction(fn core.FunctionView) core.FunctionView {
	fn.Parameters = slices.Clone(fn.Parameters)
	return fn
}

// Len returns the number of registered functions.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.functions)
}
