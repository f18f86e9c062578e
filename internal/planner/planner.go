// Package planner implements the action planner: given a goal it asks the
// model to pick the single best function from the catalog.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/sevigo/action-planner/internal/core"
	"github.com/sevigo/action-planner/internal/llm"
)

// PluginName is the plugin the planner registers its own helpers under.
// It is never offered to the model.
const PluginName = "ActionPlanner_Excluded"

// ActionPlanner selects one function from a catalog to fulfil a goal.
type ActionPlanner struct {
	cfg       *core.ActionPlannerConfig
	catalog   core.FunctionCatalog
	generator core.Generator
	tokenizer core.Tokenizer
	prompts   *llm.PromptManager
	logger    *slog.Logger

	provider  llm.ModelProvider
	cacheSize int
	cache     *lru.Cache[string, *core.Plan]
	now       func() time.Time
	newID     func() string
}

// New creates a planner. A nil cfg means the defaults; cfg is copied so later
// changes by the caller have no effect.
func New(
	cfg *core.ActionPlannerConfig,
	catalog core.FunctionCatalog,
	generator core.Generator,
	tokenizer core.Tokenizer,
	prompts *llm.PromptManager,
	logger *slog.Logger,
	opts ...Option,
) (*ActionPlanner, error) {
	if catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if tokenizer == nil {
		return nil, errors.New("tokenizer cannot be nil")
	}
	if prompts == nil {
		return nil, errors.New("prompt manager cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if cfg == nil {
		cfg = core.DefaultActionPlannerConfig()
	} else {
		cfg = cfg.Clone()
		cfg.Normalize()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid planner config: %w", err)
	}

	p := &ActionPlanner{
		cfg:       cfg,
		catalog:   catalog,
		generator: generator,
		tokenizer: tokenizer,
		prompts:   prompts,
		logger:    logger,
		provider:  llm.DefaultProvider,
		cacheSize: defaultCacheSize,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.cacheSize > 0 {
		cache, err := lru.New[string, *core.Plan](p.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create plan cache: %w", err)
		}
		p.cache = cache
	}
	return p, nil
}

// Config returns a copy of the settings the planner runs with.
func (p *ActionPlanner) Config() *core.ActionPlannerConfig {
	return p.cfg.Clone()
}

func (p *ActionPlanner) excluded(fn core.FunctionView) bool {
	return fn.PluginName == PluginName || p.cfg.Excludes(fn)
}

// AvailableFunctions lists the catalog minus everything the config excludes,
// sorted by fully qualified name.
func (p *ActionPlanner) AvailableFunctions(ctx context.Context) ([]core.FunctionView, error) {
	all, err := p.catalog.ListFunctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list functions: %w", err)
	}

	available := make([]core.FunctionView, 0, len(all))
	for _, fn := range all {
		if p.excluded(fn) {
			continue
		}
		available = append(available, fn)
	}
	sort.Slice(available, func(i, j int) bool {
		return available[i].FullyQualifiedName() < available[j].FullyQualifiedName()
	})
	return available, nil
}

// CreatePlan asks the model which function best serves goal. A plan without
// a step means no available function fits.
func (p *ActionPlanner) CreatePlan(ctx context.Context, goal string) (*core.Plan, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, ErrEmptyGoal
	}

	if p.cache != nil {
		if cached, ok := p.cache.Get(goal); ok {
			p.logger.Debug("plan served from cache", "goal", goal, "plan_id", cached.ID)
			return clonePlan(cached), nil
		}
	}

	available, err := p.AvailableFunctions(ctx)
	if err != nil {
		return nil, err
	}

	prompt, offered, err := p.buildPrompt(goal, available)
	if err != nil {
		return nil, err
	}
	p.logger.Info("requesting plan",
		"goal", goal,
		"functions_offered", offered,
		"functions_available", len(available),
		"max_tokens", p.cfg.MaxTokens,
	)

	reply, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan: %w", err)
	}
	reply = p.tokenizer.TruncateToTokens(reply, p.cfg.MaxTokens)

	resp, err := llm.ParsePlanResponse(reply)
	if err != nil {
		p.logger.Warn("could not parse plan", "goal", goal, "error", err)
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}

	plan := &core.Plan{
		ID:        p.newID(),
		Goal:      goal,
		Rationale: resp.Rationale,
		CreatedAt: p.now(),
	}

	if resp.Function == "" {
		p.logger.Info("no suitable function for goal", "goal", goal, "rationale", resp.Rationale)
	} else {
		fn, err := p.resolve(ctx, resp.Function, available)
		if err != nil {
			return nil, err
		}
		plan.Step = &core.PlanStep{
			Function:   fn,
			Parameters: withDefaults(fn, resp.Parameters),
		}
		p.logger.Info("plan created", "goal", goal, "function", fn.FullyQualifiedName(), "plan_id", plan.ID)
	}

	if p.cache != nil {
		p.cache.Add(goal, clonePlan(plan))
	}
	return plan, nil
}

// CreatePlans plans several goals with at most concurrency requests in
// flight. Results keep the order of goals; the first failure aborts the rest.
func (p *ActionPlanner) CreatePlans(ctx context.Context, goals []string, concurrency int) ([]*core.Plan, error) {
	plans := make([]*core.Plan, len(goals))

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, goal := range goals {
		g.Go(func() error {
			plan, err := p.CreatePlan(gctx, goal)
			if err != nil {
				return fmt.Errorf("goal %d (%q): %w", i, goal, err)
			}
			plans[i] = plan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

// buildPrompt renders the planner prompt, dropping functions from the end of
// the list until it fits the token budget. It returns how many were kept.
func (p *ActionPlanner) buildPrompt(goal string, available []core.FunctionView) (string, int, error) {
	render := func(n int) (string, error) {
		return p.prompts.Render(llm.ActionPlannerPrompt, p.provider, llm.ActionPlannerData{
			Goal:         goal,
			FunctionList: llm.FunctionList(available[:n]),
		})
	}

	prompt, err := render(len(available))
	if err != nil {
		return "", 0, err
	}
	if p.tokenizer.CountTokens(prompt) <= p.cfg.MaxTokens {
		return prompt, len(available), nil
	}

	// Largest n whose prompt fits; prompt size grows with n.
	lo, hi := 0, len(available)-1
	best := -1
	var bestPrompt string
	for lo <= hi {
		mid := (lo + hi) / 2
		candidate, err := render(mid)
		if err != nil {
			return "", 0, err
		}
		if p.tokenizer.CountTokens(candidate) <= p.cfg.MaxTokens {
			best, bestPrompt = mid, candidate
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if best < 0 {
		return "", 0, fmt.Errorf("%w: %d tokens allowed", ErrPromptTooLarge, p.cfg.MaxTokens)
	}

	p.logger.Warn("function list trimmed to fit token budget",
		"kept", best,
		"dropped", len(available)-best,
		"max_tokens", p.cfg.MaxTokens,
	)
	return bestPrompt, best, nil
}

// resolve maps the model's "plugin.function" answer onto an available
// function. Bare names are accepted when they are unambiguous.
func (p *ActionPlanner) resolve(ctx context.Context, qualified string, available []core.FunctionView) (core.FunctionView, error) {
	plugin, name := core.SplitQualifiedName(qualified)

	if plugin == "" {
		var match *core.FunctionView
		for i := range available {
			if available[i].Name != name {
				continue
			}
			if match != nil {
				return core.FunctionView{}, fmt.Errorf("%w: %q is ambiguous", ErrUnknownFunction, name)
			}
			match = &available[i]
		}
		if match == nil {
			return core.FunctionView{}, fmt.Errorf("%w: %s", ErrUnknownFunction, qualified)
		}
		return *match, nil
	}

	fn, err := p.catalog.Lookup(ctx, plugin, name)
	if err != nil {
		if errors.Is(err, core.ErrFunctionNotFound) {
			return core.FunctionView{}, fmt.Errorf("%w: %s", ErrUnknownFunction, qualified)
		}
		return core.FunctionView{}, fmt.Errorf("failed to look up %s: %w", qualified, err)
	}
	if p.excluded(fn) {
		p.logger.Warn("model chose an excluded function", "function", qualified)
		return core.FunctionView{}, fmt.Errorf("%w: %s is excluded", ErrUnknownFunction, qualified)
	}
	return fn, nil
}

// withDefaults copies the model's parameters and fills declared parameters
// it left out from their default values.
func withDefaults(fn core.FunctionView, given map[string]string) map[string]string {
	params := make(map[string]string, len(given)+len(fn.Parameters))
	maps.Copy(params, given)
	for _, param := range fn.Parameters {
		if _, ok := params[param.Name]; !ok && param.DefaultValue != "" {
			params[param.Name] = param.DefaultValue
		}
	}
	return params
}

func clonePlan(plan *core.Plan) *core.Plan {
	out := *plan
	if plan.Step != nil {
		step := *plan.Step
		step.Parameters = maps.Clone(plan.Step.Parameters)
		out.Step = &step
	}
	return &out
}
