package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/action-planner/internal/core"
	"github.com/sevigo/action-planner/internal/wire"
)

var (
	planJSON    bool
	planTimeout time.Duration
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.FgHiBlack)
)

var planCmd = &cobra.Command{
	Use:   "plan [goal...]",
	Short: "Ask the model which function best serves each goal",
	Long: `Ask the model which function best serves each goal.

Every argument is planned as a separate goal. Several goals are planned
concurrently, bounded by PLANNER_CONCURRENCY.

Examples:
  planner-cli plan "send the weekly report to bob"
  planner-cli plan --exclude-plugin FilePlugin "what time is it" "email alice"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlan,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Output plans as JSON")
	planCmd.Flags().DurationVar(&planTimeout, "timeout", 5*time.Minute, "Overall timeout for planning")
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, goals []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), planTimeout)
	defer cancel()

	app, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w\n\nTip: check that the catalog file exists and the LLM provider is reachable", err)
	}
	defer cleanup()

	plans, err := app.Planner.CreatePlans(ctx, goals, app.Cfg.PlannerConcurrency)
	if err != nil {
		return err
	}

	if planJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(plans)
	}

	for _, plan := range plans {
		printPlan(plan)
	}
	return nil
}

func printPlan(plan *core.Plan) {
	titleColor.Printf("Goal: %s\n", plan.Goal)
	if plan.Rationale != "" {
		dimColor.Printf("   rationale: %s\n", plan.Rationale)
	}
	if !plan.HasStep() {
		warnColor.Println("   no available function fits this goal")
		fmt.Println()
		return
	}

	successColor.Printf("   -> %s\n", plan.Step.Function.FullyQualifiedName())
	names := make([]string, 0, len(plan.Step.Parameters))
	for name := range plan.Step.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("      %s = %q\n", name, plan.Step.Parameters[name])
	}
	fmt.Println()
}
