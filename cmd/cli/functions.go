package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevigo/action-planner/internal/wire"
)

var functionsJSON bool

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the functions the planner may choose from",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()

		app, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize app services: %w", err)
		}
		defer cleanup()

		fns, err := app.Planner.AvailableFunctions(ctx)
		if err != nil {
			return err
		}

		if functionsJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(fns)
		}

		if len(fns) == 0 {
			warnColor.Println("No functions are available after exclusions.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "FUNCTION\tPARAMETERS\tDESCRIPTION")
		for _, fn := range fns {
			params := make([]string, 0, len(fn.Parameters))
			for _, p := range fn.Parameters {
				params = append(params, p.Name)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				fn.FullyQualifiedName(),
				strings.Join(params, ","),
				firstLine(fn.Description),
			)
		}
		return w.Flush()
	},
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	functionsCmd.Flags().BoolVar(&functionsJSON, "json", false, "Output functions as JSON")
	rootCmd.AddCommand(functionsCmd)
}
