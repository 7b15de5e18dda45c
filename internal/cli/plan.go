package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tacogips/t3init/internal/app"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show which templates and packages a selection uses",
	Long: `Print the copy instructions and package dependencies for a feature
selection without touching the filesystem.

Examples:
  t3init plan
  t3init plan --app-router --auth next-auth --db prisma
  t3init plan --auth lucia --db drizzle --json
  t3init plan -i`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

// Plan command flags
var (
	planSelection selectionFlags
	planJSON      bool
	planProject   string
)

func init() {
	planSelection.register(planCmd)
	planCmd.Flags().BoolVar(&planJSON, FlagJSON, false, DescJSON)
	planCmd.Flags().StringVarP(&planProject, FlagProject, "p", ".", DescProject)
}

func runPlan(cmd *cobra.Command, args []string) error {
	base, err := loadedConfig.Selection()
	if err != nil {
		return err
	}
	sel, err := planSelection.resolve(cmd, base, NewSurveyPrompter())
	if err != nil {
		return err
	}

	result, err := app.Plan(cmd.Context(), app.PlanOptions{
		Selection:  sel,
		ExtrasRoot: planSelection.extrasRoot(loadedConfig.Extras.Root),
		ProjectDir: planProject,
	})
	if err != nil {
		return fmt.Errorf("plan failed: %w", err)
	}

	if planJSON {
		return writePlanJSON(cmd.OutOrStdout(), result)
	}
	if globalQuiet {
		return nil
	}
	writePlanText(cmd.OutOrStdout(), result, globalNoColor)
	return nil
}

func writePlanJSON(w io.Writer, result *app.PlanResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writePlanText(w io.Writer, result *app.PlanResult, noColor bool) {
	header := func(title string) {
		if noColor {
			fmt.Fprintf(w, "\n=== %s ===\n", title)
		} else {
			fmt.Fprintf(w, "\n%s=== %s ===%s\n", colorMagenta, title, colorReset)
		}
	}

	fmt.Fprintf(w, "Selection: %s\n", result.Selection)
	fmt.Fprintf(w, "Installers: %v\n", result.Installers)

	header("Files")
	for i, c := range result.Plan.Copies {
		src := result.Operations[i].Source
		fmt.Fprintf(w, "  %-15s %s\n", c.Slot, filepath.ToSlash(c.Destination))
		fmt.Fprintf(w, "  %-15s   <- %s\n", "", src)
	}

	header("Dependencies")
	for _, name := range result.Dependencies {
		fmt.Fprintf(w, "  %s\n", name)
	}
	if len(result.DevDependencies) > 0 {
		header("Dev dependencies")
		for _, name := range result.DevDependencies {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
}
