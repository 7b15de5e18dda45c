package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/t3init/internal/app"
	"github.com/tacogips/t3init/internal/selection"
)

// scaffoldCmd represents the scaffold command
var scaffoldCmd = &cobra.Command{
	Use:   "scaffold <project-dir>",
	Short: "Copy API layer templates into a project",
	Long: `Register the API layer packages in <project-dir>/package.json and copy
the template variants matching the feature selection into the project.

Existing files at the destination paths are overwritten. The first failure
aborts the run; files already written are left in place.

Examples:
  t3init scaffold ./my-app
  t3init scaffold ./my-app --app-router --auth next-auth --db prisma
  t3init scaffold ./my-app --extras ./template/extras --dry-run
  t3init scaffold ./my-app -i`,
	Args: cobra.ExactArgs(1),
	RunE: runScaffold,
}

// Scaffold command flags
var (
	scaffoldSelection selectionFlags
	scaffoldDryRun    bool
	scaffoldVerbose   bool
	scaffoldJSON      bool
)

func init() {
	scaffoldSelection.register(scaffoldCmd)
	scaffoldCmd.Flags().BoolVarP(&scaffoldDryRun, FlagDryRun, "d", false, DescDryRun)
	scaffoldCmd.Flags().BoolVarP(&scaffoldVerbose, FlagVerbose, "v", false, DescVerbose)
	scaffoldCmd.Flags().BoolVar(&scaffoldJSON, FlagJSON, false, DescJSON)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	projectDir := args[0]
	if err := ValidateProjectDir(projectDir); err != nil {
		return err
	}

	base, err := loadedConfig.Selection()
	if err != nil {
		return err
	}
	sel, err := scaffoldSelection.resolve(cmd, base, NewSurveyPrompter())
	if err != nil {
		return err
	}

	verbose := scaffoldVerbose || loadedConfig.Output.Verbose
	extrasRoot := scaffoldSelection.extrasRoot(loadedConfig.Extras.Root)

	// With --json, stdout carries only the JSON document.
	if !scaffoldJSON {
		if scaffoldDryRun {
			printInfo("[DRY RUN] Would scaffold API layer")
		} else {
			printProgress("Scaffolding API layer...")
		}
		printInfo(fmt.Sprintf("Selection: %s", sel))
		printInfo(fmt.Sprintf("Extras: %s", extrasRoot))
		printInfo(fmt.Sprintf("Project: %s", projectDir))
	}

	result, err := app.Scaffold(cmd.Context(), app.ScaffoldOptions{
		PlanOptions: app.PlanOptions{
			Selection:  sel,
			ExtrasRoot: extrasRoot,
			ProjectDir: projectDir,
		},
		DryRun:       scaffoldDryRun,
		PreserveMode: loadedConfig.Files.PreserveMode,
	})
	if err != nil {
		return fmt.Errorf("scaffold failed: %w", err)
	}

	if scaffoldJSON {
		return writePlanJSON(cmd.OutOrStdout(), result.PlanResult)
	}

	if result.DryRun {
		printHeader("[DRY RUN] Files to copy")
		for _, op := range result.Operations {
			printInfo(fmt.Sprintf("  - %s", op.Destination))
			printVerbose(verbose, fmt.Sprintf("      from %s", op.Source))
		}
		printHeader("[DRY RUN] Dependencies to add")
		for _, name := range result.Dependencies {
			printInfo(fmt.Sprintf("  - %s", name))
		}
		printInfo("")
		printInfo("No files written (dry run).")
		return nil
	}

	for _, path := range result.FilesWritten {
		printVerbose(verbose, fmt.Sprintf("wrote %s", path))
	}
	for _, path := range result.FilesOverwritten {
		printWarning(fmt.Sprintf("Overwrote %s", path))
	}

	printSuccess("API layer scaffolded")
	printInfo("")
	printInfo("Summary:")
	printInfo(fmt.Sprintf("  Copied: %d files", len(result.FilesWritten)))
	printInfo(fmt.Sprintf("  Dependencies: %d packages", len(result.Dependencies)))
	printInfo("")
	printInfo("Next steps:")
	for _, step := range nextSteps(sel, projectDir) {
		printInfo("  " + step)
	}
	return nil
}

// nextSteps lists the commands to run after a successful scaffold.
func nextSteps(sel selection.Selection, projectDir string) []string {
	steps := []string{fmt.Sprintf("cd %s && npm install", projectDir)}
	if sel.HasDB() {
		steps = append(steps, "npm run db:push")
	}
	if sel.HasAuth() {
		steps = append(steps, "fill in the auth provider secrets in .env")
	}
	return append(steps, "npm run dev")
}
