package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tacogips/t3init/internal/selection"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig      = "config"
	FlagDryRun      = "dry-run"
	FlagVerbose     = "verbose"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"
	FlagAppRouter   = "app-router"
	FlagAuth        = "auth"
	FlagDB          = "db"
	FlagExtras      = "extras"
	FlagInteractive = "interactive"
	FlagJSON        = "json"
	FlagProject     = "project"

	// Flag descriptions
	DescConfig      = "Path to config file (.json, .yaml or .yml)"
	DescDryRun      = "Show actions without execution"
	DescVerbose     = "Verbose output"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress output"
	DescDebug       = "Enable debug logging"
	DescAppRouter   = "Use the Next.js app router instead of the pages router"
	DescAuth        = "Auth provider: none, next-auth or lucia"
	DescDB          = "Data layer: none, prisma or drizzle"
	DescExtras      = "Directory holding the template variants"
	DescInteractive = "Prompt for the feature selection"
	DescJSON        = "Output as JSON"
	DescProject     = "Project directory used to resolve destination paths"
)

// selectionFlags holds the feature selection flags shared by plan and scaffold.
type selectionFlags struct {
	appRouter   bool
	auth        string
	db          string
	extras      string
	interactive bool
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.appRouter, FlagAppRouter, false, DescAppRouter)
	cmd.Flags().StringVar(&f.auth, FlagAuth, "", DescAuth)
	cmd.Flags().StringVar(&f.db, FlagDB, "", DescDB)
	cmd.Flags().StringVar(&f.extras, FlagExtras, "", DescExtras)
	cmd.Flags().BoolVarP(&f.interactive, FlagInteractive, "i", false, DescInteractive)
}

// resolve builds the selection: config defaults, then explicit flags, then
// prompts when interactive.
func (f *selectionFlags) resolve(cmd *cobra.Command, base selection.Selection, p Prompter) (selection.Selection, error) {
	sel := base

	if cmd.Flags().Changed(FlagAppRouter) {
		sel.UseAppRouter = f.appRouter
	}
	if cmd.Flags().Changed(FlagAuth) {
		auth, err := selection.ParseAuthProvider(f.auth)
		if err != nil {
			return sel, fmt.Errorf("--%s: %w", FlagAuth, err)
		}
		sel.Auth = auth
	}
	if cmd.Flags().Changed(FlagDB) {
		data, err := selection.ParseDataLayer(f.db)
		if err != nil {
			return sel, fmt.Errorf("--%s: %w", FlagDB, err)
		}
		sel.Data = data
	}

	if f.interactive {
		return PromptForSelection(p, sel)
	}
	return sel, nil
}

// extrasRoot returns the --extras value or the configured root.
func (f *selectionFlags) extrasRoot(configured string) string {
	if f.extras != "" {
		return f.extras
	}
	return configured
}

// ValidateProjectDir validates a project directory argument
func ValidateProjectDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("project directory cannot be empty")
	}
	return nil
}
