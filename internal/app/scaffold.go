package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tacogips/t3init/internal/debug"
	"github.com/tacogips/t3init/internal/manifest"
	"github.com/tacogips/t3init/internal/selection"
	"github.com/tacogips/t3init/internal/template/generator"
	"github.com/tacogips/t3init/internal/template/selector"
)

// PlanOptions holds options for computing a scaffold plan.
type PlanOptions struct {
	// Selection is the feature selection to plan for.
	Selection selection.Selection
	// ExtrasRoot is the directory holding the template variants.
	ExtrasRoot string
	// ProjectDir is the project being scaffolded.
	ProjectDir string
}

// PlanResult is a resolved scaffold plan.
type PlanResult struct {
	// Selection is the selection the plan was computed for.
	Selection selection.Selection `json:"selection"`
	// Installers names the installers that contributed, in order.
	Installers []string `json:"installers"`
	// Plan is the root-independent plan.
	Plan selector.Plan `json:"plan"`
	// Operations are the copies with absolute paths.
	Operations []generator.CopyOp `json:"operations"`
	// Dependencies are the runtime packages to register.
	Dependencies []string `json:"dependencies"`
	// DevDependencies are the dev packages to register.
	DevDependencies []string `json:"dev_dependencies"`
}

// ScaffoldOptions holds options for the scaffold workflow.
type ScaffoldOptions struct {
	PlanOptions
	// DryRun computes the plan without touching the filesystem.
	DryRun bool
	// PreserveMode keeps template file permissions.
	PreserveMode bool
	// Writer overrides the file writer. Nil uses generator.NewFileWriter.
	Writer generator.Writer
}

// ScaffoldResult holds the result of a scaffold run.
type ScaffoldResult struct {
	*PlanResult
	// FilesWritten are the destinations written.
	FilesWritten []string
	// FilesOverwritten are destinations that existed before the run.
	FilesOverwritten []string
	// DryRun is true when nothing was written.
	DryRun bool
}

// Plan computes the copy list and dependencies for a selection.
// It never touches the filesystem.
func Plan(ctx context.Context, opts PlanOptions) (*PlanResult, error) {
	debug.DebugSection("[app] Plan")
	debug.DebugValue("[app] Selection", opts.Selection)

	if opts.ExtrasRoot == "" {
		return nil, NewValidationError("extras root cannot be empty", nil)
	}
	if opts.ProjectDir == "" {
		return nil, NewValidationError("project directory cannot be empty", nil)
	}

	extrasRoot, err := filepath.Abs(opts.ExtrasRoot)
	if err != nil {
		return nil, NewValidationError("failed to resolve extras root", err)
	}
	projectDir, err := filepath.Abs(opts.ProjectDir)
	if err != nil {
		return nil, NewValidationError("failed to resolve project directory", err)
	}

	result := &PlanResult{
		Selection: opts.Selection,
		Plan:      selector.Compose(opts.Selection),
	}
	for _, in := range selector.Applicable(opts.Selection) {
		result.Installers = append(result.Installers, in.Name())
	}

	result.Operations = result.Plan.Resolve(extrasRoot, projectDir)
	result.Dependencies = result.Plan.Packages(false)
	result.DevDependencies = result.Plan.Packages(true)

	debug.DebugValue("[app] Installers", result.Installers)
	debug.DebugJSON("[app] Operations", result.Operations)
	return result, nil
}

// Scaffold registers the planned dependencies in package.json and copies the
// planned templates into the project. The first failure aborts the run;
// nothing is rolled back.
func Scaffold(ctx context.Context, opts ScaffoldOptions) (*ScaffoldResult, error) {
	debug.DebugSection("[app] Scaffold workflow start")
	debug.DebugValue("[app] Project dir", opts.ProjectDir)
	debug.DebugValue("[app] Extras root", opts.ExtrasRoot)
	debug.DebugValue("[app] Dry run", opts.DryRun)

	planResult, err := Plan(ctx, opts.PlanOptions)
	if err != nil {
		return nil, err
	}

	result := &ScaffoldResult{PlanResult: planResult, DryRun: opts.DryRun}
	if opts.DryRun {
		return result, nil
	}

	if err := requireDir(opts.ProjectDir, "project directory"); err != nil {
		return nil, err
	}
	if err := requireDir(opts.ExtrasRoot, "extras root"); err != nil {
		return nil, err
	}

	w := opts.Writer
	if w == nil {
		w = generator.NewFileWriter(opts.PreserveMode)
	}

	if err := manifest.AddDependencies(w, opts.ProjectDir, planResult.Dependencies, false); err != nil {
		return nil, NewDependencyError("failed to register dependencies", err)
	}
	if err := manifest.AddDependencies(w, opts.ProjectDir, planResult.DevDependencies, true); err != nil {
		return nil, NewDependencyError("failed to register dev dependencies", err)
	}

	copyResult, err := generator.CopyPlan(ctx, w, planResult.Operations)
	if copyResult != nil {
		result.FilesWritten = copyResult.Written
		result.FilesOverwritten = copyResult.Overwritten
	}
	if err != nil {
		return result, NewCopyError("failed to copy templates", err)
	}

	debug.Debug("[app] Scaffold workflow completed")
	debug.DebugValue("[app] Files written", len(result.FilesWritten))
	return result, nil
}

func requireDir(path, what string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewValidationError(fmt.Sprintf("%s does not exist: %s", what, path), err)
		}
		return NewValidationError(fmt.Sprintf("failed to access %s", what), err)
	}
	if !info.IsDir() {
		return NewValidationError(fmt.Sprintf("%s is not a directory: %s", what, path), nil)
	}
	return nil
}
