package generator

import (
	"context"
	"os"

	"github.com/tacogips/t3init/internal/debug"
)

// CopyOp is a single source-to-destination file copy with absolute paths.
type CopyOp struct {
	// Source is the template file to read.
	Source string `json:"source"`
	// Destination is the file to create or overwrite.
	Destination string `json:"destination"`
}

// CopyResult lists what CopyPlan wrote.
type CopyResult struct {
	// Written are the destinations written, in plan order.
	Written []string
	// Overwritten are the destinations that existed before the copy.
	Overwritten []string
}

// CopyPlan copies every op in order, byte for byte. Existing destinations
// are replaced. The first failure stops the run and is returned; files
// already written stay in place.
func CopyPlan(ctx context.Context, w Writer, ops []CopyOp) (*CopyResult, error) {
	debug.DebugSection("[generator] CopyPlan")
	debug.DebugValue("[generator] Operations", len(ops))

	result := &CopyResult{
		Written: make([]string, 0, len(ops)),
	}

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return result, newGeneratorError(GeneratorCanceled, "copy interrupted", op.Destination, err)
		}
		if op.Source == "" || op.Destination == "" {
			return result, newGeneratorError(GeneratorPathError, "copy operation has an empty path", op.Destination, nil)
		}

		existed := w.Exists(op.Destination)
		if err := copyOne(w, op); err != nil {
			return result, err
		}

		result.Written = append(result.Written, op.Destination)
		if existed {
			result.Overwritten = append(result.Overwritten, op.Destination)
		}
	}

	return result, nil
}

func copyOne(w Writer, op CopyOp) error {
	debug.Debug("[generator] Copy %s -> %s", op.Source, op.Destination)

	info, err := os.Stat(op.Source)
	if err != nil {
		return newGeneratorError(GeneratorIOFailed, "source template not readable", op.Source, err)
	}
	if info.IsDir() {
		return newGeneratorError(GeneratorIOFailed, "source template is a directory", op.Source, nil)
	}

	content, err := os.ReadFile(op.Source)
	if err != nil {
		return newGeneratorError(GeneratorIOFailed, "failed to read source template", op.Source, err)
	}

	return w.WriteFile(op.Destination, content, info.Mode())
}
