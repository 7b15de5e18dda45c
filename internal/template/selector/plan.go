// Package selector maps a feature selection to the template files to copy and
// the packages to register.
package selector

import (
	"path/filepath"

	"github.com/tacogips/t3init/internal/template/catalog"
	"github.com/tacogips/t3init/internal/template/generator"
)

// CopyInstruction describes one file to materialize in the generated project.
type CopyInstruction struct {
	// Slot is the logical role of the file.
	Slot catalog.Slot `json:"slot"`
	// Template is the source variant.
	Template catalog.TemplateID `json:"template"`
	// Destination is the path relative to the project root, slash separated.
	Destination string `json:"destination"`
}

// DependencyDeclaration lists packages to add to the project manifest.
type DependencyDeclaration struct {
	// Packages are package names in insertion order.
	Packages []string `json:"packages"`
	// Dev selects devDependencies instead of dependencies.
	Dev bool `json:"dev"`
}

// Plan is the combined output of one or more installers.
type Plan struct {
	Copies       []CopyInstruction       `json:"copies"`
	Dependencies []DependencyDeclaration `json:"dependencies"`
}

// Append adds other's copies and dependencies after p's.
func (p *Plan) Append(other Plan) {
	p.Copies = append(p.Copies, other.Copies...)
	p.Dependencies = append(p.Dependencies, other.Dependencies...)
}

// Packages returns the de-duplicated package names of the given class,
// in first-seen order.
func (p Plan) Packages(dev bool) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range p.Dependencies {
		if d.Dev != dev {
			continue
		}
		for _, name := range d.Packages {
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// Resolve turns the copy list into absolute source/destination pairs.
func (p Plan) Resolve(extrasRoot, projectRoot string) []generator.CopyOp {
	ops := make([]generator.CopyOp, 0, len(p.Copies))
	for _, c := range p.Copies {
		ops = append(ops, generator.CopyOp{
			Source:      filepath.Join(extrasRoot, filepath.FromSlash(c.Template.Source())),
			Destination: filepath.Join(projectRoot, filepath.FromSlash(c.Destination)),
		})
	}
	return ops
}
