package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tacogips/t3init/internal/template/catalog"
)

// copyFixtureToTemp copies a fixture project directory to a temp directory
// and returns the path to the copy.
func copyFixtureToTemp(t *testing.T, fixtureName, tempDir string) string {
	t.Helper()

	fixtureDir, err := filepath.Abs(filepath.Join("../fixtures/projects", fixtureName))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}

	destDir := filepath.Join(tempDir, fixtureName)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		t.Fatalf("failed to create destination directory: %v", err)
	}

	err = filepath.Walk(fixtureDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixtureDir, path)
		if err != nil {
			return err
		}

		destPath := filepath.Join(destDir, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, info.Mode())
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		return os.WriteFile(destPath, data, info.Mode())
	})

	if err != nil {
		t.Fatalf("failed to copy fixture: %v", err)
	}

	return destDir
}

// buildExtras writes a stub for every template variant under a fresh extras
// root. Each stub names its own source path.
func buildExtras(t *testing.T, tempDir string) string {
	t.Helper()

	root := filepath.Join(tempDir, "extras")
	for _, id := range catalog.All() {
		path := filepath.Join(root, filepath.FromSlash(id.Source()))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create extras directory: %v", err)
		}
		content := "// " + id.Source() + "\nexport {};\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write extras file: %v", err)
		}
	}
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
