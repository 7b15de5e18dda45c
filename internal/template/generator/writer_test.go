package generator

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// TestFileWriter tests file writing operations.
func TestFileWriter(t *testing.T) {
	tmpDir := t.TempDir()
	writer := NewFileWriter(false)

	t.Run("WriteFile creates file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "test.txt")
		content := []byte("test content")

		if err := writer.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		if !writer.Exists(path) {
			t.Error("File was not created")
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(data) != string(content) {
			t.Errorf("File content = %q, want %q", string(data), string(content))
		}
	})

	t.Run("WriteFile creates parent dirs", func(t *testing.T) {
		path := filepath.Join(tmpDir, "subdir", "nested", "file.txt")

		if err := writer.WriteFile(path, []byte("nested content"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		if !writer.Exists(path) {
			t.Error("File was not created in nested directory")
		}
	})

	t.Run("WriteFile replaces existing file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "replace.txt")
		if err := os.WriteFile(path, []byte("a much longer previous body"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := writer.WriteFile(path, []byte("short"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		data, _ := os.ReadFile(path)
		if string(data) != "short" {
			t.Errorf("File content = %q, want %q", string(data), "short")
		}
		if writer.Exists(path + ".tmp") {
			t.Error("temporary file left behind")
		}
	})

	t.Run("CreateDir creates directory", func(t *testing.T) {
		path := filepath.Join(tmpDir, "newdir", "nested")

		if err := writer.CreateDir(path); err != nil {
			t.Fatalf("CreateDir() error = %v", err)
		}

		if !writer.Exists(path) {
			t.Error("Directory was not created")
		}
	})

	t.Run("Exists returns false for non-existent", func(t *testing.T) {
		path := filepath.Join(tmpDir, "does-not-exist")
		if writer.Exists(path) {
			t.Error("Exists() returned true for non-existent path")
		}
	})
}

func TestFileWriterMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	tmpDir := t.TempDir()

	tests := []struct {
		name         string
		preserveMode bool
		mode         os.FileMode
		want         os.FileMode
	}{
		{"default mode ignores input", false, 0755, 0644},
		{"preserve keeps executable bit", true, 0755, 0755},
		{"preserve forces owner read write", true, 0444, 0644},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, "mode", string(rune('a'+i)))
			w := NewFileWriter(tt.preserveMode)
			if err := w.WriteFile(path, []byte("x"), tt.mode); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			// umask may clear group/other bits but never adds them.
			if got := info.Mode().Perm(); got&^tt.want != 0 || got&0700 != tt.want&0700 {
				t.Errorf("mode = %o, want %o", got, tt.want)
			}
		})
	}
}
