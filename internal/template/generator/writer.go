package generator

import (
	"os"
	"path/filepath"

	"github.com/tacogips/t3init/internal/debug"
)

// Writer writes files to the filesystem.
type Writer interface {
	// WriteFile writes content to a file with the specified permissions.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// CreateDir creates a directory and any necessary parent directories.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct {
	preserveMode bool
}

// NewFileWriter creates a new FileWriter.
// If preserveMode is true, the mode passed to WriteFile is kept (with owner
// read/write forced on). Otherwise files are created with 0644.
func NewFileWriter(preserveMode bool) Writer {
	return &FileWriter{
		preserveMode: preserveMode,
	}
}

// WriteFile writes content to a file with the specified permissions.
// Creates parent directories if they don't exist.
// Writes atomically using a temporary file and rename, replacing any existing file.
func (w *FileWriter) WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[generator] Writing file: %s (size: %d bytes, mode: %o)", path, len(content), mode)

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := w.CreateDir(dir); err != nil {
			return newGeneratorError(GeneratorIOFailed,
				"failed to create parent directory",
				path,
				err)
		}
	}

	fileMode := os.FileMode(0644)
	if w.preserveMode {
		fileMode = mode.Perm() | 0600
	}

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return newGeneratorError(GeneratorIOFailed,
			"failed to create temporary file",
			path,
			err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return newGeneratorError(GeneratorIOFailed,
			"failed to write file content",
			path,
			err)
	}

	if closeErr != nil {
		_ = os.Remove(tempFile)
		return newGeneratorError(GeneratorIOFailed,
			"failed to close file",
			path,
			closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return newGeneratorError(GeneratorIOFailed,
			"failed to rename temporary file",
			path,
			err)
	}

	debug.Debug("[generator] File written successfully: %s", path)
	return nil
}

// CreateDir creates a directory and any necessary parent directories.
// Uses 0755 permissions for created directories.
func (w *FileWriter) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return newGeneratorError(GeneratorIOFailed,
			"failed to create directory",
			path,
			err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
