// Package fileutil holds the filesystem helpers used by the CLI adapter
// when it writes an extracted article to disk: output-directory creation
// and extension inspection for the --format flag.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tantowi/readable/pkg/failure"
)

// GetFileExtension extracts the file extension from a path, or empty string if none
func GetFileExtension(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	// Remove the leading dot
	return strings.TrimPrefix(ext, ".")
}

// EnsureDir checks whether dir joined with the given path segments exists,
// creating it (and any missing parents) if not.
func EnsureDir(dir string, path ...string) failure.ClassifiedError {
	targetPath := []string{dir}
	targetPath = append(targetPath, path...)

	outputDir := filepath.Join(targetPath...)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return &FileError{
			Message:   fmt.Sprintf("%v", err),
			Retryable: false,
			Cause:     ErrCausePathError,
		}
	}
	return nil
}
