// Package fileutil provides file and path helpers for rendering output.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrOutputDir              = errors.New("cannot create output directory")
)

// tempPattern prefixes every temp file so leftovers are attributable.
const tempPattern = "lawdoc-*."

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", tempPattern+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name: "classic" is a name, "./classic.yaml" and "lh/classic" are paths.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath derives an output file path from the content file.
//   - outDir empty: next to the content file
//   - variant non-empty: appended to the stem ("lease" + "client-a" -> "lease-client-a")
//   - ext replaces the content file's extension
func OutputPath(contentPath, outDir, variant, ext string) string {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(contentPath)
	}
	name := Stem(contentPath)
	if variant != "" {
		name += "-" + variant
	}
	return filepath.Join(dir, name+"."+strings.TrimPrefix(ext, "."))
}

// WriteOutput writes data to path, creating parent directories as needed.
func WriteOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputDir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- generated documents are meant to be shared
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
