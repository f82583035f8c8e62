package assets

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for asset operations.
var (
	ErrStyleNotFound      = errors.New("style not found")
	ErrLetterheadNotFound = errors.New("letterhead preset not found")
	ErrInvalidAssetName   = errors.New("invalid asset name")
	ErrInvalidBasePath    = errors.New("invalid base path")
	ErrAssetRead          = errors.New("failed to read asset")
	ErrPathTraversal      = errors.New("path traversal detected")
)

// ValidateAssetName rejects empty names and names containing path
// separators or dots.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// IsNotFound reports whether err means the asset does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrLetterheadNotFound)
}
