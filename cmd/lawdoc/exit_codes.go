package main

import (
	"errors"
	"os"

	lawdoc "github.com/alnah/go-lawdoc"
	"github.com/alnah/go-lawdoc/internal/assets"
	"github.com/alnah/go-lawdoc/internal/config"
	"github.com/alnah/go-lawdoc/internal/fileutil"
	"github.com/alnah/go-lawdoc/internal/pipeline"
)

// Exit codes for the lawdoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, letterhead, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, lawdoc.ErrBrowserConnect) ||
		errors.Is(err, lawdoc.ErrPageCreate) ||
		errors.Is(err, lawdoc.ErrPageLoad) ||
		errors.Is(err, lawdoc.ErrPDFGeneration) ||
		errors.Is(err, lawdoc.ErrImagesNotReady) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadContent) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, fileutil.ErrOutputDir) ||
		errors.Is(err, config.ErrValuesNotFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnknownPlaceholders) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrLetterheadNotFound) ||
		errors.Is(err, config.ErrLetterheadParse) ||
		errors.Is(err, config.ErrValuesParse) ||
		errors.Is(err, pipeline.ErrUnknownFormat) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, lawdoc.ErrEmptyContent) ||
		errors.Is(err, lawdoc.ErrContentTooLarge) ||
		errors.Is(err, lawdoc.ErrNilLetterhead) ||
		errors.Is(err, lawdoc.ErrInvalidDate) ||
		errors.Is(err, lawdoc.ErrInvalidCategory) ||
		errors.Is(err, lawdoc.ErrStyleNotFound) ||
		errors.Is(err, lawdoc.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
