package lawdoc

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyContent    = errors.New("contract content cannot be empty")
	ErrNilLetterhead   = errors.New("letterhead cannot be nil")
	ErrContentTooLarge = errors.New("contract content exceeds maximum size")
	ErrPDFGeneration   = errors.New("PDF generation failed")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")
	ErrImagesNotReady  = errors.New("letterhead images not ready")
	ErrInvalidDate     = errors.New("invalid auto date value")

	// Registry errors.
	ErrDuplicateVariable  = errors.New("duplicate contract variable")
	ErrInvalidVariableKey = errors.New("invalid contract variable key")
	ErrInvalidCategory    = errors.New("invalid contract variable category")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
