// Package letterhead defines the print skin applied around contract content.
//
// A Letterhead is a sealed variant: either an image-based skin, where the
// header and footer are pre-designed images stretched across the page width,
// or a dynamic skin built from structured firm data (logo, names, contact
// fields). Only the active variant's fields exist on the value, so the two
// modes cannot drift apart.
package letterhead

import "math"

// Mode identifies the content mode of a letterhead.
type Mode string

// Letterhead modes.
const (
	ModeImage   Mode = "image"
	ModeDynamic Mode = "dynamic"
)

// LogoPosition controls where the logo sits in a dynamic header.
type LogoPosition string

// Logo positions.
const (
	LogoRight  LogoPosition = "right"
	LogoCenter LogoPosition = "center"
	LogoLeft   LogoPosition = "left"
)

// PageNumberFormat selects the language of the page-number label.
type PageNumberFormat string

// Page number formats.
const (
	PageNumbersArabic  PageNumberFormat = "arabic"
	PageNumbersEnglish PageNumberFormat = "english"
)

// Defaults used when a numeric or color field is missing or invalid.
const (
	DefaultHeaderHeightMM = 30.0
	DefaultFooterHeightMM = 25.0
	DefaultMarginTopMM    = 25.0
	DefaultMarginBottomMM = 20.0
	DefaultMarginRightMM  = 20.0
	DefaultMarginLeftMM   = 20.0
	DefaultLogoWidthPx    = 120

	DefaultPrimaryColor   = "#1e3a5f"
	DefaultSecondaryColor = "#c9a227"
	DefaultTextColor      = "#333333"
	DefaultBorderColor    = "#1e3a5f"
)

// Letterhead is implemented by *Image and *Dynamic only.
type Letterhead interface {
	Mode() Mode
	Common() Settings
	sealed()
}

// Settings holds the fields shared by both modes.
type Settings struct {
	MarginTopMM    float64
	MarginBottomMM float64
	MarginRightMM  float64
	MarginLeftMM   float64

	ShowPageNumbers  bool
	PageNumberFormat PageNumberFormat

	PrimaryColor   string
	SecondaryColor string
	TextColor      string

	Watermark          Watermark
	SecondaryWatermark Watermark
}

// Image is a letterhead whose header and footer are full-bleed images.
type Image struct {
	Settings

	HeaderImageURL string
	FooterImageURL string
	HeaderHeightMM float64
	FooterHeightMM float64
}

// Dynamic is a letterhead whose header and footer are built from firm data.
type Dynamic struct {
	Settings

	LogoURL          string
	LogoPosition     LogoPosition
	LogoWidthPx      int
	CompanyName      string
	CompanyNameEN    string
	HeaderText       string
	ShowBorderBottom bool
	BorderColor      string

	FooterText    string
	FooterPhone   string
	FooterEmail   string
	FooterWebsite string
	FooterAddress string
}

func (*Image) Mode() Mode   { return ModeImage }
func (*Dynamic) Mode() Mode { return ModeDynamic }

func (l *Image) Common() Settings   { return l.Settings }
func (l *Dynamic) Common() Settings { return l.Settings }

func (*Image) sealed()   {}
func (*Dynamic) sealed() {}

// DefaultSettings returns shared settings populated with the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		MarginTopMM:        DefaultMarginTopMM,
		MarginBottomMM:     DefaultMarginBottomMM,
		MarginRightMM:      DefaultMarginRightMM,
		MarginLeftMM:       DefaultMarginLeftMM,
		PageNumberFormat:   PageNumbersArabic,
		PrimaryColor:       DefaultPrimaryColor,
		SecondaryColor:     DefaultSecondaryColor,
		TextColor:          DefaultTextColor,
		Watermark:          DefaultWatermark(),
		SecondaryWatermark: DefaultWatermark(),
	}
}

// NewImage returns an image letterhead with default geometry.
func NewImage(headerURL, footerURL string) *Image {
	return &Image{
		Settings:       DefaultSettings(),
		HeaderImageURL: headerURL,
		FooterImageURL: footerURL,
		HeaderHeightMM: DefaultHeaderHeightMM,
		FooterHeightMM: DefaultFooterHeightMM,
	}
}

// NewDynamic returns a dynamic letterhead with default geometry.
func NewDynamic(companyName string) *Dynamic {
	return &Dynamic{
		Settings:     DefaultSettings(),
		CompanyName:  companyName,
		LogoPosition: LogoRight,
		LogoWidthPx:  DefaultLogoWidthPx,
		BorderColor:  DefaultBorderColor,
	}
}

// Length returns v when it is a usable millimeter value, otherwise fallback.
// Negative, NaN and infinite values are never emitted into CSS.
func Length(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fallback
	}
	return v
}

// Margins returns the sanitized page margins as top, right, bottom, left.
func (s Settings) Margins() (top, right, bottom, left float64) {
	return Length(s.MarginTopMM, DefaultMarginTopMM),
		Length(s.MarginRightMM, DefaultMarginRightMM),
		Length(s.MarginBottomMM, DefaultMarginBottomMM),
		Length(s.MarginLeftMM, DefaultMarginLeftMM)
}

// Color returns c, or fallback when c is blank.
func Color(c, fallback string) string {
	if c == "" {
		return fallback
	}
	return c
}

// ImageURLs returns the distinct non-empty header, footer and logo image
// URLs of lh, in that order. Watermark images are not included.
func ImageURLs(lh Letterhead) []string {
	var candidates []string
	switch l := lh.(type) {
	case *Image:
		candidates = []string{l.HeaderImageURL, l.FooterImageURL}
	case *Dynamic:
		candidates = []string{l.LogoURL}
	}
	return Distinct(candidates...)
}

// Distinct drops empty strings and duplicates, keeping first-seen order.
func Distinct(values ...string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
