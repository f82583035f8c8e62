package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-lawdoc/internal/assets"
	"github.com/alnah/go-lawdoc/internal/fileutil"
	"github.com/alnah/go-lawdoc/internal/letterhead"
	"github.com/alnah/go-lawdoc/internal/pipeline"
	"github.com/alnah/go-lawdoc/internal/yamlutil"
)

// Sentinel errors for letterhead files.
var (
	ErrLetterheadNotFound = errors.New("letterhead not found")
	ErrLetterheadParse    = errors.New("failed to parse letterhead")
)

// Numeric limits for letterhead files.
const (
	MaxMarginMM     = 100.0
	MaxBandMM       = 150.0
	MaxLogoWidthPx  = 1000
	MaxWatermarkPct = 500.0
	MaxRepeatGapPx  = 1000.0
)

// LetterheadFile is the YAML shape of a letterhead. Pointer fields
// distinguish an absent key, which takes the default, from an explicit zero.
type LetterheadFile struct {
	Mode               string          `yaml:"mode"` // "image" or "dynamic" (default)
	Margins            MarginsFile     `yaml:"margins"`
	PageNumbers        PageNumbersFile `yaml:"pageNumbers"`
	Colors             ColorsFile      `yaml:"colors"`
	Image              *ImageFile      `yaml:"image"`
	Dynamic            *DynamicFile    `yaml:"dynamic"`
	Watermark          *WatermarkFile  `yaml:"watermark"`
	SecondaryWatermark *WatermarkFile  `yaml:"secondaryWatermark"`
}

// MarginsFile holds page margins in millimeters.
type MarginsFile struct {
	Top    *float64 `yaml:"top"`
	Bottom *float64 `yaml:"bottom"`
	Right  *float64 `yaml:"right"`
	Left   *float64 `yaml:"left"`
}

// PageNumbersFile defines the page number label.
type PageNumbersFile struct {
	Show   bool   `yaml:"show"`
	Format string `yaml:"format"` // "arabic" (default) or "english"
}

// ColorsFile holds the letterhead palette.
type ColorsFile struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Text      string `yaml:"text"`
}

// ImageFile defines an image letterhead.
type ImageFile struct {
	HeaderURL    string   `yaml:"headerUrl"`
	FooterURL    string   `yaml:"footerUrl"`
	HeaderHeight *float64 `yaml:"headerHeight"` // mm
	FooterHeight *float64 `yaml:"footerHeight"` // mm
}

// DynamicFile defines a data-driven letterhead.
type DynamicFile struct {
	LogoURL          string     `yaml:"logoUrl"`
	LogoPosition     string     `yaml:"logoPosition"` // "right" (default), "center", "left"
	LogoWidth        *int       `yaml:"logoWidth"`    // px
	CompanyName      string     `yaml:"companyName"`
	CompanyNameEN    string     `yaml:"companyNameEn"`
	HeaderText       string     `yaml:"headerText"`
	ShowBorderBottom *bool      `yaml:"showBorderBottom"` // default true
	BorderColor      string     `yaml:"borderColor"`
	Footer           FooterFile `yaml:"footer"`
}

// FooterFile holds dynamic footer contact fields.
type FooterFile struct {
	Text    string `yaml:"text"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Website string `yaml:"website"`
	Address string `yaml:"address"`
}

// WatermarkFile defines one watermark layer.
type WatermarkFile struct {
	Enabled       bool     `yaml:"enabled"`
	Type          string   `yaml:"type"` // "text" (default) or "image"
	Text          string   `yaml:"text"`
	ImageURL      string   `yaml:"imageUrl"`
	Opacity       *float64 `yaml:"opacity"`  // 0..100
	Size          *float64 `yaml:"size"`     // percent
	Rotation      *float64 `yaml:"rotation"` // degrees
	Position      string   `yaml:"position"` // "center" (default), "top", "bottom", "repeat"
	RepeatGap     *float64 `yaml:"repeatGap"`
	UseLawyerName bool     `yaml:"useLawyerName"`
}

// ParseLetterhead decodes and validates letterhead YAML. Relative image
// paths are resolved against baseDir.
func ParseLetterhead(data []byte, baseDir string) (letterhead.Letterhead, error) {
	var f LetterheadFile
	if err := yamlutil.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLetterheadParse, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.Letterhead(baseDir), nil
}

// LoadLetterhead loads a letterhead from a file path, or from a preset name
// through loader. A nil loader means embedded presets only.
func LoadLetterhead(nameOrPath string, loader assets.AssetLoader) (letterhead.Letterhead, error) {
	if nameOrPath == "" {
		return nil, fmt.Errorf("%w: empty name", ErrLetterheadNotFound)
	}

	if fileutil.IsFilePath(nameOrPath) || strings.HasSuffix(nameOrPath, ".yaml") || strings.HasSuffix(nameOrPath, ".yml") {
		return loadLetterheadFile(nameOrPath)
	}

	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}
	data, err := loader.LoadLetterhead(nameOrPath)
	if err != nil {
		if assets.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %v", ErrLetterheadNotFound, err)
		}
		return nil, err
	}
	return ParseLetterhead(data, "")
}

func loadLetterheadFile(path string) (letterhead.Letterhead, error) {
	var f LetterheadFile
	if err := yamlutil.ReadFile(path, &f); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLetterheadNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrLetterheadParse, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(path)
	if abs, err := filepath.Abs(baseDir); err == nil {
		baseDir = abs
	}
	return f.Letterhead(baseDir), nil
}

// mode returns the effective mode name.
func (f *LetterheadFile) mode() letterhead.Mode {
	if f.Mode == "" {
		return letterhead.ModeDynamic
	}
	return letterhead.Mode(strings.ToLower(f.Mode))
}

// Validate checks enumerations, ranges and field lengths. The block of the
// inactive mode is ignored, not validated.
func (f *LetterheadFile) Validate() error {
	mode := f.mode()
	switch mode {
	case letterhead.ModeImage, letterhead.ModeDynamic:
	default:
		return fmt.Errorf("%w: mode: %q (must be image or dynamic)", ErrInvalidValue, f.Mode)
	}

	for _, m := range []struct {
		field string
		v     *float64
	}{
		{"margins.top", f.Margins.Top},
		{"margins.bottom", f.Margins.Bottom},
		{"margins.right", f.Margins.Right},
		{"margins.left", f.Margins.Left},
	} {
		if err := validateRange(m.field, m.v, 0, MaxMarginMM); err != nil {
			return err
		}
	}

	switch strings.ToLower(f.PageNumbers.Format) {
	case "", string(letterhead.PageNumbersArabic), string(letterhead.PageNumbersEnglish):
	default:
		return fmt.Errorf("%w: pageNumbers.format: %q (must be arabic or english)", ErrInvalidValue, f.PageNumbers.Format)
	}

	for _, c := range []struct{ field, value string }{
		{"colors.primary", f.Colors.Primary},
		{"colors.secondary", f.Colors.Secondary},
		{"colors.text", f.Colors.Text},
	} {
		if err := validateColor(c.field, c.value); err != nil {
			return err
		}
	}

	if mode == letterhead.ModeImage && f.Image != nil {
		if err := f.Image.validate(); err != nil {
			return err
		}
	}
	if mode == letterhead.ModeDynamic && f.Dynamic != nil {
		if err := f.Dynamic.validate(); err != nil {
			return err
		}
	}
	if f.Watermark != nil {
		if err := f.Watermark.validate("watermark"); err != nil {
			return err
		}
	}
	if f.SecondaryWatermark != nil {
		if err := f.SecondaryWatermark.validate("secondaryWatermark"); err != nil {
			return err
		}
	}
	return nil
}

func (i *ImageFile) validate() error {
	for _, u := range []struct{ field, value string }{
		{"image.headerUrl", i.HeaderURL},
		{"image.footerUrl", i.FooterURL},
	} {
		if err := validateFieldLength(u.field, u.value, MaxURLLength); err != nil {
			return err
		}
	}
	if err := validateRange("image.headerHeight", i.HeaderHeight, 0, MaxBandMM); err != nil {
		return err
	}
	return validateRange("image.footerHeight", i.FooterHeight, 0, MaxBandMM)
}

func (d *DynamicFile) validate() error {
	switch strings.ToLower(d.LogoPosition) {
	case "", string(letterhead.LogoRight), string(letterhead.LogoCenter), string(letterhead.LogoLeft):
	default:
		return fmt.Errorf("%w: dynamic.logoPosition: %q (must be right, center or left)", ErrInvalidValue, d.LogoPosition)
	}
	if d.LogoWidth != nil && (*d.LogoWidth <= 0 || *d.LogoWidth > MaxLogoWidthPx) {
		return fmt.Errorf("%w: dynamic.logoWidth: must be between 1 and %d, got %d", ErrInvalidValue, MaxLogoWidthPx, *d.LogoWidth)
	}

	checks := []struct {
		field string
		value string
		max   int
	}{
		{"dynamic.logoUrl", d.LogoURL, MaxURLLength},
		{"dynamic.companyName", d.CompanyName, MaxNameLength},
		{"dynamic.companyNameEn", d.CompanyNameEN, MaxNameLength},
		{"dynamic.headerText", d.HeaderText, MaxTextLength},
		{"dynamic.footer.text", d.Footer.Text, MaxTextLength},
		{"dynamic.footer.phone", d.Footer.Phone, MaxContactLength},
		{"dynamic.footer.email", d.Footer.Email, MaxContactLength},
		{"dynamic.footer.website", d.Footer.Website, MaxContactLength},
		{"dynamic.footer.address", d.Footer.Address, MaxTextLength},
	}
	for _, chk := range checks {
		if err := validateFieldLength(chk.field, chk.value, chk.max); err != nil {
			return err
		}
	}
	return validateColor("dynamic.borderColor", d.BorderColor)
}

func (w *WatermarkFile) validate(prefix string) error {
	switch strings.ToLower(w.Type) {
	case "", string(letterhead.WatermarkText), string(letterhead.WatermarkImage):
	default:
		return fmt.Errorf("%w: %s.type: %q (must be text or image)", ErrInvalidValue, prefix, w.Type)
	}
	switch strings.ToLower(w.Position) {
	case "", string(letterhead.PositionCenter), string(letterhead.PositionTop),
		string(letterhead.PositionBottom), string(letterhead.PositionRepeat):
	default:
		return fmt.Errorf("%w: %s.position: %q (must be center, top, bottom or repeat)", ErrInvalidValue, prefix, w.Position)
	}

	if err := validateFieldLength(prefix+".text", w.Text, MaxWatermarkTextLength); err != nil {
		return err
	}
	if err := validateFieldLength(prefix+".imageUrl", w.ImageURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateRange(prefix+".opacity", w.Opacity, 0, 100); err != nil {
		return err
	}
	if err := validateRange(prefix+".size", w.Size, 1, MaxWatermarkPct); err != nil {
		return err
	}
	if err := validateFinite(prefix+".rotation", w.Rotation); err != nil {
		return err
	}
	return validateRange(prefix+".repeatGap", w.RepeatGap, 0, MaxRepeatGapPx)
}

func validateRange(field string, v *float64, lo, hi float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || *v < lo || *v > hi {
		return fmt.Errorf("%w: %s: must be between %g and %g, got %g", ErrInvalidValue, field, lo, hi, *v)
	}
	return nil
}

// validateFinite rejects NaN and infinities.
func validateFinite(field string, v *float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return fmt.Errorf("%w: %s: must be a finite number, got %g", ErrInvalidValue, field, *v)
	}
	return nil
}

// validateColor rejects values that could break out of a style attribute.
func validateColor(field, value string) error {
	if err := validateFieldLength(field, value, MaxColorLength); err != nil {
		return err
	}
	if strings.ContainsAny(value, ";{}<>\"'\\") {
		return fmt.Errorf("%w: %s: %q is not a color", ErrInvalidValue, field, value)
	}
	return nil
}

// Letterhead converts a validated file into the engine's letterhead value.
// Image references are resolved against baseDir.
func (f *LetterheadFile) Letterhead(baseDir string) letterhead.Letterhead {
	settings := letterhead.DefaultSettings()
	setFloat(&settings.MarginTopMM, f.Margins.Top)
	setFloat(&settings.MarginBottomMM, f.Margins.Bottom)
	setFloat(&settings.MarginRightMM, f.Margins.Right)
	setFloat(&settings.MarginLeftMM, f.Margins.Left)

	settings.ShowPageNumbers = f.PageNumbers.Show
	if f.PageNumbers.Format != "" {
		settings.PageNumberFormat = letterhead.PageNumberFormat(strings.ToLower(f.PageNumbers.Format))
	}
	settings.PrimaryColor = letterhead.Color(f.Colors.Primary, settings.PrimaryColor)
	settings.SecondaryColor = letterhead.Color(f.Colors.Secondary, settings.SecondaryColor)
	settings.TextColor = letterhead.Color(f.Colors.Text, settings.TextColor)

	if f.Watermark != nil {
		settings.Watermark = f.Watermark.watermark(baseDir)
	}
	if f.SecondaryWatermark != nil {
		settings.SecondaryWatermark = f.SecondaryWatermark.watermark(baseDir)
	}

	if f.mode() == letterhead.ModeImage {
		img := letterhead.NewImage("", "")
		img.Settings = settings
		if f.Image != nil {
			img.HeaderImageURL = pipeline.ResolveAssetURL(f.Image.HeaderURL, baseDir)
			img.FooterImageURL = pipeline.ResolveAssetURL(f.Image.FooterURL, baseDir)
			setFloat(&img.HeaderHeightMM, f.Image.HeaderHeight)
			setFloat(&img.FooterHeightMM, f.Image.FooterHeight)
		}
		return img
	}

	dyn := letterhead.NewDynamic("")
	dyn.Settings = settings
	dyn.ShowBorderBottom = true
	if d := f.Dynamic; d != nil {
		dyn.LogoURL = pipeline.ResolveAssetURL(d.LogoURL, baseDir)
		if d.LogoPosition != "" {
			dyn.LogoPosition = letterhead.LogoPosition(strings.ToLower(d.LogoPosition))
		}
		if d.LogoWidth != nil {
			dyn.LogoWidthPx = *d.LogoWidth
		}
		dyn.CompanyName = d.CompanyName
		dyn.CompanyNameEN = d.CompanyNameEN
		dyn.HeaderText = d.HeaderText
		if d.ShowBorderBottom != nil {
			dyn.ShowBorderBottom = *d.ShowBorderBottom
		}
		dyn.BorderColor = letterhead.Color(d.BorderColor, dyn.BorderColor)
		dyn.FooterText = d.Footer.Text
		dyn.FooterPhone = d.Footer.Phone
		dyn.FooterEmail = d.Footer.Email
		dyn.FooterWebsite = d.Footer.Website
		dyn.FooterAddress = d.Footer.Address
	}
	return dyn
}

func (w *WatermarkFile) watermark(baseDir string) letterhead.Watermark {
	wm := letterhead.DefaultWatermark()
	wm.Enabled = w.Enabled
	if w.Type != "" {
		wm.Type = letterhead.WatermarkType(strings.ToLower(w.Type))
	}
	wm.Text = w.Text
	wm.ImageURL = pipeline.ResolveAssetURL(w.ImageURL, baseDir)
	setFloat(&wm.Opacity, w.Opacity)
	setFloat(&wm.Size, w.Size)
	setFloat(&wm.Rotation, w.Rotation)
	if w.Position != "" {
		wm.Position = letterhead.WatermarkPosition(strings.ToLower(w.Position))
	}
	setFloat(&wm.RepeatGap, w.RepeatGap)
	wm.UseLawyerName = w.UseLawyerName
	return wm
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
