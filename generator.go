package lawdoc

import (
	"context"
	"errors"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-lawdoc/internal/assets"
	"github.com/alnah/go-lawdoc/internal/dateutil"
	"github.com/alnah/go-lawdoc/internal/fileutil"
	"github.com/alnah/go-lawdoc/internal/layout"
	"github.com/alnah/go-lawdoc/internal/letterhead"
	"github.com/alnah/go-lawdoc/internal/pipeline"
	"github.com/alnah/go-lawdoc/internal/placeholder"
	"github.com/alnah/go-lawdoc/internal/preload"
	"github.com/alnah/go-lawdoc/internal/watermark"
)

// currentDateKey is filled with the generation date when a template uses
// it without a value.
const currentDateKey = "current_date"

// Generator orchestrates the contract generation pipeline.
// Create with NewGenerator(), use Generate() or Preview(), and Close() when done.
// A Generator owns one browser and is not safe for concurrent Generate calls
// that render PDFs; use GeneratorPool for parallel output.
type Generator struct {
	cfg         generatorConfig
	assetLoader assets.AssetLoader
	style       string
	cssInjector pipeline.CSSInjector
	pdf         pdfConverter
}

// NewGenerator creates a Generator with default configuration.
// Returns error if the asset path or style cannot be resolved.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			timeout: defaultTimeout,
			logger:  zap.NewNop(),
			clock:   time.Now,
		},
		assetLoader: assets.NewEmbeddedLoader(),
		cssInjector: &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.cfg.registry == nil {
		g.cfg.registry = DefaultRegistry()
	}
	if g.cfg.prober == nil {
		g.cfg.prober = &preload.HTTPProber{}
	}

	if g.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(g.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		g.assetLoader = resolver
	}

	if err := g.resolveStyle(); err != nil {
		return nil, err
	}

	if g.pdf == nil {
		g.pdf = newRodConverter(g.cfg.timeout)
	}

	return g, nil
}

// Registry returns the registry used for unknown-placeholder reports.
func (g *Generator) Registry() *Registry {
	return g.cfg.registry
}

// Preview assembles the HTML document without waiting for images or
// starting a browser.
func (g *Generator) Preview(ctx context.Context, input Input) (*Result, error) {
	input.HTMLOnly = true
	return g.Generate(ctx, input)
}

// Generate runs the full pipeline and returns the HTML and, unless
// input.HTMLOnly is set, the PDF.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	format := input.Format
	if format == "" {
		format = FormatHTML
	}
	lh := input.Letterhead
	log := g.cfg.logger.With(
		zap.String("format", string(format)),
		zap.String("mode", string(lh.Mode())),
	)

	content := pipeline.Normalize(input.Content)
	found := placeholder.Extract(content)
	unknown := g.cfg.registry.UnknownPlaceholders(content)
	if len(unknown) > 0 {
		log.Warn("unknown placeholders", zap.Strings("keys", unknown))
	}

	values, err := g.resolveValues(input.Values, found, format, lh)
	if err != nil {
		return nil, err
	}
	missing := placeholder.Missing(content, values)
	if len(missing) > 0 {
		log.Warn("placeholders without values", zap.Strings("keys", missing))
	}
	content = placeholder.Replace(content, values)
	log.Debug("substituted placeholders", zap.Int("found", len(found)), zap.Int("values", len(values)))

	converter, err := pipeline.NewContentConverter(format)
	if err != nil {
		return nil, err
	}
	body, err := converter.ToHTML(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("converting content: %w", err)
	}

	body, images, err := pipeline.RewriteImagePaths(body, input.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("rewriting image paths: %w", err)
	}
	log.Debug("converted content", zap.Int("bytes", len(body)), zap.Int("images", len(images)))

	geo := layout.Compile(lh)
	doc := pipeline.Assemble(g.documentParts(lh, geo, input, body))
	log.Debug("assembled document",
		zap.Float64("paddingTopMM", geo.ContentPaddingTopMM),
		zap.Float64("paddingBottomMM", geo.ContentPaddingBottomMM))

	css := g.style
	if input.CSS != "" {
		css += "\n" + input.CSS
	}
	doc = g.cssInjector.InjectCSS(ctx, doc, css)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		HTML:         []byte(doc),
		Layout:       geo,
		Placeholders: found,
		Unknown:      unknown,
		Missing:      missing,
	}

	if input.HTMLOnly {
		return res, nil
	}

	renderCtx, cancel := g.renderContext(ctx)
	defer cancel()

	probes, err := preload.Start(renderCtx, g.cfg.prober, letterhead.ImageURLs(lh)...).Wait(renderCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImagesNotReady, err)
	}
	for _, p := range preload.Failed(probes) {
		log.Warn("letterhead image unavailable", zap.String("url", p.URL), zap.Error(p.Err))
	}
	res.Images = probes

	start := time.Now()
	pdf, err := g.pdf.ToPDF(renderCtx, doc)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	log.Debug("rendered PDF", zap.Int("bytes", len(pdf)), zap.Duration("elapsed", time.Since(start)))

	res.PDF = pdf
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (g *Generator) Close() error {
	if g.pdf != nil {
		return g.pdf.Close()
	}
	return nil
}

// renderContext bounds the image gate and PDF render with the configured
// timeout unless the caller already set a deadline.
func (g *Generator) renderContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.cfg.timeout)
}

// documentParts builds every fragment of the document.
func (g *Generator) documentParts(lh Letterhead, geo layout.Geometry, input Input, body string) pipeline.DocumentParts {
	common := lh.Common()
	primary := watermark.Settings{
		Watermark:  common.Watermark,
		LawyerName: input.LawyerName,
		Color:      common.PrimaryColor,
	}
	secondary := watermark.Settings{
		Watermark:  common.SecondaryWatermark,
		LawyerName: input.LawyerName,
		Color:      common.SecondaryColor,
	}

	return pipeline.DocumentParts{
		Title:              input.Title,
		Geometry:           geo,
		TextColor:          common.TextColor,
		Header:             pipeline.BuildHeader(lh, geo),
		Footer:             pipeline.BuildFooter(lh, geo),
		Watermark:          pipeline.WatermarkFragment(watermark.Render(primary, false)),
		SecondaryWatermark: pipeline.WatermarkFragment(watermark.Render(secondary, true)),
		Content:            body,
	}
}

// resolveValues prepares the value map for substitution: NFC, auto dates,
// current_date, and HTML escaping for formats that need it. The caller's
// map is never modified.
func (g *Generator) resolveValues(in map[string]string, found []string, format Format, lh Letterhead) (map[string]string, error) {
	now := g.cfg.clock()
	loc := dateLocale(lh)

	values := make(map[string]string, len(in)+1)
	for k, v := range in {
		v = pipeline.Normalize(v)
		if dateutil.IsAuto(v) {
			resolved, err := dateutil.ResolveDate(v, now, loc)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDate, k, err)
			}
			v = resolved
		}
		values[k] = v
	}

	if _, ok := values[currentDateKey]; !ok && containsKey(found, currentDateKey) {
		today, err := dateutil.Format(now, dateutil.DefaultDateFormat, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		values[currentDateKey] = today
	}

	if format.EscapesValues() {
		for k, v := range values {
			values[k] = html.EscapeString(v)
		}
	}
	return values, nil
}

// dateLocale follows the letterhead's page-number language.
func dateLocale(lh Letterhead) dateutil.Locale {
	if lh.Common().PageNumberFormat == letterhead.PageNumbersEnglish {
		return dateutil.LocaleEnglish
	}
	return dateutil.LocaleArabic
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// An empty input selects the built-in contract stylesheet.
func (g *Generator) resolveStyle() error {
	input := g.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		g.style = string(content)
		return nil
	}

	if strings.Contains(input, "{") {
		g.style = input
		return nil
	}

	css, err := g.assetLoader.LoadStyle(input)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return fmt.Errorf("%w: %q", ErrStyleNotFound, input)
		}
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	g.style = css
	return nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their letterhead validated earlier by config.LoadLetterhead.
func validateInput(input Input) error {
	if strings.TrimSpace(input.Content) == "" {
		return ErrEmptyContent
	}
	if len(input.Content) > MaxContentSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrContentTooLarge, len(input.Content), MaxContentSize)
	}
	switch l := input.Letterhead.(type) {
	case nil:
		return ErrNilLetterhead
	case *letterhead.Image:
		if l == nil {
			return ErrNilLetterhead
		}
	case *letterhead.Dynamic:
		if l == nil {
			return ErrNilLetterhead
		}
	}
	if input.Format != "" {
		if _, err := pipeline.NewContentConverter(input.Format); err != nil {
			return err
		}
	}
	return nil
}
