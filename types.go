package lawdoc

import (
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-lawdoc/internal/layout"
	"github.com/alnah/go-lawdoc/internal/letterhead"
	"github.com/alnah/go-lawdoc/internal/pipeline"
	"github.com/alnah/go-lawdoc/internal/preload"
)

// Letterhead is the print skin applied around contract content. It is
// implemented by *ImageLetterhead and *DynamicLetterhead only.
type Letterhead = letterhead.Letterhead

// Letterhead variants and their shared parts.
type (
	ImageLetterhead    = letterhead.Image
	DynamicLetterhead  = letterhead.Dynamic
	LetterheadSettings = letterhead.Settings
	Watermark          = letterhead.Watermark
)

// Layout is the compiled print geometry of a letterhead, in millimeters.
type Layout = layout.Geometry

// Format is the authoring format of contract content.
type Format = pipeline.Format

// Content formats.
const (
	FormatHTML     = pipeline.FormatHTML
	FormatMarkdown = pipeline.FormatMarkdown
	FormatText     = pipeline.FormatText
)

// ParseFormat maps "html", "markdown", "md", "text"... to a Format.
// Empty means HTML.
func ParseFormat(s string) (Format, error) {
	return pipeline.ParseFormat(s)
}

// NewImageLetterhead returns an image letterhead with default geometry.
func NewImageLetterhead(headerURL, footerURL string) *ImageLetterhead {
	return letterhead.NewImage(headerURL, footerURL)
}

// NewDynamicLetterhead returns a dynamic letterhead with default geometry.
func NewDynamicLetterhead(companyName string) *DynamicLetterhead {
	return letterhead.NewDynamic(companyName)
}

// CompileLayout returns the print geometry of lh.
func CompileLayout(lh Letterhead) Layout {
	return layout.Compile(lh)
}

// Input contains the data for one document.
type Input struct {
	// Content is the contract template: an HTML fragment from the editor,
	// Markdown, or plain text depending on Format.
	Content string

	// Format defaults to FormatHTML.
	Format Format

	// Values maps placeholder keys to replacement values. "auto" and
	// "auto:FORMAT" values become the generation date.
	Values map[string]string

	// Letterhead is required.
	Letterhead Letterhead

	// Title is the document <title>. Defaults to "Document".
	Title string

	// LawyerName replaces watermark text on layers with UseLawyerName set.
	LawyerName string

	// CSS is appended after the generator's stylesheet.
	CSS string

	// SourceDir resolves relative image paths in Content.
	SourceDir string

	// HTMLOnly skips the image gate and PDF rendering.
	HTMLOnly bool
}

// Result contains the outputs of one generation.
type Result struct {
	HTML []byte
	PDF  []byte // nil when Input.HTMLOnly is set

	Layout Layout

	// Placeholders lists the keys found in the content before substitution.
	Placeholders []string
	// Unknown lists placeholders not in the generator's registry.
	Unknown []string
	// Missing lists placeholders left unsubstituted for lack of a value.
	Missing []string

	// Images holds the image probe outcomes. Empty when HTMLOnly.
	Images []preload.Result
}

// MaxContentSize bounds Input.Content.
const MaxContentSize = 4 << 20

// defaultTimeout bounds one PDF render when the caller's context has no deadline.
const defaultTimeout = 30 * time.Second

// generatorConfig holds options applied by NewGenerator.
type generatorConfig struct {
	timeout    time.Duration
	logger     *zap.Logger
	registry   *Registry
	prober     preload.Prober
	styleInput string
	assetPath  string
	clock      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout sets the PDF render timeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.cfg.timeout = d
		}
	}
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.cfg.logger = l
		}
	}
}

// WithRegistry sets the registry used to report unknown placeholders.
// Defaults to DefaultRegistry().
func WithRegistry(r *Registry) Option {
	return func(g *Generator) {
		g.cfg.registry = r
	}
}

// WithProber sets the image prober that gates PDF rendering.
// Defaults to an HTTP prober.
func WithProber(p preload.Prober) Option {
	return func(g *Generator) {
		g.cfg.prober = p
	}
}

// WithStyle sets the base stylesheet: a style name ("contract", "compact"),
// a path to a CSS file, or raw CSS content.
func WithStyle(style string) Option {
	return func(g *Generator) {
		g.cfg.styleInput = style
	}
}

// WithAssetPath loads styles from a custom directory, falling back to the
// built-in assets.
func WithAssetPath(path string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = path
	}
}

// WithClock sets the time source for "auto" date values.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.cfg.clock = now
		}
	}
}

// withPDFConverter replaces the browser backend.
func withPDFConverter(c pdfConverter) Option {
	return func(g *Generator) {
		g.pdf = c
	}
}
