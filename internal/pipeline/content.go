package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	xhtml "golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Sentinel errors for content conversion.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrUnknownFormat  = errors.New("unknown content format")
)

// Format is the authoring format of contract content.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// ParseFormat maps a user-supplied name to a Format. Empty means HTML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html", "htm":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt", "plain":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q (use html, markdown or text)", ErrUnknownFormat, s)
}

// EscapesValues reports whether placeholder values must be HTML-escaped
// before substitution into content of this format. Plain text is escaped
// wholesale during conversion instead.
func (f Format) EscapesValues() bool {
	return f != FormatText
}

// ContentConverter turns substituted content into an HTML body fragment.
type ContentConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// NewContentConverter returns the converter for f.
func NewContentConverter(f Format) (ContentConverter, error) {
	switch f {
	case FormatHTML, "":
		return &HTMLPassthrough{}, nil
	case FormatMarkdown:
		return NewGoldmarkConverter(), nil
	case FormatText:
		return &TextConverter{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Normalize composes content to NFC and converts line endings to \n, so
// visually identical Arabic input always produces identical output.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return norm.NFC.String(s)
}

// HTMLPassthrough accepts editor output as-is. A full document is reduced to
// the children of its <body>.
type HTMLPassthrough struct{}

// ToHTML returns content unchanged unless it is a full document.
func (HTMLPassthrough) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, isFragment, err := parseHTML(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	if isFragment {
		return content, nil
	}

	body := findElement(doc, "body")
	if body == nil {
		return "", nil
	}
	var buf strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := xhtml.Render(&buf, c); err != nil {
			return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
	}
	return buf.String(), nil
}

func findElement(n *xhtml.Node, name string) *xhtml.Node {
	if n.Type == xhtml.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions.
// Raw HTML in Markdown is not rendered.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown to a fragment. Goldmark has no context support,
// so conversion runs in a goroutine raced against ctx.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// TextConverter renders plain text: blank lines separate paragraphs and
// single newlines become <br>.
type TextConverter struct{}

// ToHTML escapes content and wraps each paragraph in <p>.
func (TextConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.Trim(para, "\n")
		if strings.TrimSpace(para) == "" {
			continue
		}
		lines := strings.Split(para, "\n")
		for i, l := range lines {
			lines[i] = html.EscapeString(l)
		}
		buf.WriteString("<p>")
		buf.WriteString(strings.Join(lines, "<br>"))
		buf.WriteString("</p>\n")
	}
	return buf.String(), nil
}

var (
	_ ContentConverter = (*HTMLPassthrough)(nil)
	_ ContentConverter = (*GoldmarkConverter)(nil)
	_ ContentConverter = (*TextConverter)(nil)
)
