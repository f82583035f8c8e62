package pipeline

import (
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-lawdoc/internal/layout"
	"github.com/alnah/go-lawdoc/internal/letterhead"
)

// defaultTitle is used when a document has no title.
const defaultTitle = "Document"

// baseFontFamily covers Arabic and Latin glyphs in print.
const baseFontFamily = "'Amiri', 'Traditional Arabic', 'Times New Roman', serif"

// DocumentParts holds every fragment the assembler composes.
type DocumentParts struct {
	Title              string
	Geometry           layout.Geometry
	TextColor          string
	Header             HeaderFragment
	Footer             FooterFragment
	Watermark          WatermarkFragment
	SecondaryWatermark WatermarkFragment

	// Content is the substituted contract body, already in HTML.
	Content string
}

// Assemble composes the fragments into one standalone, print-ready HTML
// document: inline CSS only, A4 @page rules, right-to-left direction.
func Assemble(p DocumentParts) string {
	title := p.Title
	if strings.TrimSpace(title) == "" {
		title = defaultTitle
	}

	var buf strings.Builder
	buf.Grow(len(p.Content) + len(p.Header) + len(p.Footer) + len(p.Watermark) + len(p.SecondaryWatermark) + 2048)

	buf.WriteString("<!DOCTYPE html>\n")
	buf.WriteString(`<html lang="ar" dir="rtl">` + "\n")
	buf.WriteString("<head>\n")
	buf.WriteString(`<meta charset="utf-8">` + "\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(title))
	buf.WriteString("<style>")
	buf.WriteString(sanitizeCSS(documentCSS(p.Geometry, letterhead.Color(p.TextColor, letterhead.DefaultTextColor))))
	buf.WriteString("</style>\n")
	buf.WriteString("</head>\n")
	buf.WriteString(`<body dir="rtl">` + "\n")

	writeFragment(&buf, string(p.Header))
	writeFragment(&buf, string(p.Footer))
	writeFragment(&buf, string(p.Watermark))
	writeFragment(&buf, string(p.SecondaryWatermark))

	buf.WriteString(`<main class="contract-content">`)
	buf.WriteString(p.Content)
	buf.WriteString("</main>\n")

	buf.WriteString("</body>\n</html>\n")
	return buf.String()
}

func writeFragment(buf *strings.Builder, fragment string) {
	if fragment == "" {
		return
	}
	buf.WriteString(fragment)
	buf.WriteByte('\n')
}

// documentCSS builds the inline stylesheet. The content block cancels the
// page margin on both sides with negative margins and restores the inset
// through padding, so it lines up with the fixed bands, which ignore page
// margins.
func documentCSS(g layout.Geometry, textColor string) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, `
@page {
  size: A4;
  margin: %s %s %s %s;
}
`, layout.MM(g.MarginTopMM), layout.MM(g.MarginRightMM), layout.MM(g.MarginBottomMM), layout.MM(g.MarginLeftMM))

	fmt.Fprintf(&buf, `
html, body {
  margin: 0;
  padding: 0;
  direction: rtl;
  font-family: %s;
  color: %s;
  -webkit-print-color-adjust: exact;
  print-color-adjust: exact;
}
`, baseFontFamily, textColor)

	fmt.Fprintf(&buf, `
.contract-content {
  position: relative;
  z-index: 1;
  margin: 0 %s 0 %s;
  padding: %s %s %s %s;
  box-sizing: border-box;
  line-height: 1.8;
}
`, layout.MM(-g.MarginRightMM), layout.MM(-g.MarginLeftMM),
		layout.MM(g.ContentPaddingTopMM), layout.MM(g.ContentPaddingRightMM),
		layout.MM(g.ContentPaddingBottomMM), layout.MM(g.ContentPaddingLeftMM))

	buf.WriteString(g.PageNumberCSS)
	return buf.String()
}
