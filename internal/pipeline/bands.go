package pipeline

import (
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-lawdoc/internal/layout"
	"github.com/alnah/go-lawdoc/internal/letterhead"
)

// HeaderFragment is the fixed header band markup. Empty means no header.
type HeaderFragment string

// FooterFragment is the fixed footer band markup. Empty means no footer.
type FooterFragment string

// WatermarkFragment is one watermark layer. Empty means no layer.
type WatermarkFragment string

// BuildHeader returns the header band for lh. It is the single dispatch
// point on the letterhead mode for headers.
func BuildHeader(lh letterhead.Letterhead, g layout.Geometry) HeaderFragment {
	switch l := lh.(type) {
	case *letterhead.Image:
		return HeaderFragment(imageBand("letterhead-header", headerOffsets(g), g.HeaderBandHeightMM, l.HeaderImageURL))
	case *letterhead.Dynamic:
		return HeaderFragment(dynamicHeader(l, g))
	}
	return ""
}

// BuildFooter returns the footer band for lh. It is the single dispatch
// point on the letterhead mode for footers.
func BuildFooter(lh letterhead.Letterhead, g layout.Geometry) FooterFragment {
	switch l := lh.(type) {
	case *letterhead.Image:
		return FooterFragment(imageBand("letterhead-footer", footerOffsets(g), g.FooterBandHeightMM, l.FooterImageURL))
	case *letterhead.Dynamic:
		return FooterFragment(dynamicFooter(l, g))
	}
	return ""
}

// headerOffsets pulls the fixed header out to the physical page edge by
// negating the page margins.
func headerOffsets(g layout.Geometry) string {
	return fmt.Sprintf("top: %s; left: %s; right: %s;",
		layout.MM(-g.MarginTopMM), layout.MM(-g.MarginLeftMM), layout.MM(-g.MarginRightMM))
}

// footerOffsets mirrors headerOffsets for the bottom edge.
func footerOffsets(g layout.Geometry) string {
	return fmt.Sprintf("bottom: %s; left: %s; right: %s;",
		layout.MM(-g.MarginBottomMM), layout.MM(-g.MarginLeftMM), layout.MM(-g.MarginRightMM))
}

// imageBand stretches a pre-cropped full-bleed image over the band. The
// image fills 210mm x height exactly (object-fit: fill) so printed art
// stays aligned with the page edge.
func imageBand(class, offsets string, heightMM float64, src string) string {
	if src == "" {
		return ""
	}
	height := layout.MM(heightMM)
	return fmt.Sprintf(`<div class="%s" style="position: fixed; %s height: %s; z-index: 10;">`+
		`<img src="%s" alt="" style="display: block; width: %s; height: %s; object-fit: fill;">`+
		`</div>`,
		class, offsets, height, html.EscapeString(src), layout.MM(layout.PageWidthMM), height)
}

// logoFlex maps the logo position to a flex layout. In an rtl document a
// row starts on the right, so "right" keeps the logo first.
func logoFlex(pos letterhead.LogoPosition) (direction, textAlign string) {
	switch pos {
	case letterhead.LogoLeft:
		return "row-reverse", "right"
	case letterhead.LogoCenter:
		return "column", "center"
	default:
		return "row", "right"
	}
}

func dynamicHeader(l *letterhead.Dynamic, g layout.Geometry) string {
	if l.LogoURL == "" && l.CompanyName == "" && l.CompanyNameEN == "" && l.HeaderText == "" {
		return ""
	}

	primary := colorAttr(l.PrimaryColor, letterhead.DefaultPrimaryColor)
	secondary := colorAttr(l.SecondaryColor, letterhead.DefaultSecondaryColor)
	direction, textAlign := logoFlex(l.LogoPosition)

	border := ""
	if l.ShowBorderBottom {
		border = fmt.Sprintf(" border-bottom: 2px solid %s;", colorAttr(l.BorderColor, letterhead.DefaultBorderColor))
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, `<div class="letterhead-header" style="position: fixed; %s height: %s; z-index: 10; box-sizing: border-box; padding: 8mm %s 4mm %s; background: #ffffff;%s">`,
		headerOffsets(g), layout.MM(g.HeaderBandHeightMM), layout.MM(g.MarginRightMM), layout.MM(g.MarginLeftMM), border)
	fmt.Fprintf(&buf, `<div class="letterhead-brand" style="display: flex; flex-direction: %s; align-items: center; gap: 6mm; text-align: %s;">`, direction, textAlign)

	if l.LogoURL != "" {
		width := l.LogoWidthPx
		if width <= 0 {
			width = letterhead.DefaultLogoWidthPx
		}
		fmt.Fprintf(&buf, `<img class="letterhead-logo" src="%s" alt="" style="width: %dpx; height: auto;">`, html.EscapeString(l.LogoURL), width)
	}

	if l.CompanyName != "" || l.CompanyNameEN != "" || l.HeaderText != "" {
		buf.WriteString(`<div class="letterhead-company">`)
		if l.CompanyName != "" {
			fmt.Fprintf(&buf, `<div style="font-size: 20px; font-weight: bold; color: %s;">%s</div>`, primary, html.EscapeString(l.CompanyName))
		}
		if l.CompanyNameEN != "" {
			fmt.Fprintf(&buf, `<div dir="ltr" style="font-size: 14px; color: %s;">%s</div>`, secondary, html.EscapeString(l.CompanyNameEN))
		}
		if l.HeaderText != "" {
			fmt.Fprintf(&buf, `<div style="font-size: 12px; color: %s;">%s</div>`, colorAttr(l.TextColor, letterhead.DefaultTextColor), html.EscapeString(l.HeaderText))
		}
		buf.WriteString(`</div>`)
	}

	buf.WriteString(`</div></div>`)
	return buf.String()
}

func dynamicFooter(l *letterhead.Dynamic, g layout.Geometry) string {
	contacts := make([]string, 0, 4)
	for _, c := range []struct{ label, value string }{
		{"هاتف", l.FooterPhone},
		{"بريد", l.FooterEmail},
		{"موقع", l.FooterWebsite},
		{"عنوان", l.FooterAddress},
	} {
		if c.value != "" {
			contacts = append(contacts, fmt.Sprintf(`<span class="letterhead-contact">%s: <bdi>%s</bdi></span>`, c.label, html.EscapeString(c.value)))
		}
	}
	if l.FooterText == "" && len(contacts) == 0 {
		return ""
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, `<div class="letterhead-footer" style="position: fixed; %s height: %s; z-index: 10; box-sizing: border-box; padding: 4mm %s 6mm %s; border-top: 1px solid %s; background: #ffffff; text-align: center; font-size: 11px; color: %s;">`,
		footerOffsets(g), layout.MM(g.FooterBandHeightMM), layout.MM(g.MarginRightMM), layout.MM(g.MarginLeftMM),
		colorAttr(l.SecondaryColor, letterhead.DefaultSecondaryColor),
		colorAttr(l.TextColor, letterhead.DefaultTextColor))

	if l.FooterText != "" {
		fmt.Fprintf(&buf, `<div class="letterhead-footer-text">%s</div>`, html.EscapeString(l.FooterText))
	}
	if len(contacts) > 0 {
		fmt.Fprintf(&buf, `<div class="letterhead-contacts" style="display: flex; flex-wrap: wrap; justify-content: center; gap: 4mm;">%s</div>`, strings.Join(contacts, ""))
	}

	buf.WriteString(`</div>`)
	return buf.String()
}

// colorAttr resolves a color and escapes it for use inside a style attribute.
func colorAttr(c, fallback string) string {
	return html.EscapeString(letterhead.Color(c, fallback))
}
