// Package layout compiles a letterhead into concrete print geometry.
//
// All values are millimeters on an A4 page. Compile is pure and total: any
// missing or invalid numeric input is replaced by the documented default
// before it can reach the generated CSS.
package layout

import (
	"fmt"
	"strconv"

	"github.com/alnah/go-lawdoc/internal/letterhead"
)

// A4 page dimensions in millimeters.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// BandBufferMM separates image bands from flowed content.
const BandBufferMM = 5.0

// Dynamic mode geometry. Data-driven bands are content-sized, so the band
// heights are nominal and the content padding is fixed.
const (
	DynamicHeaderBandMM    = 40.0
	DynamicFooterBandMM    = 25.0
	DynamicContentTopMM    = DynamicHeaderBandMM + BandBufferMM // 45
	DynamicContentBottomMM = DynamicFooterBandMM + BandBufferMM // 30
)

// Page number labels, interpolated with CSS page counters.
const (
	pageNumberLabelArabic  = `"صفحة " counter(page) " من " counter(pages)`
	pageNumberLabelEnglish = `"Page " counter(page) " of " counter(pages)`
	pageNumberFontSizePx   = 10
)

// Geometry is the compiled layout of a letterhead.
type Geometry struct {
	Mode letterhead.Mode

	HeaderBandHeightMM float64
	FooterBandHeightMM float64

	ContentPaddingTopMM    float64
	ContentPaddingBottomMM float64
	ContentPaddingRightMM  float64
	ContentPaddingLeftMM   float64

	MarginTopMM    float64
	MarginRightMM  float64
	MarginBottomMM float64
	MarginLeftMM   float64

	// PageNumberCSS is empty unless page numbers are enabled.
	PageNumberCSS string
}

// Compile turns a letterhead into geometry. It is the single dispatch point
// on the letterhead mode for layout concerns.
func Compile(lh letterhead.Letterhead) Geometry {
	common := lh.Common()
	top, right, bottom, left := common.Margins()

	g := Geometry{
		Mode:                  lh.Mode(),
		MarginTopMM:           top,
		MarginRightMM:         right,
		MarginBottomMM:        bottom,
		MarginLeftMM:          left,
		ContentPaddingRightMM: right,
		ContentPaddingLeftMM:  left,
	}

	switch l := lh.(type) {
	case *letterhead.Image:
		header := letterhead.Length(l.HeaderHeightMM, letterhead.DefaultHeaderHeightMM)
		footer := letterhead.Length(l.FooterHeightMM, letterhead.DefaultFooterHeightMM)
		g.HeaderBandHeightMM = header
		g.FooterBandHeightMM = footer
		g.ContentPaddingTopMM = header + BandBufferMM
		g.ContentPaddingBottomMM = footer + BandBufferMM
	case *letterhead.Dynamic:
		g.HeaderBandHeightMM = DynamicHeaderBandMM
		g.FooterBandHeightMM = DynamicFooterBandMM
		g.ContentPaddingTopMM = DynamicContentTopMM
		g.ContentPaddingBottomMM = DynamicContentBottomMM
	}

	if common.ShowPageNumbers {
		g.PageNumberCSS = PageNumberCSS(common.PageNumberFormat, letterhead.Color(common.TextColor, letterhead.DefaultTextColor))
	}

	return g
}

// PageNumberCSS returns an @page margin-box rule printing the localized
// "page X of Y" label. Unknown formats fall back to Arabic.
func PageNumberCSS(format letterhead.PageNumberFormat, color string) string {
	label := pageNumberLabelArabic
	if format == letterhead.PageNumbersEnglish {
		label = pageNumberLabelEnglish
	}
	return fmt.Sprintf(`
@page {
  @bottom-center {
    content: %s;
    font-size: %dpx;
    color: %s;
  }
}
`, label, pageNumberFontSizePx, color)
}

// MM formats a millimeter value for CSS, e.g. 25 -> "25mm", -20 -> "-20mm".
func MM(v float64) string {
	if v == 0 {
		return "0mm"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "mm"
}
