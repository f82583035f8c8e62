// Package watermark renders watermark layers as positioned HTML fragments.
//
// Layers are fixed to the viewport so they repeat on every printed page, sit
// above the content layer and never intercept pointer or print events.
package watermark

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/alnah/go-lawdoc/internal/letterhead"
)

// Tiling constants. Tiles are drawn smaller than a single-instance watermark
// so the repeated grid doesn't crowd the page.
const (
	TileCount = 12
	TileScale = 0.7
)

// Layer ids.
const (
	PrimaryID   = "watermark-layer"
	SecondaryID = "watermark-layer-secondary"
)

const (
	primaryZIndex       = 1000
	secondaryZIndex     = 1001
	textFontSizePx      = 48
	imageMaxWidthPx     = 300
	defaultTextColor    = "#000000"
	anchorOffsetPercent = 20 // top/bottom anchor distance from the page edge
)

// Settings is a watermark layer plus the render-time context it needs.
type Settings struct {
	letterhead.Watermark

	// LawyerName replaces Text when UseLawyerName is set and the name is non-empty.
	LawyerName string

	// Color is the text color, given as #rgb or #rrggbb.
	Color string
}

// Render returns the HTML fragment for one watermark layer, or "" when the
// layer is disabled or has no content. secondary only changes the layer id
// and stacking order; geometry is identical.
func Render(s Settings, secondary bool) string {
	content := renderContent(s)
	if content == "" {
		return ""
	}

	id, z := PrimaryID, primaryZIndex
	if secondary {
		id, z = SecondaryID, secondaryZIndex
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, `<div id="%s" class="watermark-layer" aria-hidden="true" style="position: fixed; top: 0; left: 0; right: 0; bottom: 0; z-index: %d; pointer-events: none; overflow: hidden;">`, id, z)

	rotation := formatNumber(finite(s.Rotation))
	scale := sizeScale(s.Size)

	switch s.Position {
	case letterhead.PositionRepeat:
		gap := finite(s.RepeatGap)
		if gap < 0 {
			gap = 0
		}
		fmt.Fprintf(&buf, `<div class="watermark-grid" style="display: flex; flex-wrap: wrap; justify-content: center; align-content: center; gap: %spx; width: 100%%; height: 100%%;">`, formatNumber(gap))
		tile := fmt.Sprintf(`<div class="watermark-tile" style="transform: rotate(%sdeg) scale(%s);">%s</div>`, rotation, formatNumber(scale*TileScale), content)
		for range TileCount {
			buf.WriteString(tile)
		}
		buf.WriteString(`</div>`)
	case letterhead.PositionTop:
		fmt.Fprintf(&buf, `<div class="watermark-item" style="position: absolute; top: %d%%; left: 50%%; transform: translateX(-50%%) rotate(%sdeg) scale(%s);">%s</div>`, anchorOffsetPercent, rotation, formatNumber(scale), content)
	case letterhead.PositionBottom:
		fmt.Fprintf(&buf, `<div class="watermark-item" style="position: absolute; bottom: %d%%; left: 50%%; transform: translateX(-50%%) rotate(%sdeg) scale(%s);">%s</div>`, anchorOffsetPercent, rotation, formatNumber(scale), content)
	default:
		fmt.Fprintf(&buf, `<div class="watermark-item" style="position: absolute; top: 50%%; left: 50%%; transform: translate(-50%%, -50%%) rotate(%sdeg) scale(%s);">%s</div>`, rotation, formatNumber(scale), content)
	}

	buf.WriteString(`</div>`)
	return buf.String()
}

// renderContent returns the inner text or image element, or "" for a no-op layer.
func renderContent(s Settings) string {
	if !s.Enabled {
		return ""
	}
	alpha := opacity(s.Opacity)

	switch s.Type {
	case letterhead.WatermarkImage:
		if s.ImageURL == "" {
			return ""
		}
		return fmt.Sprintf(`<img src="%s" alt="" style="max-width: %dpx; opacity: %s;">`,
			html.EscapeString(s.ImageURL), imageMaxWidthPx, formatNumber(alpha))
	default:
		text := s.Text
		if s.UseLawyerName && s.LawyerName != "" {
			text = s.LawyerName
		}
		if strings.TrimSpace(text) == "" {
			return ""
		}
		return fmt.Sprintf(`<span style="font-size: %dpx; font-weight: bold; white-space: nowrap; color: %s;">%s</span>`,
			textFontSizePx, rgba(s.Color, alpha), html.EscapeString(text))
	}
}

// opacity converts a 0..100 percentage to a clamped 0..1 alpha.
func opacity(percent float64) float64 {
	switch {
	case math.IsNaN(percent) || percent < 0:
		return 0
	case percent > 100:
		return 1
	}
	return percent / 100
}

// sizeScale converts a size percentage to a CSS scale factor.
func sizeScale(percent float64) float64 {
	if math.IsNaN(percent) || math.IsInf(percent, 0) || percent <= 0 {
		percent = letterhead.DefaultWatermarkSize
	}
	return percent / 100
}

// rgba converts a hex color and alpha to a CSS rgba() value.
// Unparseable colors fall back to black.
func rgba(hex string, alpha float64) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		r, g, b, _ = parseHex(defaultTextColor)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNumber(alpha))
}

// parseHex parses #rgb or #rrggbb.
func parseHex(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// finite maps NaN and infinities to zero.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// formatNumber renders a float rounded to 4 decimals without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}
