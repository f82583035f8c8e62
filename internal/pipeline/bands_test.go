package pipeline

import (
	"strings"
	"testing"

	"github.com/alnah/go-lawdoc/internal/layout"
	"github.com/alnah/go-lawdoc/internal/letterhead"
)

func scenarioDynamic() *letterhead.Dynamic {
	lh := letterhead.NewDynamic("مكتب المحاماة")
	lh.MarginTopMM = 25
	lh.MarginBottomMM = 20
	lh.MarginRightMM = 20
	lh.MarginLeftMM = 20
	return lh
}

func TestBuildHeader_DynamicOffsets(t *testing.T) {
	t.Parallel()

	lh := scenarioDynamic()
	got := string(BuildHeader(lh, layout.Compile(lh)))

	if !strings.Contains(got, "top: -25mm; left: -20mm; right: -20mm;") {
		t.Errorf("header offsets wrong: %s", got)
	}
	if !strings.Contains(got, "position: fixed") {
		t.Errorf("header must be fixed: %s", got)
	}
	if !strings.Contains(got, "مكتب المحاماة") {
		t.Errorf("company name missing: %s", got)
	}
}

func TestBuildFooter_DynamicOffsets(t *testing.T) {
	t.Parallel()

	lh := scenarioDynamic()
	lh.FooterPhone = "+966 11 000 0000"
	got := string(BuildFooter(lh, layout.Compile(lh)))

	if !strings.Contains(got, "bottom: -20mm; left: -20mm; right: -20mm;") {
		t.Errorf("footer offsets wrong: %s", got)
	}
	if !strings.Contains(got, "+966 11 000 0000") {
		t.Errorf("phone missing: %s", got)
	}
}

func TestBuildHeader_ImageMode(t *testing.T) {
	t.Parallel()

	lh := letterhead.NewImage("https://x.test/header.png", "https://x.test/footer.png")
	lh.HeaderHeightMM = 35
	lh.FooterHeightMM = 22
	g := layout.Compile(lh)

	header := string(BuildHeader(lh, g))
	for _, want := range []string{
		`src="https://x.test/header.png"`,
		"object-fit: fill",
		"width: 210mm; height: 35mm;",
		"top: -25mm; left: -20mm; right: -20mm;",
	} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q: %s", want, header)
		}
	}

	footer := string(BuildFooter(lh, g))
	for _, want := range []string{`src="https://x.test/footer.png"`, "width: 210mm; height: 22mm;", "bottom: -20mm;"} {
		if !strings.Contains(footer, want) {
			t.Errorf("footer missing %q: %s", want, footer)
		}
	}
}

func TestBands_EmptyWhenNoContent(t *testing.T) {
	t.Parallel()

	img := letterhead.NewImage("", "")
	if got := BuildHeader(img, layout.Compile(img)); got != "" {
		t.Errorf("image header without URL = %q, want empty", got)
	}
	if got := BuildFooter(img, layout.Compile(img)); got != "" {
		t.Errorf("image footer without URL = %q, want empty", got)
	}

	dyn := letterhead.NewDynamic("")
	if got := BuildHeader(dyn, layout.Compile(dyn)); got != "" {
		t.Errorf("dynamic header without content = %q, want empty", got)
	}
	if got := BuildFooter(dyn, layout.Compile(dyn)); got != "" {
		t.Errorf("dynamic footer without content = %q, want empty", got)
	}
}

func TestBuildHeader_LogoPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos  letterhead.LogoPosition
		want string
	}{
		{pos: letterhead.LogoRight, want: "flex-direction: row;"},
		{pos: letterhead.LogoLeft, want: "flex-direction: row-reverse;"},
		{pos: letterhead.LogoCenter, want: "flex-direction: column;"},
		{pos: "", want: "flex-direction: row;"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			t.Parallel()

			lh := scenarioDynamic()
			lh.LogoURL = "https://x.test/logo.png"
			lh.LogoPosition = tt.pos

			got := string(BuildHeader(lh, layout.Compile(lh)))
			if !strings.Contains(got, tt.want) {
				t.Errorf("header missing %q: %s", tt.want, got)
			}
			if !strings.Contains(got, "width: 120px;") {
				t.Errorf("default logo width missing: %s", got)
			}
		})
	}
}

func TestBuildHeader_BorderBottom(t *testing.T) {
	t.Parallel()

	lh := scenarioDynamic()
	lh.ShowBorderBottom = false
	if got := string(BuildHeader(lh, layout.Compile(lh))); strings.Contains(got, "border-bottom") {
		t.Errorf("border should be absent: %s", got)
	}

	lh.ShowBorderBottom = true
	lh.BorderColor = "#aa0000"
	if got := string(BuildHeader(lh, layout.Compile(lh))); !strings.Contains(got, "border-bottom: 2px solid #aa0000;") {
		t.Errorf("border missing: %s", got)
	}
}

func TestBands_EscapeUserText(t *testing.T) {
	t.Parallel()

	lh := scenarioDynamic()
	lh.CompanyName = `<b onload="x">`
	lh.FooterText = "<script>"
	lh.PrimaryColor = `red" onclick="x`
	g := layout.Compile(lh)

	out := string(BuildHeader(lh, g)) + string(BuildFooter(lh, g))
	for _, bad := range []string{"<b onload", "<script>", `red" onclick`} {
		if strings.Contains(out, bad) {
			t.Errorf("unescaped %q in %s", bad, out)
		}
	}
}
