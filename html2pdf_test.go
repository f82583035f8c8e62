package lawdoc

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
)

// mockRenderer implements pdfRenderer for testing.
type mockRenderer struct {
	Result     []byte
	Err        error
	CalledWith string
	Content    string
	Closed     bool
}

func (m *mockRenderer) RenderFromFile(_ context.Context, filePath string) ([]byte, error) {
	m.CalledWith = filePath
	data, err := os.ReadFile(filePath) // #nosec G304 -- test temp file
	if err == nil {
		m.Content = string(data)
	}
	return m.Result, m.Err
}

func (m *mockRenderer) Close() error {
	m.Closed = true
	return nil
}

func TestRodConverter_ToPDF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		html    string
		mock    *mockRenderer
		wantErr bool
	}{
		{
			name: "successful render returns PDF bytes",
			html: "<html><body>عقد</body></html>",
			mock: &mockRenderer{Result: []byte("%PDF-1.7 fake")},
		},
		{
			name:    "renderer error propagates",
			html:    "<html></html>",
			mock:    &mockRenderer{Err: errors.New("browser crashed")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &rodConverter{renderer: tt.mock}
			result, err := c.ToPDF(context.Background(), tt.html)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != string(tt.mock.Result) {
				t.Errorf("result = %q, want %q", result, tt.mock.Result)
			}
			if !strings.Contains(tt.mock.CalledWith, "lawdoc-") || !strings.HasSuffix(tt.mock.CalledWith, ".html") {
				t.Errorf("renderer called with %q, want a lawdoc-*.html temp file", tt.mock.CalledWith)
			}
			if tt.mock.Content != tt.html {
				t.Error("temp file content differs from the document")
			}
			if _, err := os.Stat(tt.mock.CalledWith); !os.IsNotExist(err) {
				t.Error("temp file was not removed")
			}
		})
	}
}

func TestRodConverter_Close(t *testing.T) {
	t.Parallel()

	mock := &mockRenderer{}
	if err := (&rodConverter{renderer: mock}).Close(); err != nil || !mock.Closed {
		t.Errorf("Close() = %v, closed = %v", err, mock.Closed)
	}
	if err := (&rodConverter{}).Close(); err != nil {
		t.Errorf("Close() without renderer = %v", err)
	}
}

func TestRodRenderer_CloseWithoutBrowser(t *testing.T) {
	t.Parallel()

	r := newRodRenderer(defaultTimeout)
	if err := r.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestRodRenderer_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRodRenderer(defaultTimeout)
	if _, err := r.RenderFromFile(ctx, "/nonexistent.html"); !errors.Is(err, context.Canceled) {
		t.Errorf("RenderFromFile() error = %v, want Canceled", err)
	}
	if r.browser != nil {
		t.Error("browser started for a cancelled context")
	}
}

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	opts := buildPDFOptions()
	if *opts.PaperWidth != paperWidthInches || *opts.PaperHeight != paperHeightInches {
		t.Errorf("paper = %vx%v, want A4", *opts.PaperWidth, *opts.PaperHeight)
	}
	for name, m := range map[string]*float64{
		"top": opts.MarginTop, "bottom": opts.MarginBottom,
		"left": opts.MarginLeft, "right": opts.MarginRight,
	} {
		if *m != 0 {
			t.Errorf("margin %s = %v, want 0", name, *m)
		}
	}
	if !opts.PreferCSSPageSize || !opts.PrintBackground || opts.DisplayHeaderFooter {
		t.Errorf("opts = %+v", opts)
	}
}
