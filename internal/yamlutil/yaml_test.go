package yamlutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-lawdoc/internal/yamlutil"
)

type testLetterhead struct {
	Mode    string   `yaml:"mode"`
	Company string   `yaml:"company_name"`
	Margin  *float64 `yaml:"margin"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("mode: dynamic\ncompany_name: مكتب الرشيد\nmargin: 25"),
			dest: &testLetterhead{},
			check: func(t *testing.T, v any) {
				lh := v.(*testLetterhead)
				if lh.Mode != "dynamic" || lh.Company != "مكتب الرشيد" {
					t.Errorf("got %+v", lh)
				}
				if lh.Margin == nil || *lh.Margin != 25 {
					t.Errorf("Margin = %v, want 25", lh.Margin)
				}
			},
		},
		{
			name: "absent pointer stays nil",
			data: []byte("mode: image"),
			dest: &testLetterhead{},
			check: func(t *testing.T, v any) {
				if v.(*testLetterhead).Margin != nil {
					t.Error("Margin should be nil when absent")
				}
			},
		},
		{name: "nil data", data: nil, dest: &testLetterhead{}, wantErr: yamlutil.ErrNilData},
		{name: "empty data", data: []byte{}, dest: &testLetterhead{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("mode: image"), dest: nil, wantErr: yamlutil.ErrNilDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalStrict() error = %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshalStrict_Rejects(t *testing.T) {
	t.Parallel()

	err := yamlutil.UnmarshalStrict([]byte("mode: [unclosed"), &testLetterhead{})
	if err == nil || !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("UnmarshalStrict() error = %v, want yamlutil: prefix", err)
	}
	if err := yamlutil.UnmarshalStrict([]byte("mode: image\nheader_colour: red"), &testLetterhead{}); err == nil {
		t.Error("UnmarshalStrict() should reject unknown field")
	}
}

// Not parallel: modifies the global MaxInputSize.
func TestInputSizeLimit(t *testing.T) {
	orig := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = orig })
	yamlutil.MaxInputSize = 16

	big := []byte("company_name: " + strings.Repeat("x", 32))
	if err := yamlutil.UnmarshalStrict(big, &testLetterhead{}); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("UnmarshalStrict() error = %v, want ErrInputTooLarge", err)
	}

	path := filepath.Join(t.TempDir(), "big.yaml")
	if err := os.WriteFile(path, big, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := yamlutil.ReadFile(path, &testLetterhead{}); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("ReadFile() error = %v, want ErrInputTooLarge", err)
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "lh.yaml")
	if err := os.WriteFile(good, []byte("mode: dynamic\ncompany_name: Firm\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	unknown := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(unknown, []byte("mode: dynamic\nlogo: x\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var lh testLetterhead
	if err := yamlutil.ReadFile(good, &lh); err != nil || lh.Company != "Firm" {
		t.Errorf("ReadFile() = %+v, %v", lh, err)
	}
	if err := yamlutil.ReadFile(unknown, &testLetterhead{}); err == nil {
		t.Error("ReadFile() should reject unknown fields")
	}
	if err := yamlutil.ReadFile(filepath.Join(dir, "missing.yaml"), &testLetterhead{}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want ErrNotExist", err)
	}
}
