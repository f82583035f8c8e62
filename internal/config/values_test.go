package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLoadValues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "client.yaml", `
client_name: "محمد علي"
total_amount: 15000
installments: 3.5
is_final: true
notes:
`)

	values, err := LoadValues(path)
	if err != nil {
		t.Fatalf("LoadValues() error = %v", err)
	}

	want := map[string]string{
		"client_name":  "محمد علي",
		"total_amount": "15000",
		"installments": "3.5",
		"is_final":     "true",
		"notes":        "",
	}
	for k, v := range want {
		if values[k] != v {
			t.Errorf("values[%s] = %q, want %q", k, values[k], v)
		}
	}
}

func TestLoadValues_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "nested", content: "client:\n  name: x\n", wantErr: ErrValuesParse},
		{name: "list", content: "parties: [a, b]\n", wantErr: ErrValuesParse},
		{name: "bad key", content: "\"client-name\": x\n", wantErr: ErrValuesParse},
		{name: "empty", content: "", wantErr: ErrValuesParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, dir, tt.name+".yaml", tt.content)
			if _, err := LoadValues(path); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadValues() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := LoadValues(filepath.Join(dir, "missing.yaml")); !errors.Is(err, ErrValuesNotFound) {
		t.Errorf("LoadValues(missing) = %v, want ErrValuesNotFound", err)
	}
}
