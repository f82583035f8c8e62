package main

import (
	"errors"
	"strings"
	"testing"

	lawdoc "github.com/alnah/go-lawdoc"
)

func TestRunVars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
		wantErr error
	}{
		{
			name: "all categories",
			want: []string{"client:", "case:", "firm:", "{{client_name}}", "{{firm_name}}"},
		},
		{
			name:    "one category",
			args:    []string{"--category", "firm"},
			want:    []string{"firm:", "{{firm_name}}"},
			notWant: []string{"client:", "{{client_name}}"},
		},
		{
			name:    "unknown category",
			args:    []string{"--category", "pets"},
			wantErr: lawdoc.ErrInvalidCategory,
		},
		{
			name:    "positional args rejected",
			args:    []string{"extra"},
			wantErr: ErrUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := newTestEnv()
			err := runVars(tt.args, env)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("runVars() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("runVars() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(stdout.String(), w) {
					t.Errorf("output missing %q", w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(stdout.String(), w) {
					t.Errorf("output should not contain %q", w)
				}
			}
		})
	}
}
