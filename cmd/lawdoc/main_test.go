package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRunMain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	unknown := writeFile(t, dir, "unknown.html", "<p>{{client_name}} {{favorite_color}}</p>")

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage",
			args:         []string{"lawdoc"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: lawdoc"},
		},
		{
			name:         "version",
			args:         []string{"lawdoc", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"lawdoc dev"},
		},
		{
			name:         "help",
			args:         []string{"lawdoc", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: lawdoc", "Commands:"},
		},
		{
			name:         "help render",
			args:         []string{"lawdoc", "help", "render"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: lawdoc render"},
		},
		{
			name:         "render --help",
			args:         []string{"lawdoc", "render", "--help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: lawdoc render"},
		},
		{
			name:         "unknown command",
			args:         []string{"lawdoc", "unknown"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: unknown"},
		},
		{
			name:         "bad flag",
			args:         []string{"lawdoc", "render", "--no-such-flag", "a.html"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid usage"},
		},
		{
			name:     "render without content",
			args:     []string{"lawdoc", "render"},
			wantCode: ExitUsage,
		},
		{
			name:     "render missing content file",
			args:     []string{"lawdoc", "render", filepath.Join(dir, "nope.html"), "--html-only"},
			wantCode: ExitIO,
		},
		{
			name:         "render unknown letterhead preset",
			args:         []string{"lawdoc", "render", unknown, "-l", "fancy", "--html-only"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"hint:", "classic"},
		},
		{
			name:     "render too many workers",
			args:     []string{"lawdoc", "render", unknown, "-w", "99"},
			wantCode: ExitUsage,
		},
		{
			name:         "check strict fails on unknown",
			args:         []string{"lawdoc", "check", unknown, "--strict"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"favorite_color"},
		},
		{
			name:         "check warns on unknown",
			args:         []string{"lawdoc", "check", unknown},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"{{client_name}}", "{{favorite_color}}"},
			wantInStderr: []string{"lawdoc vars"},
		},
		{
			name:     "vars bad category",
			args:     []string{"lawdoc", "vars", "--category", "pets"},
			wantCode: ExitUsage,
		},
		{
			name:         "layout default preset",
			args:         []string{"lawdoc", "layout"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"dynamic", "45mm"},
		},
		{
			name:         "config not found",
			args:         []string{"lawdoc", "layout", "--config", "no-such-lawdoc-config"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"hint:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"render", "a.html"}, false},
		{[]string{"render", "-v", "a.html"}, true},
		{[]string{"render", "--verbose"}, true},
		{[]string{"render", "--verbose=true"}, true},
		{[]string{"render", "--", "-v"}, false},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()
			if got := hasVerboseFlag(tt.args); got != tt.want {
				t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
