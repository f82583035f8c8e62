package hints

// ForBrowserConnect tests are not parallel: they use t.Setenv and replace
// the package-level IsInContainer.

import (
	"strings"
	"testing"
)

func TestForBrowserConnect_InCI(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	t.Setenv("CI", "true")
	t.Setenv("ROD_NO_SANDBOX", "")
	t.Setenv("ROD_BROWSER_BIN", "")

	hint := ForBrowserConnect()

	for _, want := range []string{"hint:", "ROD_NO_SANDBOX", "ROD_BROWSER_BIN", "--html-only"} {
		if !strings.Contains(hint, want) {
			t.Errorf("ForBrowserConnect() = %q, want %q", hint, want)
		}
	}
}

func TestForBrowserConnect_InDocker(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITLAB_CI", "")
	t.Setenv("JENKINS_URL", "")
	t.Setenv("ROD_NO_SANDBOX", "")
	t.Setenv("ROD_BROWSER_BIN", "")

	if hint := ForBrowserConnect(); !strings.Contains(hint, "ROD_NO_SANDBOX") {
		t.Errorf("expected ROD_NO_SANDBOX suggestion in Docker, got %q", hint)
	}
}

func TestForBrowserConnect_AllConfigured(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	t.Setenv("CI", "")
	t.Setenv("ROD_NO_SANDBOX", "1")
	t.Setenv("ROD_BROWSER_BIN", "/usr/bin/chromium")

	hint := ForBrowserConnect()
	if strings.Contains(hint, "ROD_NO_SANDBOX") || strings.Contains(hint, "ROD_BROWSER_BIN") {
		t.Errorf("no environment hints expected, got %q", hint)
	}
	if !strings.Contains(hint, "--html-only") {
		t.Errorf("expected --html-only fallback, got %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{name: "empty paths", paths: nil, contains: "--config"},
		{name: "with user path", paths: []string{"./firm.yaml", "/home/u/.config/go-lawdoc/firm.yaml"}, contains: "create /home/u/.config/go-lawdoc/firm.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if hint := ForConfigNotFound(tt.paths); !strings.Contains(hint, tt.contains) {
				t.Errorf("ForConfigNotFound() = %q, want %q", hint, tt.contains)
			}
		})
	}
}

func TestForLetterheadNotFound(t *testing.T) {
	t.Parallel()

	if hint := ForLetterheadNotFound([]string{"classic", "minimal"}); !strings.Contains(hint, "built-in: classic, minimal") {
		t.Errorf("ForLetterheadNotFound() = %q", hint)
	}
	if hint := ForLetterheadNotFound(nil); strings.Contains(hint, "built-in") {
		t.Errorf("ForLetterheadNotFound(nil) = %q", hint)
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if hint := ForStyleNotFound(nil); hint != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", hint)
	}
	if hint := ForStyleNotFound([]string{"contract", "compact"}); !strings.Contains(hint, "contract, compact") {
		t.Errorf("ForStyleNotFound() = %q", hint)
	}
}

func TestForUnknownPlaceholders(t *testing.T) {
	t.Parallel()

	if hint := ForUnknownPlaceholders(nil); hint != "" {
		t.Errorf("ForUnknownPlaceholders(nil) = %q, want empty", hint)
	}

	many := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	hint := ForUnknownPlaceholders(many)
	if !strings.Contains(hint, "lawdoc vars") || !strings.HasSuffix(hint, "h, ...") {
		t.Errorf("ForUnknownPlaceholders() = %q", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	for _, h := range []string{
		ForTimeout(),
		ForOutputDirectory(),
		ForImageProbe(),
		ForLetterheadNotFound(nil),
		ForUnknownPlaceholders([]string{"x"}),
	} {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
