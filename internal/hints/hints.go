// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-lawdoc/internal/fileutil"
)

// maxListed caps how many names a hint enumerates.
const maxListed = 8

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	hints = append(hints, "use --html-only to skip PDF rendering")

	return formatHints(hints)
}

// ForTimeout returns a hint about slow rendering or unreachable images.
func ForTimeout() string {
	return format("increase --timeout, or check that letterhead image URLs are reachable")
}

// ForConfigNotFound suggests --config and the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "/go-lawdoc/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForLetterheadNotFound lists the built-in letterhead presets.
func ForLetterheadNotFound(presets []string) string {
	hint := "pass a letterhead file with -l path/to/letterhead.yaml"
	if len(presets) > 0 {
		hint += "; built-in: " + joinLimited(presets)
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + joinLimited(available))
}

// ForUnknownPlaceholders points at the variable catalog.
func ForUnknownPlaceholders(unknown []string) string {
	if len(unknown) == 0 {
		return ""
	}
	return format("run `lawdoc vars` to list known variables; unknown: " + joinLimited(unknown))
}

// ForImageProbe returns hints for letterhead images that failed to load.
func ForImageProbe() string {
	return format("use an absolute path, a path relative to the letterhead file, or an https URL")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

func joinLimited(names []string) string {
	if len(names) <= maxListed {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:maxListed], ", ") + ", ..."
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
