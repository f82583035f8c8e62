package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-lawdoc/internal/config"
)

func TestEnvironment_LoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("copies the environment config", func(t *testing.T) {
		t.Parallel()

		base := config.DefaultConfig()
		base.Letterhead = "minimal"
		base.Defaults.Values = map[string]string{"firm_name": "Firm"}
		env := &Environment{Config: base}

		cfg, err := env.loadConfig("")
		if err != nil {
			t.Fatal(err)
		}
		cfg.Letterhead = "classic"
		cfg.Defaults.Values["firm_name"] = "Other"

		if base.Letterhead != "minimal" || base.Defaults.Values["firm_name"] != "Firm" {
			t.Errorf("environment config modified: %+v", base)
		}
	})

	t.Run("nil config means defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := (&Environment{}).loadConfig("")
		if err != nil || cfg == nil {
			t.Fatalf("loadConfig() = %v, %v", cfg, err)
		}
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "lawdoc.yaml", "letterhead: ./heads/firm.yaml\ndefaults:\n  title: Lease\n")

		cfg, err := (&Environment{}).loadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Defaults.Title != "Lease" || !strings.HasPrefix(cfg.Letterhead, dir) {
			t.Errorf("cfg = %+v", cfg)
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var quiet, verbose bytes.Buffer

	q := newLogger(&quiet, false)
	q.Warn("hidden")
	q.Error("shown")
	_ = q.Sync()

	v := newLogger(&verbose, true)
	v.Debug("stage done")
	_ = v.Sync()

	if strings.Contains(quiet.String(), "hidden") || !strings.Contains(quiet.String(), `"msg":"shown"`) {
		t.Errorf("quiet logger output = %q", quiet.String())
	}
	if !strings.Contains(verbose.String(), "stage done") {
		t.Errorf("verbose logger output = %q", verbose.String())
	}
}
