package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/go-lawdoc/internal/assets"
	"github.com/alnah/go-lawdoc/internal/config"
)

// fixedNow is the clock used by CLI tests.
var fixedNow = time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)

// newTestEnv returns an environment writing to buffers.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:         func() time.Time { return fixedNow },
		Stdout:      &stdout,
		Stderr:      &stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		Config:      config.DefaultConfig(),
	}, &stdout, &stderr
}

// writeFile writes content under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
