package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*.css letterheads/*.yaml
var embedded embed.FS

// EmbeddedLoader loads assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a built-in stylesheet.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := embedded.ReadFile(kindStyles + "/" + name + styleExt)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// LoadLetterhead loads a built-in letterhead preset.
func (e *EmbeddedLoader) LoadLetterhead(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	content, err := embedded.ReadFile(kindLetterheads + "/" + name + letterheadExt)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrLetterheadNotFound, name)
	}
	return content, nil
}

// Styles lists built-in stylesheet names.
func (e *EmbeddedLoader) Styles() []string {
	return listFS(embedded, kindStyles, styleExt)
}

// Letterheads lists built-in preset names.
func (e *EmbeddedLoader) Letterheads() []string {
	return listFS(embedded, kindLetterheads, letterheadExt)
}

func listFS(fsys fs.FS, dir, ext string) []string {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
