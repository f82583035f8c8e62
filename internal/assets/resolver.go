package assets

import "sort"

// AssetResolver tries a custom loader first and falls back to the embedded
// assets when the custom directory lacks the requested asset.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath means
// embedded assets only.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a stylesheet, custom first.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom != nil {
		content, err := r.custom.LoadStyle(name)
		if err == nil || !IsNotFound(err) {
			return content, err
		}
	}
	return r.embedded.LoadStyle(name)
}

// LoadLetterhead loads a letterhead preset, custom first.
func (r *AssetResolver) LoadLetterhead(name string) ([]byte, error) {
	if r.custom != nil {
		content, err := r.custom.LoadLetterhead(name)
		if err == nil || !IsNotFound(err) {
			return content, err
		}
	}
	return r.embedded.LoadLetterhead(name)
}

// Styles lists the union of custom and embedded stylesheet names.
func (r *AssetResolver) Styles() []string {
	if r.custom == nil {
		return r.embedded.Styles()
	}
	return union(r.custom.Styles(), r.embedded.Styles())
}

// Letterheads lists the union of custom and embedded preset names.
func (r *AssetResolver) Letterheads() []string {
	if r.custom == nil {
		return r.embedded.Letterheads()
	}
	return union(r.custom.Letterheads(), r.embedded.Letterheads())
}

// HasCustomLoader returns true if a custom asset directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

func union(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, n := range list {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

var _ AssetLoader = (*AssetResolver)(nil)
