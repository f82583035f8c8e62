package assets

// Asset kinds, which double as directory names under a base path.
const (
	kindStyles      = "styles"
	kindLetterheads = "letterheads"

	styleExt      = ".css"
	letterheadExt = ".yaml"
)

// AssetLoader defines the contract for loading stylesheets and letterhead presets.
type AssetLoader interface {
	// LoadStyle loads a CSS stylesheet by name (without .css).
	LoadStyle(name string) (string, error)

	// LoadLetterhead loads a letterhead preset's YAML by name (without .yaml).
	LoadLetterhead(name string) ([]byte, error)

	// Styles lists available stylesheet names, sorted.
	Styles() []string

	// Letterheads lists available preset names, sorted.
	Letterheads() []string
}
