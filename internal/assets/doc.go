// Package assets provides contract stylesheets and letterhead presets.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles and presets (go:embed)
//	    ├── FilesystemLoader  - a custom directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css       # contract stylesheet (e.g. contract.css)
//	└── letterheads/
//	    └── {name}.yaml      # letterhead preset (e.g. classic.yaml)
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
