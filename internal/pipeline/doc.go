// Package pipeline turns substituted contract content and a compiled layout
// into one standalone print-ready HTML document.
//
// Stages, in order:
//   - content conversion (HTML pass-through, Markdown via goldmark, plain text)
//   - relative image path rewriting and image collection
//   - header and footer band construction
//   - document assembly with inline @page CSS
//   - stylesheet injection
//
// PDF rendering is handled by the root lawdoc package using headless Chrome.
package pipeline
