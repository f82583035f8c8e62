// Package process cleans up the headless browser after PDF rendering.
// Killing the browser's process group is best-effort; the launcher's own
// Kill remains the fallback.
package process
