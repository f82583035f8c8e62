package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteImagePaths converts relative <img src> paths in a content fragment
// to absolute file:// URLs under sourceDir, and returns every image source
// found (after rewriting) in document order. If sourceDir is empty, paths
// are left as they are but still collected.
//
// Paths escaping sourceDir are not rewritten.
func RewriteImagePaths(content, sourceDir string) (string, []string, error) {
	absSourceDir := ""
	if sourceDir != "" {
		var err error
		if absSourceDir, err = filepath.Abs(sourceDir); err != nil {
			return "", nil, err
		}
	}

	doc, isFragment, err := parseHTML(content)
	if err != nil {
		return "", nil, err
	}

	var images []string
	changed := rewriteImages(doc, absSourceDir, &images)
	if !changed {
		return content, images, nil
	}

	out, err := renderHTML(doc, isFragment)
	if err != nil {
		return "", nil, err
	}
	return out, images, nil
}

// ResolveAssetURL turns a letterhead or watermark image reference into a
// URL Chrome can load. URLs pass through. Relative paths are resolved
// against baseDir; absolute paths become file:// URLs.
func ResolveAssetURL(ref, baseDir string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || !isLocalPath(ref) {
		return ref
	}
	if !filepath.IsAbs(ref) {
		if baseDir == "" {
			return ref
		}
		ref = filepath.Join(baseDir, ref)
	}
	if abs, err := filepath.Abs(ref); err == nil {
		ref = abs
	}
	return pathToFileURL(ref)
}

// parseHTML parses HTML content, handling both full documents and fragments.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the tree back to a string. Fragments render their
// children only, without an <html><body> wrapper.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteImages walks the tree, rewriting and collecting img sources.
// It reports whether any attribute changed.
func rewriteImages(n *html.Node, sourceDir string, images *[]string) bool {
	changed := false
	if n.Type == html.ElementNode && n.DataAtom == atom.Img {
		for i, attr := range n.Attr {
			if attr.Key != "src" || strings.TrimSpace(attr.Val) == "" {
				continue
			}
			if sourceDir != "" && isLocalPath(attr.Val) && !filepath.IsAbs(attr.Val) {
				absPath := filepath.Join(sourceDir, attr.Val)
				if isPathUnderDir(absPath, sourceDir) {
					n.Attr[i].Val = pathToFileURL(absPath)
					changed = true
				}
			}
			*images = append(*images, n.Attr[i].Val)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteImages(c, sourceDir, images) {
			changed = true
		}
	}
	return changed
}

// isLocalPath reports whether ref is a filesystem path rather than a URL
// or an anchor.
func isLocalPath(ref string) bool {
	if ref == "" {
		return false
	}
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "//", "#"} {
		if strings.HasPrefix(strings.ToLower(ref), prefix) {
			return false
		}
	}
	return true
}

// isPathUnderDir checks if absPath is under dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
