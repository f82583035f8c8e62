package preload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Sentinel errors for probes.
var (
	ErrImageStatus      = errors.New("image request failed")
	ErrImageNotFound    = errors.New("image file not found")
	ErrUnsupportedImage = errors.New("unsupported image URL")
)

// maxDrainBytes caps how much of a response body is read before closing.
const maxDrainBytes = 64 << 10

// HTTPProber loads images the way the browser will: http(s) URLs are
// fetched, file URLs and local paths are stat'ed, data URLs always succeed.
type HTTPProber struct {
	// Client defaults to http.DefaultClient.
	Client *http.Client
}

var _ Prober = (*HTTPProber)(nil)

// Probe returns nil when the image at rawURL is reachable.
func (p *HTTPProber) Probe(ctx context.Context, rawURL string) error {
	lower := strings.ToLower(rawURL)
	switch {
	case strings.HasPrefix(lower, "data:"):
		return nil
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return p.fetch(ctx, rawURL)
	case strings.HasPrefix(lower, "file://"):
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
		}
		return statImage(u.Path)
	case strings.Contains(rawURL, "://"):
		return fmt.Errorf("%w: %s", ErrUnsupportedImage, rawURL)
	default:
		return statImage(rawURL)
	}
}

func (p *HTTPProber) fetch(ctx context.Context, rawURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: %s returned %d", ErrImageStatus, rawURL, resp.StatusCode)
	}
	return nil
}

func statImage(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrImageNotFound, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrImageNotFound, path)
	}
	return nil
}
