// Package preload gates printing on image availability.
//
// Start launches one probe per distinct image URL and returns a Future that
// completes when every probe has finished. A probe's failure is recorded on
// its Result and never aborts the others, so a broken link cannot hold the
// gate closed. There is no built-in timeout: callers bound the wait with
// the context they pass to Start or Wait.
package preload

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-lawdoc/internal/letterhead"
)

// DefaultConcurrency bounds in-flight probes per Future.
const DefaultConcurrency = 8

// Prober checks that one image can be loaded.
type Prober interface {
	Probe(ctx context.Context, url string) error
}

// ProberFunc adapts a function to Prober.
type ProberFunc func(ctx context.Context, url string) error

// Probe calls f.
func (f ProberFunc) Probe(ctx context.Context, url string) error { return f(ctx, url) }

// Result is the outcome of one probe. Err is nil on success.
type Result struct {
	URL      string
	Err      error
	Duration time.Duration
}

// OK reports whether the image loaded.
func (r Result) OK() bool { return r.Err == nil }

// Future is the combined readiness of a set of probes.
type Future struct {
	done    chan struct{}
	mu      sync.Mutex
	results []Result
}

// Start probes each distinct non-empty URL concurrently. Cancelling ctx
// discards pending probes; they complete with the context error.
// A nil prober or an empty URL set yields an already-ready Future.
func Start(ctx context.Context, p Prober, urls ...string) *Future {
	urls = letterhead.Distinct(urls...)
	f := &Future{
		done:    make(chan struct{}),
		results: make([]Result, len(urls)),
	}
	if p == nil || len(urls) == 0 {
		f.results = f.results[:0]
		close(f.done)
		return f
	}

	g := new(errgroup.Group)
	g.SetLimit(DefaultConcurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				start := time.Now()
				err := ctx.Err()
				if err == nil {
					err = p.Probe(ctx, u)
				}
				f.mu.Lock()
				f.results[i] = Result{URL: u, Err: err, Duration: time.Since(start)}
				f.mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
		close(f.done)
	}()

	return f
}

// Done is closed once every probe has completed.
func (f *Future) Done() <-chan struct{} { return f.done }

// Ready reports whether every probe has completed, successfully or not.
func (f *Future) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the Future is ready or ctx is done. Results are in the
// order the URLs were given. The only error is ctx's.
func (f *Future) Wait(ctx context.Context) ([]Result, error) {
	select {
	case <-f.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Result, len(f.results))
	copy(out, f.results)
	return out, nil
}

// Failed returns the results whose probe failed.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}
