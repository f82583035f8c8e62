package lawdoc

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// ErrPoolClosed is returned by Acquire after Close.
var ErrPoolClosed = errors.New("generator pool is closed")

// GeneratorPool manages a pool of Generator instances for parallel processing.
// Each generator has its own browser instance, enabling true parallelism.
// Generators are created lazily on first acquire to avoid startup delay.
type GeneratorPool struct {
	size       int
	opts       []Option
	generators []*Generator
	sem        chan *Generator
	mu         sync.Mutex
	created    int
	closed     bool
}

// NewGeneratorPool creates a pool with capacity for n Generator instances,
// each built with opts. Generators are created when acquired, not at pool creation.
func NewGeneratorPool(n int, opts ...Option) *GeneratorPool {
	if n < MinPoolSize {
		n = MinPoolSize
	}

	return &GeneratorPool{
		size:       n,
		opts:       opts,
		generators: make([]*Generator, 0, n),
		sem:        make(chan *Generator, n),
	}
}

// Acquire gets a generator from the pool, creating one if needed.
// Blocks until one is released or ctx is done.
func (p *GeneratorPool) Acquire(ctx context.Context) (*Generator, error) {
	// Try to get an existing generator (non-blocking)
	select {
	case g, ok := <-p.sem:
		if !ok {
			return nil, ErrPoolClosed
		}
		return g, nil
	default:
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create new generator outside the lock
		g, err := NewGenerator(p.opts...)
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}

		p.mu.Lock()
		p.generators = append(p.generators, g)
		p.mu.Unlock()

		return g, nil
	}
	p.mu.Unlock()

	// All generators created, wait for one to be released
	select {
	case g, ok := <-p.sem:
		if !ok {
			return nil, ErrPoolClosed
		}
		return g, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns a generator to the pool.
// The lock is held while sending so Close cannot close the channel mid-send;
// the channel has room for every generator, so the send never blocks.
func (p *GeneratorPool) Release(g *Generator) {
	if g == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.sem <- g
}

// Close releases all browser resources.
// Returns an aggregated error if multiple generators fail to close.
func (p *GeneratorPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	generators := p.generators
	p.mu.Unlock()

	var errs []error
	for _, g := range generators {
		if err := g.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *GeneratorPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the optimal pool size.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
