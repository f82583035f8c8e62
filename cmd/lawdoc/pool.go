package main

import (
	"context"
	"fmt"

	lawdoc "github.com/alnah/go-lawdoc"
)

// Renderer is the interface for document generation.
type Renderer interface {
	Generate(ctx context.Context, input lawdoc.Input) (*lawdoc.Result, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*lawdoc.Generator)(nil)

// Pool abstracts generator pool operations for testability.
type Pool interface {
	Acquire(ctx context.Context) (Renderer, error)
	Release(Renderer)
	Size() int
}

// poolAdapter exposes a *lawdoc.GeneratorPool as a Pool.
type poolAdapter struct {
	pool *lawdoc.GeneratorPool
}

var _ Pool = (*poolAdapter)(nil)

func (a *poolAdapter) Acquire(ctx context.Context) (Renderer, error) {
	g, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Release panics when r did not come from Acquire: that is a programmer error.
func (a *poolAdapter) Release(r Renderer) {
	g, ok := r.(*lawdoc.Generator)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", r))
	}
	a.pool.Release(g)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

// validateWorkers checks the --workers flag.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > lawdoc.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, lawdoc.MaxPoolSize)
	}
	return nil
}
