package main

import (
	"errors"
	"strings"
	"testing"

	lawdoc "github.com/alnah/go-lawdoc"
)

func TestPoolAdapter_Release_WrongType(t *testing.T) {
	t.Parallel()

	pool := lawdoc.NewGeneratorPool(1)
	defer func() { _ = pool.Close() }()
	adapter := &poolAdapter{pool: pool}

	// Release with wrong type should panic (programmer error)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for wrong type, got none")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "unexpected type") {
			t.Errorf("panic = %v, want unexpected type message", r)
		}
	}()

	adapter.Release(&fakeRenderer{})
}

func TestPoolAdapter_Size(t *testing.T) {
	t.Parallel()

	pool := lawdoc.NewGeneratorPool(3)
	defer func() { _ = pool.Close() }()

	if got := (&poolAdapter{pool: pool}).Size(); got != 3 {
		t.Errorf("Size() = %d, want 3", got)
	}
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{n: 0},
		{n: 1},
		{n: lawdoc.MaxPoolSize},
		{n: -1, wantErr: true},
		{n: lawdoc.MaxPoolSize + 1, wantErr: true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if tt.wantErr != errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
	}
}
