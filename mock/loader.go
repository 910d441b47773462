package mock

import (
	"context"

	"github.com/fwojciec/outline"
)

var _ outline.Loader = (*Loader)(nil)

// Loader is a mock implementation of outline.Loader.
type Loader struct {
	LoadFn  func(ctx context.Context, target string) (outline.Document, error)
	CloseFn func() error
}

func (l *Loader) Load(ctx context.Context, target string) (outline.Document, error) {
	return l.LoadFn(ctx, target)
}

func (l *Loader) Close() error {
	return l.CloseFn()
}
