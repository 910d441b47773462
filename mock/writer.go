package mock

import (
	"context"

	"github.com/fwojciec/outline"
)

var _ outline.OutlineWriter = (*OutlineWriter)(nil)

// OutlineWriter is a mock implementation of outline.OutlineWriter.
type OutlineWriter struct {
	WriteOutlineFn func(ctx context.Context, o *outline.Outline) error
}

func (w *OutlineWriter) WriteOutline(ctx context.Context, o *outline.Outline) error {
	return w.WriteOutlineFn(ctx, o)
}
