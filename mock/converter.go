package mock

import "github.com/fwojciec/outline"

var _ outline.Converter = (*Converter)(nil)

// Converter is a mock implementation of outline.Converter.
type Converter struct {
	ConvertFn func(doc outline.Document) string
}

func (c *Converter) Convert(doc outline.Document) string {
	return c.ConvertFn(doc)
}
