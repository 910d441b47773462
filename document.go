package outline

import "context"

// Document is a read-only oracle over a rendered document: the tree, its
// computed style and layout, the focused element and live form state.
// Implementations must answer synchronously for every element reachable
// from Body.
type Document interface {
	// Body returns the root container, or nil for an empty document.
	Body() Element

	// ActiveElement returns the focused element, or nil if none.
	ActiveElement() Element

	// Viewport returns the layout viewport size.
	Viewport() Viewport

	// ComputedStyle returns the computed style of el.
	ComputedStyle(el Element) Style

	// BoundingClientRect returns the viewport-relative box of el.
	BoundingClientRect(el Element) Rect

	// ControlState returns the live state of a form control.
	// Non-control elements return the zero value.
	ControlState(el Element) ControlState
}

// Loader loads a rendered document for a target (URL, file path, ...).
type Loader interface {
	// Load resolves the target and returns a document ready to convert.
	// The context controls timeout and cancellation.
	Load(ctx context.Context, target string) (Document, error)

	// Close releases resources held by the loader.
	Close() error
}

// Fetcher retrieves raw markup from URLs.
type Fetcher interface {
	// Fetch retrieves the markup served at url.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Converter converts a document into its outline text.
type Converter interface {
	Convert(doc Document) string
}

// DomainLimiter rate limits loads per host.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}

// OutlineWriter persists converted outlines.
type OutlineWriter interface {
	WriteOutline(ctx context.Context, o *Outline) error
}
