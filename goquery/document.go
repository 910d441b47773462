// Package goquery provides a static outline.Document parsed from markup.
// Without a layout engine, style comes from user-agent defaults and inline
// style attributes, and geometry is approximated from inline pixel sizes.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/outline"
	"golang.org/x/net/html"
)

// DefaultViewport is the viewport used when none is configured.
var DefaultViewport = outline.Viewport{Width: 1280, Height: 720}

// Ensure Document implements outline.Document at compile time.
var _ outline.Document = (*Document)(nil)

// Document is an immutable static document.
type Document struct {
	body     *element
	active   *element
	viewport outline.Viewport
}

// Option configures parsing.
type Option func(*config)

type config struct {
	viewport outline.Viewport
	focus    string
}

// WithViewport sets the viewport used for off-screen tests and for the
// width of unsized boxes.
func WithViewport(v outline.Viewport) Option {
	return func(c *config) {
		c.viewport = v
	}
}

// WithFocus marks the first element matching the CSS selector as focused.
// Without it the first element carrying autofocus is focused, if any.
func WithFocus(selector string) Option {
	return func(c *config) {
		c.focus = selector
	}
}

// Parse reads markup from r and builds a Document.
// Returns ENOTFOUND if a focus selector is configured but matches nothing
// inside the body.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	cfg := config{viewport: DefaultViewport}
	for _, opt := range opts {
		opt(&cfg)
	}

	gq, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, outline.Errorf(outline.EINVALID, "failed to parse HTML: %v", err)
	}

	doc := &Document{viewport: cfg.viewport}

	bodySel := gq.Find("body").First()
	if bodySel.Length() == 0 {
		return doc, nil
	}

	b := &builder{viewport: cfg.viewport, index: make(map[*html.Node]*element)}
	doc.body = b.build(bodySel.Get(0), nil)

	focusSel := "[autofocus]"
	if cfg.focus != "" {
		focusSel = cfg.focus
	}
	doc.active = b.first(bodySel.Find(focusSel))
	if doc.active == nil && cfg.focus != "" {
		return nil, outline.Errorf(outline.ENOTFOUND, "no element matches focus selector %q", cfg.focus)
	}

	return doc, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(markup string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(markup), opts...)
}

// Body returns the body element, or nil if the markup had none.
func (d *Document) Body() outline.Element {
	if d.body == nil {
		return nil
	}
	return d.body
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() outline.Element {
	if d.active == nil {
		return nil
	}
	return d.active
}

// Viewport returns the configured viewport.
func (d *Document) Viewport() outline.Viewport {
	return d.viewport
}

// ComputedStyle returns the style resolved at parse time.
func (d *Document) ComputedStyle(el outline.Element) outline.Style {
	if e, ok := el.(*element); ok {
		return e.style
	}
	return outline.Style{}
}

// BoundingClientRect returns the approximated box resolved at parse time.
func (d *Document) BoundingClientRect(el outline.Element) outline.Rect {
	if e, ok := el.(*element); ok {
		return e.rect
	}
	return outline.Rect{}
}

// ControlState returns the form state implied by the markup.
func (d *Document) ControlState(el outline.Element) outline.ControlState {
	if e, ok := el.(*element); ok {
		return e.control
	}
	return outline.ControlState{}
}

// element wraps an element node with its resolved style and layout.
type element struct {
	n        *html.Node
	attrs    []outline.Attr
	children []outline.Node
	style    outline.Style
	rect     outline.Rect
	control  outline.ControlState
}

func (e *element) Kind() outline.Kind         { return outline.KindElement }
func (e *element) TagName() string            { return e.n.Data }
func (e *element) Attrs() []outline.Attr      { return e.attrs }
func (e *element) ChildNodes() []outline.Node { return e.children }

type text struct {
	data string
}

func (t *text) Kind() outline.Kind { return outline.KindText }
func (t *text) Data() string       { return t.data }

// other stands for comments, doctypes and other non-rendered nodes.
type other struct{}

func (o *other) Kind() outline.Kind { return outline.KindOther }

// builder converts the parsed tree into immutable wrappers.
type builder struct {
	viewport outline.Viewport
	index    map[*html.Node]*element
}

func (b *builder) build(n *html.Node, parent *element) *element {
	e := &element{n: n}
	for _, a := range n.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		e.attrs = append(e.attrs, outline.Attr{Name: name, Value: a.Val})
	}

	var inherited *outline.Style
	if parent != nil {
		inherited = &parent.style
	}
	e.style, e.rect = resolveStyle(n, inherited, b.viewport)
	e.control = controlState(n)
	b.index[n] = e

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			e.children = append(e.children, b.build(c, e))
		case html.TextNode:
			e.children = append(e.children, &text{data: c.Data})
		default:
			e.children = append(e.children, &other{})
		}
	}
	return e
}

// first returns the wrapper for the first node in sel that lies inside the
// built tree.
func (b *builder) first(sel *goquery.Selection) *element {
	for _, n := range sel.Nodes {
		if e, ok := b.index[n]; ok {
			return e
		}
	}
	return nil
}
