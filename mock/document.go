package mock

import "github.com/fwojciec/outline"

// Compile-time interface verification.
var (
	_ outline.Document = (*Document)(nil)
	_ outline.Element  = (*Element)(nil)
	_ outline.Text     = (*Text)(nil)
	_ outline.Node     = (*Comment)(nil)
)

// Document is a mock implementation of outline.Document.
type Document struct {
	BodyFn               func() outline.Element
	ActiveElementFn      func() outline.Element
	ViewportFn           func() outline.Viewport
	ComputedStyleFn      func(el outline.Element) outline.Style
	BoundingClientRectFn func(el outline.Element) outline.Rect
	ControlStateFn       func(el outline.Element) outline.ControlState
}

// NewDocument returns a Document rooted at body that answers style, layout
// and control queries from the fields of each *Element. No element is
// focused and the viewport is 1280x720.
func NewDocument(body *Element) *Document {
	return &Document{
		BodyFn:          func() outline.Element { return body },
		ActiveElementFn: func() outline.Element { return nil },
		ViewportFn: func() outline.Viewport {
			return outline.Viewport{Width: 1280, Height: 720}
		},
		ComputedStyleFn: func(el outline.Element) outline.Style {
			return el.(*Element).Style
		},
		BoundingClientRectFn: func(el outline.Element) outline.Rect {
			return el.(*Element).Rect
		},
		ControlStateFn: func(el outline.Element) outline.ControlState {
			return el.(*Element).Control
		},
	}
}

func (d *Document) Body() outline.Element {
	return d.BodyFn()
}

func (d *Document) ActiveElement() outline.Element {
	return d.ActiveElementFn()
}

func (d *Document) Viewport() outline.Viewport {
	return d.ViewportFn()
}

func (d *Document) ComputedStyle(el outline.Element) outline.Style {
	return d.ComputedStyleFn(el)
}

func (d *Document) BoundingClientRect(el outline.Element) outline.Rect {
	return d.BoundingClientRectFn(el)
}

func (d *Document) ControlState(el outline.Element) outline.ControlState {
	return d.ControlStateFn(el)
}

// Element is an in-memory outline.Element carrying its own style, layout
// and control state for use with NewDocument.
type Element struct {
	Tag        string
	Attributes []outline.Attr
	Children   []outline.Node
	Style      outline.Style
	Rect       outline.Rect
	Control    outline.ControlState
}

func (e *Element) Kind() outline.Kind         { return outline.KindElement }
func (e *Element) TagName() string            { return e.Tag }
func (e *Element) Attrs() []outline.Attr      { return e.Attributes }
func (e *Element) ChildNodes() []outline.Node { return e.Children }

// Text is an in-memory outline.Text.
type Text string

func (t *Text) Kind() outline.Kind { return outline.KindText }
func (t *Text) Data() string       { return string(*t) }

// NewText returns a text node holding s.
func NewText(s string) *Text {
	t := Text(s)
	return &t
}

// Comment is a node that is neither element nor text.
type Comment struct{}

func (c *Comment) Kind() outline.Kind { return outline.KindOther }
