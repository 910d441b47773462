package rod

import (
	"encoding/json"

	"github.com/fwojciec/outline"
)

// snapshotJS captures the body subtree together with computed style,
// bounding boxes, live control state and the focused element in one round
// trip. It returns a JSON string decoded by DecodeSnapshot.
const snapshotJS = `() => {
	const active = document.activeElement;
	const walk = (node) => {
		if (node.nodeType === Node.TEXT_NODE) {
			return {k: "t", d: node.data};
		}
		if (node.nodeType !== Node.ELEMENT_NODE) {
			return {k: "o"};
		}
		const s = window.getComputedStyle(node);
		const r = node.getBoundingClientRect();
		const tag = node.tagName.toLowerCase();
		const out = {
			k: "e",
			tag: tag,
			attrs: Array.from(node.attributes, (a) => [a.name, a.value]),
			style: {display: s.display, visibility: s.visibility, opacity: s.opacity, position: s.position},
			rect: {left: r.left, top: r.top, width: r.width, height: r.height},
			children: Array.from(node.childNodes, walk),
		};
		if (node === active && node !== document.body) {
			out.active = true;
		}
		if (tag === "input" || tag === "textarea" || tag === "select") {
			out.control = {
				type: String(node.type || "").toLowerCase(),
				checked: !!node.checked,
				value: node.value == null ? "" : String(node.value),
			};
		}
		return out;
	};
	return JSON.stringify({
		viewport: {width: window.innerWidth, height: window.innerHeight},
		body: document.body ? walk(document.body) : null,
	});
}`

type snapshot struct {
	Viewport outline.Viewport `json:"viewport"`
	Body     *snapshotNode    `json:"body"`
}

type snapshotNode struct {
	Kind     string               `json:"k"`
	Data     string               `json:"d"`
	Tag      string               `json:"tag"`
	Attrs    [][2]string          `json:"attrs"`
	Style    outline.Style        `json:"style"`
	Rect     outline.Rect         `json:"rect"`
	Control  outline.ControlState `json:"control"`
	Active   bool                 `json:"active"`
	Children []*snapshotNode      `json:"children"`
}

// Ensure Document implements outline.Document at compile time.
var _ outline.Document = (*Document)(nil)

// Document is an immutable snapshot of a rendered page. It stays valid
// after the page it was captured from is closed.
type Document struct {
	body     *element
	active   *element
	viewport outline.Viewport
}

// DecodeSnapshot builds a Document from the JSON produced by the snapshot
// script.
func DecodeSnapshot(data []byte) (*Document, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, outline.Errorf(outline.EINVALID, "invalid page snapshot: %v", err)
	}

	doc := &Document{viewport: snap.Viewport}
	if snap.Body != nil && snap.Body.Kind == "e" {
		doc.body = doc.build(snap.Body)
	}
	return doc, nil
}

func (d *Document) build(n *snapshotNode) *element {
	e := &element{
		tag:     n.Tag,
		attrs:   make([]outline.Attr, len(n.Attrs)),
		style:   n.Style,
		rect:    n.Rect,
		control: n.Control,
	}
	for i, a := range n.Attrs {
		e.attrs[i] = outline.Attr{Name: a[0], Value: a[1]}
	}
	if n.Active && d.active == nil {
		d.active = e
	}

	e.children = make([]outline.Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		switch c.Kind {
		case "e":
			e.children = append(e.children, d.build(c))
		case "t":
			e.children = append(e.children, &text{data: c.Data})
		default:
			e.children = append(e.children, &other{})
		}
	}
	return e
}

// Body returns the body element, or nil if the page had none.
func (d *Document) Body() outline.Element {
	if d.body == nil {
		return nil
	}
	return d.body
}

// ActiveElement returns the element that had focus, or nil.
func (d *Document) ActiveElement() outline.Element {
	if d.active == nil {
		return nil
	}
	return d.active
}

// Viewport returns the page's inner window size.
func (d *Document) Viewport() outline.Viewport {
	return d.viewport
}

// ComputedStyle returns the captured computed style.
func (d *Document) ComputedStyle(el outline.Element) outline.Style {
	if e, ok := el.(*element); ok {
		return e.style
	}
	return outline.Style{}
}

// BoundingClientRect returns the captured bounding box.
func (d *Document) BoundingClientRect(el outline.Element) outline.Rect {
	if e, ok := el.(*element); ok {
		return e.rect
	}
	return outline.Rect{}
}

// ControlState returns the captured live control state.
func (d *Document) ControlState(el outline.Element) outline.ControlState {
	if e, ok := el.(*element); ok {
		return e.control
	}
	return outline.ControlState{}
}

type element struct {
	tag      string
	attrs    []outline.Attr
	children []outline.Node
	style    outline.Style
	rect     outline.Rect
	control  outline.ControlState
}

func (e *element) Kind() outline.Kind         { return outline.KindElement }
func (e *element) TagName() string            { return e.tag }
func (e *element) Attrs() []outline.Attr      { return e.attrs }
func (e *element) ChildNodes() []outline.Node { return e.children }

type text struct {
	data string
}

func (t *text) Kind() outline.Kind { return outline.KindText }
func (t *text) Data() string       { return t.data }

type other struct{}

func (o *other) Kind() outline.Kind { return outline.KindOther }
