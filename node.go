package outline

// Kind identifies the variant of a document node.
type Kind int

// Node kinds. Only elements and text take part in conversion; everything
// else (comments, doctypes, processing instructions) is skipped.
const (
	KindOther Kind = iota
	KindElement
	KindText
)

// Node is a read-only view of a node in a rendered document tree.
type Node interface {
	Kind() Kind
}

// Text is a text node.
type Text interface {
	Node

	// Data returns the raw character data of the node.
	Data() string
}

// Element is an element node.
//
// Implementations must be comparable (typically pointer types) because the
// focused element is identified by equality with Document.ActiveElement.
type Element interface {
	Node

	// TagName returns the tag name. Comparison is case-insensitive.
	TagName() string

	// Attrs returns the markup attributes in document order.
	Attrs() []Attr

	// ChildNodes returns all child nodes in document order.
	ChildNodes() []Node
}

// Attr is a single markup attribute.
type Attr struct {
	Name  string
	Value string
}

// Attribute returns the value of the named attribute and whether it exists.
func Attribute(el Element, name string) (string, bool) {
	for _, a := range el.Attrs() {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Style holds the computed style properties the engine consults.
// Opacity is kept as the exact computed string.
type Style struct {
	Display    string `json:"display"`
	Visibility string `json:"visibility"`
	Opacity    string `json:"opacity"`
	Position   string `json:"position"`
}

// Rect is a viewport-relative bounding box.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Viewport is the size of the layout viewport.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ControlState is the live state of a form control.
// Type is the control's lowercase type property (input elements only).
type ControlState struct {
	Type    string `json:"type"`
	Checked bool   `json:"checked"`
	Value   string `json:"value"`
}
