package outline

import (
	"strings"
)

// Ensure Outliner implements Converter at compile time.
var _ Converter = (*Outliner)(nil)

// Outliner converts documents into outlines.
// The whitelists are fixed at construction. Outliner holds no mutable state
// and is safe for concurrent use as long as each Document is not mutated
// during a conversion.
type Outliner struct {
	ignored         stringSet
	skip            stringSet
	tags            stringSet
	attributes      stringSet
	booleans        stringSet
	classSubstrings []string
}

// Option configures an Outliner.
type Option func(*Tables)

// WithTables replaces the default whitelists.
func WithTables(t Tables) Option {
	return func(dst *Tables) {
		*dst = t
	}
}

// NewOutliner creates an Outliner using DefaultTables unless overridden.
func NewOutliner(opts ...Option) *Outliner {
	t := DefaultTables()
	for _, opt := range opts {
		opt(&t)
	}

	substrings := make([]string, len(t.ClassSubstrings))
	for i, s := range t.ClassSubstrings {
		substrings[i] = strings.ToLower(s)
	}

	return &Outliner{
		ignored:         newStringSet(t.IgnoredTags),
		skip:            newStringSet(t.SkipTags),
		tags:            newStringSet(t.Tags),
		attributes:      newStringSet(t.Attributes),
		booleans:        newStringSet(t.BooleanAttributes),
		classSubstrings: substrings,
	}
}

// Convert returns the outline of doc's body with surrounding whitespace
// trimmed. The body itself never gets a line of its own.
func (o *Outliner) Convert(doc Document) string {
	body := doc.Body()
	if body == nil {
		return ""
	}

	c := &conversion{
		Outliner: o,
		doc:      doc,
		root:     body,
		active:   doc.ActiveElement(),
		viewport: doc.Viewport(),
	}

	var b strings.Builder
	c.writeNode(&b, body, 0)
	return strings.TrimSpace(b.String())
}

// conversion carries the per-call view of the document.
type conversion struct {
	*Outliner
	doc      Document
	root     Element
	active   Element
	viewport Viewport
}

func (c *conversion) writeNode(b *strings.Builder, n Node, depth int) {
	el, ok := n.(Element)
	if !ok || n.Kind() != KindElement {
		return
	}

	if !c.isVisible(el) {
		return
	}

	tag := tagName(el)
	if c.skip.has(tag) {
		return
	}

	if !c.shouldInclude(el) {
		for _, child := range el.ChildNodes() {
			if child.Kind() == KindElement {
				c.writeNode(b, child, depth)
			}
		}
		return
	}

	writeIndent(b, depth)
	b.WriteString(tag)
	if attrs := c.annotate(el); len(attrs) > 0 {
		b.WriteByte('(')
		b.WriteString(attrs.String())
		b.WriteByte(')')
	}
	if classes := c.classes(el, false); len(classes) > 0 {
		b.WriteByte('.')
		b.WriteString(strings.Join(classes, "."))
	}

	children := el.ChildNodes()
	if onlyText(children) {
		if text := joinText(children); text != "" {
			b.WriteByte(' ')
			b.WriteString(text)
		}
		b.WriteByte('\n')
		return
	}

	b.WriteByte('\n')
	var pending []string
	flush := func() {
		if len(pending) == 0 {
			return
		}
		writeIndent(b, depth+1)
		b.WriteString("| ")
		b.WriteString(strings.Join(pending, " "))
		b.WriteByte('\n')
		pending = pending[:0]
	}
	for _, child := range children {
		switch child.Kind() {
		case KindText:
			if text := textOf(child); text != "" {
				pending = append(pending, text)
			}
		case KindElement:
			flush()
			c.writeNode(b, child, depth+1)
		}
	}
	flush()
}

// onlyText reports whether every child is a text node.
func onlyText(children []Node) bool {
	for _, child := range children {
		if child.Kind() != KindText {
			return false
		}
	}
	return true
}

// joinText joins the trimmed, non-empty text of children with spaces.
func joinText(children []Node) string {
	parts := make([]string, 0, len(children))
	for _, child := range children {
		if text := textOf(child); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// textOf returns the trimmed data of a text node, or "" for anything else.
func textOf(n Node) string {
	t, ok := n.(Text)
	if !ok {
		return ""
	}
	return strings.TrimSpace(t.Data())
}

func tagName(el Element) string {
	return strings.ToLower(el.TagName())
}

func writeIndent(b *strings.Builder, depth int) {
	for range depth {
		b.WriteString("  ")
	}
}
