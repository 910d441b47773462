package outline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxAttrValueLength is the longest attribute value copied into an outline.
const MaxAttrValueLength = 150

// ClassifiedAttr is one annotation on an outline line. Flag attributes are
// rendered bare; others as name="value".
type ClassifiedAttr struct {
	Name  string
	Value string
	Flag  bool
}

// ClassifiedAttrs is an ordered set of annotations keyed by name.
type ClassifiedAttrs []ClassifiedAttr

// set assigns a by name. An existing entry is overwritten in place so it
// keeps its original position.
func (attrs *ClassifiedAttrs) set(a ClassifiedAttr) {
	for i := range *attrs {
		if (*attrs)[i].Name == a.Name {
			(*attrs)[i] = a
			return
		}
	}
	*attrs = append(*attrs, a)
}

// String renders the annotations space-separated, without parentheses.
func (attrs ClassifiedAttrs) String() string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		if a.Flag {
			parts[i] = a.Name
		} else {
			parts[i] = a.Name + `="` + a.Value + `"`
		}
	}
	return strings.Join(parts, " ")
}

// annotate builds the annotations for an included element: whitelisted
// markup attributes in document order, then the live control value, then
// the focus flag.
func (c *conversion) annotate(el Element) ClassifiedAttrs {
	var attrs ClassifiedAttrs
	tag := tagName(el)

	for _, a := range el.Attrs() {
		if !c.attributes.has(a.Name) {
			continue
		}
		if a.Name == "href" && (tag == "img" || tag == "image") {
			continue
		}
		if c.booleans.has(a.Name) {
			attrs.set(ClassifiedAttr{Name: a.Name, Flag: true})
		} else if meaningfulValue(a.Value) {
			attrs.set(ClassifiedAttr{Name: a.Name, Value: a.Value})
		}
	}

	switch tag {
	case "input", "textarea", "select":
		state := c.doc.ControlState(el)
		if tag == "input" && isToggle(state.Type) {
			if state.Checked {
				attrs.set(ClassifiedAttr{Name: "checked", Flag: true})
			}
		} else if strings.TrimSpace(state.Value) != "" {
			attrs.set(ClassifiedAttr{Name: "value", Value: state.Value})
		}
	}

	if c.active != nil && el == c.active {
		attrs.set(ClassifiedAttr{Name: "focused", Flag: true})
	}

	return attrs
}

// meaningfulValue reports whether a non-boolean attribute value is worth
// copying: non-blank, bounded in length, and not an embedded data or
// javascript URI.
func meaningfulValue(v string) bool {
	if strings.TrimSpace(v) == "" {
		return false
	}
	if utf8.RuneCountInString(v) > MaxAttrValueLength {
		return false
	}
	if strings.HasPrefix(v, "data:") {
		return false
	}
	trimmed := strings.ToLower(strings.TrimLeftFunc(v, unicode.IsSpace))
	return !strings.HasPrefix(trimmed, "javascript:")
}

func isToggle(inputType string) bool {
	t := strings.ToLower(inputType)
	return t == "checkbox" || t == "radio"
}
