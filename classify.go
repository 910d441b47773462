package outline

import "strings"

// shouldInclude reports whether a visible element earns its own line.
func (c *conversion) shouldInclude(el Element) bool {
	tag := tagName(el)
	if c.ignored.has(tag) {
		return false
	}
	if c.tags.has(tag) {
		return true
	}
	return hasDirectText(el) || len(c.classes(el, true)) > 0 || c.hasMeaningfulAttr(el)
}

// hasDirectText reports whether el has a direct non-blank text child.
func hasDirectText(el Element) bool {
	for _, child := range el.ChildNodes() {
		if child.Kind() == KindText && textOf(child) != "" {
			return true
		}
	}
	return false
}

// hasMeaningfulAttr reports whether el carries a whitelisted attribute that
// is either boolean or has a non-blank value.
func (c *conversion) hasMeaningfulAttr(el Element) bool {
	for _, a := range el.Attrs() {
		if !c.attributes.has(a.Name) {
			continue
		}
		if c.booleans.has(a.Name) || strings.TrimSpace(a.Value) != "" {
			return true
		}
	}
	return false
}

// classes returns el's class tokens containing a whitelisted substring,
// in token order and original casing. With firstOnly it stops at the first
// match.
func (c *conversion) classes(el Element, firstOnly bool) []string {
	attr, ok := Attribute(el, "class")
	if !ok {
		return nil
	}

	var matches []string
	for _, token := range strings.Fields(attr) {
		lower := strings.ToLower(token)
		for _, sub := range c.classSubstrings {
			if strings.Contains(lower, sub) {
				if firstOnly {
					return []string{token}
				}
				matches = append(matches, token)
				break
			}
		}
	}
	return matches
}
