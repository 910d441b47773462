package outline

// isVisible reports whether n is rendered. The root container is always
// visible. A 0x0 element still counts as visible when one of its direct
// element children is absolutely or fixed positioned and itself visible;
// the lookahead is deliberately one level deep.
func (c *conversion) isVisible(n Node) bool {
	el, ok := n.(Element)
	if !ok || n.Kind() != KindElement {
		return true
	}
	if el == c.root {
		return true
	}

	style := c.doc.ComputedStyle(el)
	rect := c.doc.BoundingClientRect(el)
	zeroSize := rect.Width == 0 && rect.Height == 0

	if zeroSize {
		for _, child := range el.ChildNodes() {
			childEl, ok := child.(Element)
			if !ok || child.Kind() != KindElement {
				continue
			}
			if isPositioned(c.doc.ComputedStyle(childEl)) && c.isVisible(childEl) {
				return true
			}
		}
	}

	if style.Display == "none" || style.Visibility == "hidden" {
		return false
	}
	if v, ok := Attribute(el, "aria-hidden"); ok && v == "true" {
		return false
	}
	if zeroSize || style.Opacity == "0" {
		return false
	}
	if isPositioned(style) && c.offscreen(rect) {
		return false
	}
	return true
}

// offscreen reports whether rect lies entirely outside the viewport.
func (c *conversion) offscreen(rect Rect) bool {
	return rect.Left+rect.Width < 0 ||
		rect.Top+rect.Height < 0 ||
		rect.Left > c.viewport.Width ||
		rect.Top > c.viewport.Height
}

func isPositioned(s Style) bool {
	return s.Position == "absolute" || s.Position == "fixed"
}
