package goquery

import (
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/fwojciec/outline"
	"golang.org/x/net/html"
)

// lineHeight is the height given to boxes without an explicit size.
const lineHeight = 16

// hiddenTags are not rendered by the user-agent stylesheet.
var hiddenTags = map[string]bool{
	"head": true, "title": true, "meta": true, "link": true, "base": true,
	"script": true, "style": true, "template": true,
}

// inlineTags default to inline display.
var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "button": true, "code": true, "em": true,
	"i": true, "img": true, "input": true, "label": true, "select": true,
	"small": true, "span": true, "strong": true, "sub": true, "sup": true,
	"textarea": true, "u": true,
}

// resolveStyle approximates the computed style and bounding box of n.
// Only visibility is inherited from the parent.
func resolveStyle(n *html.Node, parent *outline.Style, viewport outline.Viewport) (outline.Style, outline.Rect) {
	style := outline.Style{
		Display:    "block",
		Visibility: "visible",
		Opacity:    "1",
		Position:   "static",
	}
	if inlineTags[n.Data] {
		style.Display = "inline"
	}
	if parent != nil {
		style.Visibility = parent.Visibility
	}
	if hiddenTags[n.Data] || hasAttr(n, "hidden") {
		style.Display = "none"
	}
	if n.Data == "input" && strings.EqualFold(attr(n, "type"), "hidden") {
		style.Display = "none"
	}

	rect := outline.Rect{Width: viewport.Width, Height: lineHeight}

	for prop, value := range inlineDeclarations(attr(n, "style")) {
		switch prop {
		case "display", "visibility", "position":
			setKeyword(&style, prop, value)
		case "opacity":
			if v, ok := parseOpacity(value); ok {
				style.Opacity = v
			}
		case "left":
			if v, ok := parsePx(value); ok {
				rect.Left = v
			}
		case "top":
			if v, ok := parsePx(value); ok {
				rect.Top = v
			}
		case "width":
			if v, ok := parsePx(value); ok {
				rect.Width = v
			}
		case "height":
			if v, ok := parsePx(value); ok {
				rect.Height = v
			}
		}
	}

	if style.Position != "absolute" && style.Position != "fixed" {
		rect.Left, rect.Top = 0, 0
	}
	if style.Display == "none" {
		rect = outline.Rect{}
	}
	return style, rect
}

// inlineDeclarations parses a style attribute into lowercase
// property/value pairs. Later declarations win. Malformed input yields
// no declarations.
func inlineDeclarations(css string) map[string]string {
	if strings.TrimSpace(css) == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(css)
	if err != nil {
		return nil
	}
	out := make(map[string]string, len(decls))
	for _, d := range decls {
		out[strings.ToLower(strings.TrimSpace(d.Property))] = strings.ToLower(strings.TrimSpace(d.Value))
	}
	return out
}

func setKeyword(style *outline.Style, prop, value string) {
	if value == "" || value == "inherit" || value == "initial" || value == "unset" {
		return
	}
	switch prop {
	case "display":
		style.Display = value
	case "visibility":
		style.Visibility = value
	case "position":
		style.Position = value
	}
}

// parseOpacity normalizes an opacity value the way computed style
// serializes it, so "0.0" and "0%" both become "0".
func parseOpacity(value string) (string, bool) {
	scale := 1.0
	if strings.HasSuffix(value, "%") {
		value = strings.TrimSuffix(value, "%")
		scale = 100
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", false
	}
	f /= scale
	f = min(max(f, 0), 1)
	return strconv.FormatFloat(f, 'f', -1, 64), true
}

// parsePx parses a pixel length. Unitless zero is accepted.
func parsePx(value string) (float64, bool) {
	if value == "0" {
		return 0, true
	}
	if !strings.HasSuffix(value, "px") {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// controlState derives form control state from markup.
func controlState(n *html.Node) outline.ControlState {
	switch n.Data {
	case "input":
		typ := strings.ToLower(attr(n, "type"))
		if typ == "" {
			typ = "text"
		}
		value, ok := attrOK(n, "value")
		if !ok && (typ == "checkbox" || typ == "radio") {
			value = "on"
		}
		return outline.ControlState{Type: typ, Checked: hasAttr(n, "checked"), Value: value}
	case "textarea":
		return outline.ControlState{Type: "textarea", Value: textContent(n)}
	case "select":
		return outline.ControlState{Type: "select-one", Value: selectedValue(n)}
	}
	return outline.ControlState{}
}

// selectedValue returns the value of the first selected option, falling
// back to the first option.
func selectedValue(n *html.Node) string {
	var first, selected *html.Node
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil && selected == nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.Data == "option" {
				if first == nil {
					first = c
				}
				if hasAttr(c, "selected") {
					selected = c
				}
				continue
			}
			walk(c)
		}
	}
	walk(n)

	opt := selected
	if opt == nil {
		opt = first
	}
	if opt == nil {
		return ""
	}
	if v, ok := attrOK(opt, "value"); ok {
		return v
	}
	return strings.Join(strings.Fields(textContent(opt)), " ")
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	v, _ := attrOK(n, key)
	return v
}

func attrOK(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attrOK(n, key)
	return ok
}
