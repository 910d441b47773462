package outline

import "strings"

// Outline is the converted outline of one source.
type Outline struct {
	Source string
	Text   string
}

// FormatOutlines formats outlines for display or LLM context.
// Each outline is headed by its source; outlines are separated by blank lines.
// An empty outline is shown as "(empty)".
func FormatOutlines(outlines []*Outline) string {
	if len(outlines) == 0 {
		return ""
	}

	parts := make([]string, 0, len(outlines))
	for _, o := range outlines {
		text := o.Text
		if text == "" {
			text = "(empty)"
		}
		parts = append(parts, "## Outline: "+o.Source+"\n"+text)
	}

	return strings.Join(parts, "\n\n")
}

// Validate returns an error if the outline cannot be stored.
func (o *Outline) Validate() error {
	if o.Source == "" {
		return Errorf(EINVALID, "outline source required")
	}
	return nil
}
