package outline

// Tables holds the whitelists that drive classification.
// The zero value matches nothing; use DefaultTables for the standard set.
type Tables struct {
	// IgnoredTags never get their own line, even if also whitelisted.
	IgnoredTags []string

	// SkipTags prune their whole subtree.
	SkipTags []string

	// Tags are always included when visible.
	Tags []string

	// Attributes are emitted when their value is meaningful.
	Attributes []string

	// BooleanAttributes are emitted as bare flags whenever present.
	// Each must also appear in Attributes.
	BooleanAttributes []string

	// ClassSubstrings are matched case-insensitively against class tokens.
	ClassSubstrings []string
}

// DefaultTables returns the standard whitelists.
func DefaultTables() Tables {
	return Tables{
		IgnoredTags: []string{"html", "body"},
		SkipTags:    []string{"noscript"},
		Tags: []string{
			"nav", "main", "header", "footer", "aside",
			"article", "section",
			"a", "form", "input", "textarea", "button", "select", "option",
			"h1", "h2", "h3", "h4", "h5",
			"ul", "ol", "li", "dl", "dt", "dd",
			"caption",
			"pre", "code",
			"fieldset", "legend",
			"dialog", "details", "summary",
			"iframe", "br", "hr",
		},
		Attributes: []string{
			"href", "target", "download",
			"action", "method", "type", "name", "value", "placeholder",
			"required", "checked", "selected",
			"aria-label", "aria-expanded", "aria-hidden", "aria-controls", "aria-current",
			"aria-describedby", "aria-disabled", "aria-haspopup", "aria-invalid",
			"aria-labelledby", "aria-live", "aria-pressed", "aria-required", "aria-selected",
			"aria-checked", "aria-valuenow", "aria-valuemin", "aria-valuemax",
			"role", "title", "alt",
			"disabled", "readonly", "focused",
			"data-testid",
		},
		BooleanAttributes: []string{
			"checked", "selected", "disabled", "readonly", "required", "focused",
		},
		ClassSubstrings: []string{
			"up", "down", "left", "right", "arrow", "caret", "chevron", "star",
			"increase", "decrease", "plus", "minus", "expand", "collapse", "open", "close",
			"success", "error", "warning", "valid", "invalid",
			"active", "inactive", "enabled", "disabled", "next", "prev", "previous", "first", "last",
		},
	}
}

// stringSet is an immutable set of strings.
type stringSet map[string]struct{}

func newStringSet(values []string) stringSet {
	s := make(stringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s stringSet) has(v string) bool {
	_, ok := s[v]
	return ok
}
