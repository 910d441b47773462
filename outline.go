// Package outline converts a rendered document tree into a compact, indented
// text outline of its interactive and semantic structure. The outline is
// meant for consumers such as automation agents that need a condensed view
// of a page without full markup noise.
//
// This package contains domain types, interfaces and the conversion engine
// following Ben Johnson's Standard Package Layout. Document sources live in
// subdirectories named after their primary dependency (e.g., rod/, goquery/).
package outline
