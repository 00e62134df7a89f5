// Package element builds the opening and closing tag strings of a single HTML
// element. Attributes render in insertion order; values are written verbatim,
// so callers encode anything unsafe before setting it.
package element
