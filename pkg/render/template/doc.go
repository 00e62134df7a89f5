// Package template defines the seam between component directives and the host
// template engine. Engines implement TemplateRenderer; the gotemplate
// subpackage provides a pongo2-backed implementation that understands the
// component directives as block tags.
package template
