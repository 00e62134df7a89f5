// Package directive pairs component factories with the markup that template
// directives place around them. A directive's start output is the component
// start tag followed by an inner wrapper element; its end output closes both.
// FuncMap exposes a directive Set to html/template.
package directive
