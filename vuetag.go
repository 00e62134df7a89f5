// Package vuetag renders the start and end tags of Vue-style dynamic
// components from Go templates. It is a facade over the pkg/ packages:
//
//	start, err := vuetag.Start("user-card", map[string]any{"active": true})
//	// <component is="user-card" :active="true">
//	end := vuetag.End()
//	// </component>
package vuetag

import (
	"html/template"

	"github.com/goliatone/go-vuetag/pkg/component"
	"github.com/goliatone/go-vuetag/pkg/directive"
	"github.com/goliatone/go-vuetag/pkg/render/template/gotemplate"
)

var (
	basicFactory  = component.New(component.Basic())
	inlineFactory = component.New(component.Inline())
)

// Start renders a basic component start tag. The optional argument holds the
// attributes; see component.AttrsOf for accepted shapes.
func Start(name string, args ...any) (string, error) {
	return basicFactory.Start(name, args...)
}

// End renders the basic component end tag.
func End() string {
	return basicFactory.End()
}

// StartInline renders an inline-template component start tag.
func StartInline(name string, args ...any) (string, error) {
	return inlineFactory.Start(name, args...)
}

// EndInline renders the inline-template component end tag.
func EndInline() string {
	return inlineFactory.End()
}

// Directives returns the built-in "vue" and "vueinline" directives.
func Directives() *directive.Set {
	return directive.Defaults()
}

// FuncMap returns html/template functions for the built-in directives. Their
// output is not escaped by html/template; see directive.FuncMap.
func FuncMap() template.FuncMap {
	return directive.FuncMap(directive.Defaults())
}

// NewEngine builds a pongo2 engine with the built-in directives registered as
// block tags unless opts supply another set.
func NewEngine(opts ...gotemplate.Option) (*gotemplate.Engine, error) {
	return gotemplate.New(opts...)
}
