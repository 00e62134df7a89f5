package template

import (
	"io"

	"github.com/goliatone/go-vuetag/pkg/directive"
)

// TemplateRenderer is the contract host template engines satisfy. Render
// accepts either a template name or inline template content.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// DirectiveRegistrar is implemented by engines that can expose component
// directives as native template syntax.
type DirectiveRegistrar interface {
	RegisterDirectives(set *directive.Set) error
}
