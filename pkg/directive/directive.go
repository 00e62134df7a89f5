package directive

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-vuetag/pkg/component"
	"github.com/goliatone/go-vuetag/pkg/element"
)

// DefaultInner is the inner wrapper element both built-in directives use.
const DefaultInner = "div"

// Directive renders the markup of one template directive.
type Directive struct {
	name    string
	factory *component.Factory
	inner   string
}

// New returns a directive called name that renders factory tags around an
// inner wrapper element. An empty inner falls back to DefaultInner.
func New(name string, factory *component.Factory, inner string) (*Directive, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("directive: name is required")
	}
	if !isIdentifier(name) {
		return nil, fmt.Errorf("directive: name %q must be a letter followed by letters, digits or underscores", name)
	}
	if factory == nil {
		return nil, fmt.Errorf("directive: factory for %q is nil", name)
	}
	inner = strings.TrimSpace(inner)
	if inner == "" {
		inner = DefaultInner
	}
	return &Directive{name: name, factory: factory, inner: inner}, nil
}

// MustNew is New that panics on error.
func MustNew(name string, factory *component.Factory, inner string) *Directive {
	d, err := New(name, factory, inner)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the directive name, e.g. "vue".
func (d *Directive) Name() string {
	return d.name
}

// EndName returns the name of the closing directive, e.g. "endvue".
func (d *Directive) EndName() string {
	return "end" + d.name
}

// Factory returns the component factory backing the directive.
func (d *Directive) Factory() *component.Factory {
	return d.factory
}

// Start renders the component start tag and opens the inner wrapper.
func (d *Directive) Start(name string, args ...any) (string, error) {
	start, err := d.factory.Start(name, args...)
	if err != nil {
		return "", fmt.Errorf("directive %s: %w", d.name, err)
	}
	return start + element.New(d.inner).StartTag(), nil
}

// End closes the inner wrapper and the component.
func (d *Directive) End() string {
	return element.New(d.inner).EndTag() + d.factory.End()
}

// Template engines expose directives as functions or tags, so names follow
// identifier rules.
func isIdentifier(name string) bool {
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return name != ""
}
