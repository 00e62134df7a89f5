package component

import (
	"strings"

	"github.com/goliatone/go-vuetag/pkg/element"
)

// Option tweaks the Variant a Factory is built with.
type Option func(*Variant)

// WithWrapper overrides the wrapper element name.
func WithWrapper(name string) Option {
	return func(v *Variant) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			v.Wrapper = trimmed
		}
	}
}

// WithMarker overrides the binding marker, e.g. "v-bind:".
func WithMarker(marker string) Option {
	return func(v *Variant) {
		if marker != "" {
			v.Marker = marker
		}
	}
}

// WithNameAttr overrides the attribute carrying the component name.
func WithNameAttr(name string) Option {
	return func(v *Variant) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			v.NameAttr = trimmed
		}
	}
}

// WithDefaults appends default attributes to the variant's own.
func WithDefaults(attrs Attrs) Option {
	return func(v *Variant) {
		for _, attr := range attrs {
			v.Defaults = v.Defaults.Set(attr.Name, attr.Value)
		}
	}
}

// Factory renders component start and end tags for one variant. A Factory is
// immutable and safe for concurrent use; every call builds a fresh element.
type Factory struct {
	variant Variant
}

// New returns a factory for variant with opts applied on top.
func New(variant Variant, opts ...Option) *Factory {
	v := variant.normalized()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&v)
	}
	return &Factory{variant: v}
}

// Variant returns a copy of the factory's configuration.
func (f *Factory) Variant() Variant {
	v := f.variant
	v.Defaults = v.Defaults.Clone()
	return v
}

// Start renders the start tag for the named component. It accepts at most one
// extra argument, the attributes, in any shape AttrsOf understands.
func (f *Factory) Start(name string, args ...any) (string, error) {
	if len(args) > 1 {
		return "", argumentError("start", "too many arguments: want a name and an optional attribute mapping, got %d arguments", len(args)+1)
	}

	var attrs Attrs
	if len(args) == 1 {
		var err error
		if attrs, err = AttrsOf(args[0]); err != nil {
			return "", err
		}
	}
	return f.StartAttrs(name, attrs), nil
}

// StartAttrs renders the start tag for the named component with attributes
// that are already in ordered form.
//
// Defaults come first, then the component name, then attrs. A repeated name
// keeps the position of its first occurrence and the value of its last.
func (f *Factory) StartAttrs(name string, attrs Attrs) string {
	el := element.New(f.variant.Wrapper)

	for _, attr := range f.variant.Defaults {
		f.apply(el, attr.Name, ValueOf(attr.Value))
	}
	f.apply(el, f.variant.NameAttr, ValueOf(name))
	for _, attr := range attrs {
		f.apply(el, attr.Name, ValueOf(attr.Value))
	}

	return el.StartTag()
}

// End renders the end tag. It never depends on a previous Start call.
func (f *Factory) End() string {
	return element.New(f.variant.Wrapper).EndTag()
}

func (f *Factory) apply(el *element.Element, name string, value Value) {
	resolved := Resolve(f.variant.Marker, name, value)
	if resolved.Bare {
		el.SetBareAttribute(resolved.Name)
		return
	}
	el.SetAttribute(resolved.Name, resolved.Value)
}
