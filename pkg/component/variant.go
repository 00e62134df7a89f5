package component

// Defaults applied to a Variant whose fields are left empty.
const (
	DefaultWrapper  = "component"
	DefaultMarker   = ":"
	DefaultNameAttr = "is"
)

// Variant configures a Factory.
type Variant struct {
	// Name identifies the variant, e.g. in configuration files.
	Name string
	// Wrapper is the placeholder element mounted by the client runtime.
	Wrapper string
	// Marker is prepended to bound attribute names.
	Marker string
	// NameAttr carries the component name.
	NameAttr string
	// Defaults are applied before the component name and caller attributes.
	Defaults Attrs
}

// Basic is the plain variant with no default attributes.
func Basic() Variant {
	return Variant{Name: "basic"}
}

// Inline marks the wrapper with a bare inline-template attribute so the
// client runtime uses the wrapped markup as the component template.
func Inline() Variant {
	return Variant{
		Name:     "inline",
		Defaults: Attrs{{Name: "inline-template", Value: nil}},
	}
}

func (v Variant) normalized() Variant {
	if v.Wrapper == "" {
		v.Wrapper = DefaultWrapper
	}
	if v.Marker == "" {
		v.Marker = DefaultMarker
	}
	if v.NameAttr == "" {
		v.NameAttr = DefaultNameAttr
	}
	v.Defaults = v.Defaults.Clone()
	return v
}
