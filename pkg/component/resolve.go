package component

import "strings"

// Resolved is an attribute ready to be written onto an element.
type Resolved struct {
	Name  string
	Value string
	Bare  bool
}

// Resolve maps a name and value onto the binding convention. Booleans,
// numbers and structured values are bound (marker prefixed); strings and
// nulls stay plain. Structured payloads are escaped with EscapeAttribute. The
// marker is prepended after the name is kebab-cased.
func Resolve(marker, name string, v Value) Resolved {
	name = Kebab(name)

	switch v.kind {
	case KindBool, KindNumber:
		return Resolved{Name: marker + name, Value: v.text}
	case KindStructured:
		return Resolved{Name: marker + name, Value: EscapeAttribute(v.text)}
	case KindNull:
		return Resolved{Name: name, Bare: true}
	default:
		return Resolved{Name: name, Value: v.text}
	}
}

var attributeEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#039;",
)

// EscapeAttribute encodes s for use inside a double quoted attribute value.
// Existing entities are escaped again.
func EscapeAttribute(s string) string {
	return attributeEscaper.Replace(s)
}
