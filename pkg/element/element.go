package element

import "strings"

// Attribute is a single rendered attribute. Bare attributes (boolean-style
// HTML attributes such as `disabled`) render their name only.
type Attribute struct {
	Name  string
	Value string
	Bare  bool
}

// Element represents one HTML element by name plus its ordered attributes.
type Element struct {
	name  string
	attrs []Attribute
	index map[string]int
}

// New returns an element with the given tag name and no attributes.
func New(name string) *Element {
	return &Element{
		name:  name,
		index: make(map[string]int),
	}
}

// Name returns the tag name.
func (e *Element) Name() string {
	return e.name
}

// SetAttribute stores name="value". Setting an existing name overwrites the
// value but keeps the position of the first insertion.
func (e *Element) SetAttribute(name, value string) *Element {
	e.set(Attribute{Name: name, Value: value})
	return e
}

// SetBareAttribute stores an attribute without a value.
func (e *Element) SetBareAttribute(name string) *Element {
	e.set(Attribute{Name: name, Bare: true})
	return e
}

func (e *Element) set(attr Attribute) {
	if pos, ok := e.index[attr.Name]; ok {
		e.attrs[pos] = attr
		return
	}
	e.index[attr.Name] = len(e.attrs)
	e.attrs = append(e.attrs, attr)
}

// Len reports how many attributes are set.
func (e *Element) Len() int {
	return len(e.attrs)
}

// Attributes returns a copy of the attributes in render order.
func (e *Element) Attributes() []Attribute {
	return append([]Attribute(nil), e.attrs...)
}

// StartTag renders `<name attr="v" bare>`.
func (e *Element) StartTag() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.name)
	for _, attr := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(renderAttribute(attr))
	}
	b.WriteByte('>')
	return b.String()
}

// EndTag renders `</name>`.
func (e *Element) EndTag() string {
	return "</" + e.name + ">"
}

func renderAttribute(attr Attribute) string {
	// Positional names carry a raw token, e.g. a bare list entry.
	if isPositional(attr.Name) {
		if attr.Bare {
			return ""
		}
		return attr.Value
	}
	if attr.Bare {
		return attr.Name
	}
	return attr.Name + `="` + attr.Value + `"`
}

func isPositional(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
