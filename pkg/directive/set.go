package directive

import (
	"fmt"

	"github.com/goliatone/go-vuetag/pkg/component"
)

// Set is an ordered collection of directives with unique names.
type Set struct {
	directives []*Directive
	byName     map[string]*Directive
}

// NewSet builds a set, rejecting duplicate names and clashes between a name
// and another directive's closing name.
func NewSet(directives ...*Directive) (*Set, error) {
	set := &Set{byName: make(map[string]*Directive, len(directives))}
	for _, d := range directives {
		if err := set.add(d); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func (s *Set) add(d *Directive) error {
	if d == nil {
		return fmt.Errorf("directive: nil directive")
	}
	if _, exists := s.byName[d.Name()]; exists {
		return fmt.Errorf("directive: duplicate directive %q", d.Name())
	}
	for _, other := range s.directives {
		if other.EndName() == d.Name() || d.EndName() == other.Name() {
			return fmt.Errorf("directive: %q clashes with %q", d.Name(), other.Name())
		}
	}
	s.byName[d.Name()] = d
	s.directives = append(s.directives, d)
	return nil
}

// Defaults returns the built-in set: "vue" backed by the basic variant and
// "vueinline" backed by the inline variant.
func Defaults() *Set {
	set, err := NewSet(
		MustNew("vue", component.New(component.Basic()), DefaultInner),
		MustNew("vueinline", component.New(component.Inline()), DefaultInner),
	)
	if err != nil {
		panic(err)
	}
	return set
}

// Lookup returns the directive registered under name.
func (s *Set) Lookup(name string) (*Directive, bool) {
	if s == nil {
		return nil, false
	}
	d, ok := s.byName[name]
	return d, ok
}

// All returns the directives in registration order.
func (s *Set) All() []*Directive {
	if s == nil {
		return nil
	}
	return append([]*Directive(nil), s.directives...)
}

// Len reports the number of directives.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.directives)
}
