package component

import (
	"reflect"
	"sort"
)

// Attr is one caller supplied attribute. Value may be any Go value; it is
// classified with ValueOf when the tag is built.
type Attr struct {
	Name  string
	Value any
}

// Attrs is an ordered attribute mapping. Unlike a Go map it keeps the order
// the caller wrote the attributes in.
type Attrs []Attr

// Set returns a copy of attrs with name set to value. An existing entry keeps
// its position.
func (a Attrs) Set(name string, value any) Attrs {
	out := append(Attrs(nil), a...)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Attr{Name: name, Value: value})
}

// Clone returns a shallow copy.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	return append(Attrs(nil), a...)
}

// AttrsOf converts a caller supplied attribute argument into Attrs.
//
// Accepted shapes are nil, Attrs, []Attr and any map keyed by strings. Maps
// are ordered by key. Empty slices and arrays count as "no attributes";
// non-empty ones are positional lists and are rejected with an ArgumentError,
// as is every other shape.
func AttrsOf(v any) (Attrs, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Attrs:
		return x.Clone(), nil
	case []Attr:
		return Attrs(x).Clone(), nil
	case map[string]any:
		return attrsFromMap(reflect.ValueOf(x)), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return AttrsOf(rv.Elem().Interface())
	case reflect.Map:
		if rv.Len() == 0 {
			return nil, nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return nil, argumentError("start", "attribute names must be strings, got %s keys", rv.Type().Key())
		}
		return attrsFromMap(rv), nil
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return nil, nil
		}
		return nil, argumentError("start", "attributes must be an associative mapping, got a positional list")
	default:
		return nil, argumentError("start", "attributes must be an associative mapping, got %T", v)
	}
}

func attrsFromMap(rv reflect.Value) Attrs {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	out := make(Attrs, 0, len(keys))
	for _, key := range keys {
		out = append(out, Attr{
			Name:  key.String(),
			Value: rv.MapIndex(key).Interface(),
		})
	}
	return out
}
