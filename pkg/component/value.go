package component

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"strconv"
)

// Kind enumerates the attribute value kinds the resolver understands.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindStructured
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindStructured:
		return "structured"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a classified attribute value. The zero Value is null.
type Value struct {
	kind Kind
	text string
}

// Null returns the null value; it renders as a bare attribute.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, text: strconv.FormatBool(b)}
}

// Number returns a numeric value rendered exactly as text.
func Number(text string) Value {
	return Value{kind: KindNumber, text: text}
}

// String returns a plain string value. Use ValueOf to have numeric strings
// classified as numbers.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Structured serialises v to compact JSON. A value that cannot be encoded
// yields an empty payload.
func Structured(v any) Value {
	return Value{kind: KindStructured, text: encodeJSON(v)}
}

// Kind returns the value kind.
func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the serialised form of the value. Null values return "".
func (v Value) Text() string {
	return v.text
}

// ValueOf classifies an arbitrary Go value. It is the only place attribute
// values are inspected at runtime.
//
// Numeric strings ("42", " 3.5", "1e3") are numbers. Nil pointers, maps,
// slices, funcs and channels are null. Everything else that is not a scalar
// is structured; values JSON cannot encode (functions, channels, complex
// numbers) carry an empty payload.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case bool:
		return Bool(x)
	case string:
		return stringValue(x)
	case []byte:
		return stringValue(string(x))
	case json.Number:
		return Number(x.String())
	case int:
		return Number(strconv.Itoa(x))
	case int64:
		return Number(strconv.FormatInt(x, 10))
	case float64:
		return Number(formatFloat(x, 64))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32:
		return Number(formatFloat(rv.Float(), 32))
	case reflect.Float64:
		return Number(formatFloat(rv.Float(), 64))
	case reflect.String:
		return stringValue(rv.String())
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return Null()
		}
		return Structured(v)
	default:
		// Structs, arrays and values JSON cannot encode. The latter render
		// with an empty payload, the same as when nested.
		return Structured(v)
	}
}

// formatFloat spells f out in decimal, switching to exponent form for very
// large or very small magnitudes the way encoding/json does.
func formatFloat(f float64, bits int) string {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	s := strconv.FormatFloat(f, format, -1, bits)
	if format == 'e' {
		// 1e-07 becomes 1e-7
		if n := len(s); n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}
	return s
}

func stringValue(s string) Value {
	if IsNumeric(s) {
		return Number(s)
	}
	return String(s)
}

var numericPattern = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?[ \t\n\r\v\f]*$`)

// IsNumeric reports whether s is a decimal number, optionally signed, with an
// optional fraction and exponent. Surrounding whitespace is allowed; hex,
// underscores, "Inf" and "NaN" are not.
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

func encodeJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
