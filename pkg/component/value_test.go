package component

import (
	"encoding/json"
	"testing"
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func TestValueOf(t *testing.T) {
	var nilSlice []string
	var nilMap map[string]any
	var nilPtr *point
	var nilFunc func()
	var nilChan chan int
	n := 7

	tests := []struct {
		name string
		in   any
		kind Kind
		text string
	}{
		{"nil", nil, KindNull, ""},
		{"true", true, KindBool, "true"},
		{"false", false, KindBool, "false"},
		{"int", 3, KindNumber, "3"},
		{"negative int64", int64(-12), KindNumber, "-12"},
		{"uint8", uint8(255), KindNumber, "255"},
		{"float", 3.5, KindNumber, "3.5"},
		{"float32", float32(0.25), KindNumber, "0.25"},
		{"json number", json.Number("1e3"), KindNumber, "1e3"},
		{"numeric string", "42", KindNumber, "42"},
		{"decimal string", "3.5", KindNumber, "3.5"},
		{"padded numeric string", " 8 ", KindNumber, " 8 "},
		{"plain string", "hello", KindString, "hello"},
		{"hex string", "0x1A", KindString, "0x1A"},
		{"empty string", "", KindString, ""},
		{"slice", []string{"a", "b"}, KindStructured, `["a","b"]`},
		{"map", map[string]int{"b": 2, "a": 1}, KindStructured, `{"a":1,"b":2}`},
		{"struct", point{X: 1, Y: 2}, KindStructured, `{"x":1,"y":2}`},
		{"array", [2]int{1, 2}, KindStructured, `[1,2]`},
		{"html inside structure", []string{"<b>&"}, KindStructured, `["<b>&"]`},
		{"nil slice", nilSlice, KindNull, ""},
		{"nil map", nilMap, KindNull, ""},
		{"nil pointer", nilPtr, KindNull, ""},
		{"pointer", &n, KindNumber, "7"},
		{"value passthrough", String("42"), KindString, "42"},
		{"huge float", 1e300, KindNumber, "1e+300"},
		{"float at exponent threshold", 1e21, KindNumber, "1e+21"},
		{"large float below threshold", 1e20, KindNumber, "100000000000000000000"},
		{"tiny float", 1e-7, KindNumber, "1e-7"},
		{"negative tiny float", -2.5e-9, KindNumber, "-2.5e-9"},
		{"whole float", 1000000.0, KindNumber, "1000000"},
		{"huge float32", float32(3e30), KindNumber, "3e+30"},
		{"complex", complex(1, 2), KindStructured, ""},
		{"func", func() {}, KindStructured, ""},
		{"chan", make(chan int), KindStructured, ""},
		{"nil func", nilFunc, KindNull, ""},
		{"nil chan", nilChan, KindNull, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueOf(tt.in)
			if got.Kind() != tt.kind {
				t.Fatalf("kind: want %s, got %s", tt.kind, got.Kind())
			}
			if got.Text() != tt.text {
				t.Fatalf("text: want %q, got %q", tt.text, got.Text())
			}
		})
	}
}

func TestValueOf_UnencodableStructureIsEmpty(t *testing.T) {
	got := ValueOf(map[string]any{"ch": make(chan int)})
	if got.Kind() != KindStructured {
		t.Fatalf("kind: want structured, got %s", got.Kind())
	}
	if got.Text() != "" {
		t.Fatalf("text: want empty payload, got %q", got.Text())
	}
}

func TestIsNumeric(t *testing.T) {
	cases := map[string]bool{
		"0":      true,
		"-1":     true,
		"+1.5":   true,
		".5":     true,
		"5.":     true,
		"1e10":   true,
		"1.5E-3": true,
		" 42":    true,
		"42 ":    true,
		"":       false,
		" ":      false,
		"abc":    false,
		"1a":     false,
		"0x1A":   false,
		"1_000":  false,
		"NaN":    false,
		"Inf":    false,
		"e5":     false,
		"1e":     false,
	}
	for in, want := range cases {
		if got := IsNumeric(in); got != want {
			t.Errorf("IsNumeric(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindStructured.String() != "structured" {
		t.Fatalf("unexpected kind name %q", KindStructured.String())
	}
	if Kind(42).String() != "kind(42)" {
		t.Fatalf("unexpected unknown kind name %q", Kind(42).String())
	}
}
