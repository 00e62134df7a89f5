package component

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFactory_Start(t *testing.T) {
	basic := New(Basic())

	tests := []struct {
		name      string
		component string
		args      []any
		want      string
	}{
		{
			name:      "name only",
			component: "user-card",
			want:      `<component is="user-card">`,
		},
		{
			name:      "mixed values",
			component: "user-card",
			args: []any{map[string]any{
				"active": true,
				"count":  3,
				"tags":   []string{"a", "b"},
			}},
			want: `<component is="user-card" :active="true" :count="3" :tags="[&quot;a&quot;,&quot;b&quot;]">`,
		},
		{
			name:      "ordered attrs keep caller order",
			component: "modal",
			args: []any{Attrs{
				{Name: "title", Value: "Confirm"},
				{Name: "closeOnEscape", Value: false},
				{Name: "maxWidth", Value: "640"},
				{Name: "persistent", Value: nil},
			}},
			want: `<component is="modal" title="Confirm" :close-on-escape="false" :max-width="640" persistent>`,
		},
		{
			name:      "nil attributes",
			component: "x",
			args:      []any{nil},
			want:      `<component is="x">`,
		},
		{
			name:      "empty list counts as no attributes",
			component: "x",
			args:      []any{[]any{}},
			want:      `<component is="x">`,
		},
		{
			name:      "typed map",
			component: "x",
			args:      []any{map[string]string{"b": "2", "a": "one"}},
			want:      `<component is="x" a="one" :b="2">`,
		},
		{
			name:      "numeric component name is bound",
			component: "42",
			want:      `<component :is="42">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := basic.Start(tt.component, tt.args...)
			if err != nil {
				t.Fatalf("start: %v", err)
			}
			if got != tt.want {
				t.Fatalf("start tag mismatch\nwant: %q\n got: %q", tt.want, got)
			}
		})
	}
}

func TestFactory_StartArgumentErrors(t *testing.T) {
	basic := New(Basic())

	tests := []struct {
		name   string
		args   []any
		reason string
	}{
		{"positional list", []any{[]int{1, 2, 3}}, "positional list"},
		{"too many arguments", []any{map[string]any{}, "extra"}, "too many arguments"},
		{"scalar attributes", []any{"class"}, "associative mapping"},
		{"integer keyed map", []any{map[int]string{0: "a"}}, "must be strings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := basic.Start("x", tt.args...)
			if err == nil {
				t.Fatalf("expected error, got output %q", out)
			}
			if !errors.Is(err, ErrArgument) {
				t.Fatalf("expected ErrArgument, got %v", err)
			}
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("expected *ArgumentError, got %T", err)
			}
			if argErr.Op != "start" {
				t.Fatalf("op: got %q", argErr.Op)
			}
			if !strings.Contains(argErr.Reason, tt.reason) {
				t.Fatalf("reason %q does not mention %q", argErr.Reason, tt.reason)
			}
		})
	}
}

func TestFactory_CollisionKeepsFirstPositionLastValue(t *testing.T) {
	f := New(Inline())

	got, err := f.Start("user-card", Attrs{
		{Name: "class", Value: "a"},
		{Name: "is", Value: "admin-card"},
		{Name: "inline-template", Value: "yes"},
		{Name: "class", Value: "b"},
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	want := `<component inline-template="yes" is="admin-card" class="b">`
	if got != want {
		t.Fatalf("start tag mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestFactory_BoundAndPlainNamesDoNotCollide(t *testing.T) {
	got := New(Basic()).StartAttrs("x", Attrs{{Name: "is", Value: true}})
	want := `<component is="x" :is="true">`
	if got != want {
		t.Fatalf("start tag mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestFactory_InlineDefaults(t *testing.T) {
	got, err := New(Inline()).Start("todo-list", map[string]any{"items": []int{1, 2}})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	want := `<component inline-template is="todo-list" :items="[1,2]">`
	if got != want {
		t.Fatalf("start tag mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestFactory_End(t *testing.T) {
	f := New(Basic())
	if _, err := f.Start("foo", map[string]any{"a": 1, "b": 2, "c": 3}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := f.End(); got != "</component>" {
		t.Fatalf("end: got %q", got)
	}
	if got := New(Inline()).End(); got != "</component>" {
		t.Fatalf("inline end: got %q", got)
	}
}

func TestFactory_StartEndPairIsBalanced(t *testing.T) {
	f := New(Basic(), WithWrapper("dynamic"))
	start, err := f.Start("foo", map[string]any{"a": 1, "b": 2, "c": 3})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	pair := start + f.End()
	want := `<dynamic is="foo" :a="1" :b="2" :c="3"></dynamic>`
	if pair != want {
		t.Fatalf("pair mismatch\nwant: %q\n got: %q", want, pair)
	}
}

func TestFactory_Options(t *testing.T) {
	f := New(Basic(),
		WithWrapper("keep-alive"),
		WithMarker("v-bind:"),
		WithNameAttr("data-component"),
		WithDefaults(Attrs{{Name: "ssr", Value: true}}),
		nil,
	)

	got := f.StartAttrs("x", Attrs{{Name: "count", Value: 1}})
	want := `<keep-alive v-bind:ssr="true" data-component="x" v-bind:count="1">`
	if got != want {
		t.Fatalf("start tag mismatch\nwant: %q\n got: %q", want, got)
	}
	if f.End() != "</keep-alive>" {
		t.Fatalf("end: got %q", f.End())
	}

	wantVariant := Variant{
		Name:     "basic",
		Wrapper:  "keep-alive",
		Marker:   "v-bind:",
		NameAttr: "data-component",
		Defaults: Attrs{{Name: "ssr", Value: true}},
	}
	if diff := cmp.Diff(wantVariant, f.Variant()); diff != "" {
		t.Fatalf("variant mismatch (-want +got):\n%s", diff)
	}
}

func TestFactory_VariantIsolation(t *testing.T) {
	variant := Inline()
	f := New(variant)

	variant.Defaults[0].Name = "mutated"
	got := f.Variant()
	got.Defaults[0].Name = "mutated-again"

	if start := f.StartAttrs("x", nil); start != `<component inline-template is="x">` {
		t.Fatalf("factory defaults mutated: %q", start)
	}
}

func TestAttrs_Set(t *testing.T) {
	base := Attrs{{Name: "a", Value: 1}}
	updated := base.Set("a", 2).Set("b", 3)

	want := Attrs{{Name: "a", Value: 2}, {Name: "b", Value: 3}}
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
	if base[0].Value != 1 {
		t.Fatalf("Set mutated the receiver: %#v", base)
	}
}
