package component

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestResolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("booleans bind with literal true/false", prop.ForAll(
		func(name string, b bool) bool {
			got := Resolve(":", name, ValueOf(b))
			return got.Name == ":"+Kebab(name) && got.Value == strconv.FormatBool(b) && !got.Bare
		},
		gen.Identifier(),
		gen.Bool(),
	))

	properties.Property("integers bind with their decimal text", prop.ForAll(
		func(name string, n int) bool {
			got := Resolve(":", name, ValueOf(n))
			return got.Name == ":"+Kebab(name) && got.Value == strconv.Itoa(n)
		},
		gen.Identifier(),
		gen.Int(),
	))

	properties.Property("numeric strings bind unchanged", prop.ForAll(
		func(name string, f float64) bool {
			text := strconv.FormatFloat(f, 'f', -1, 64)
			got := Resolve(":", name, ValueOf(text))
			return got.Name == ":"+Kebab(name) && got.Value == text
		},
		gen.Identifier(),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("structured values bind escaped JSON", prop.ForAll(
		func(name string, items []string) bool {
			payload := map[string][]string{"items": items}
			raw, err := json.Marshal(payload)
			if err != nil {
				return false
			}
			got := Resolve(":", name, ValueOf(payload))
			return got.Name == ":"+Kebab(name) && got.Value == EscapeAttribute(string(raw))
		},
		gen.Identifier(),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("plain strings pass through unbound", prop.ForAll(
		func(name, s string) bool {
			got := Resolve(":", name, ValueOf(s))
			return got.Name == Kebab(name) && got.Value == s && !strings.HasPrefix(got.Name, ":")
		},
		gen.Identifier(),
		gen.AlphaString(),
	))

	properties.Property("nulls render bare and unbound", prop.ForAll(
		func(name string) bool {
			got := Resolve(":", name, ValueOf(nil))
			return got.Bare && got.Name == Kebab(name)
		},
		gen.Identifier(),
	))

	properties.Property("end tag ignores previous starts", prop.ForAll(
		func(component string, attrs map[string]int) bool {
			f := New(Basic())
			if _, err := f.Start(component, attrs); err != nil {
				return false
			}
			return f.End() == "</component>"
		},
		gen.Identifier(),
		gen.MapOf(gen.Identifier(), gen.Int()),
	))

	properties.TestingRun(t)
}
