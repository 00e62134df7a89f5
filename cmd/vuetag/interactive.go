package main

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-vuetag/internal/prompt"
	"github.com/goliatone/go-vuetag/pkg/component"
	"github.com/goliatone/go-vuetag/pkg/directive"
)

func promptDirective(ctx context.Context, driver prompt.Driver, set *directive.Set, current string) (string, error) {
	var names []string
	defaultIndex := 0
	for i, d := range set.All() {
		names = append(names, d.Name())
		if d.Name() == current {
			defaultIndex = i
		}
	}
	if len(names) == 1 {
		return names[0], nil
	}

	idx, err := driver.Select(ctx, prompt.SelectConfig{
		Message:      "Directive",
		Options:      names,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(names) {
		return "", errors.New("no directive selected")
	}
	return names[idx], nil
}

func promptComponent(ctx context.Context, driver prompt.Driver, current string) (string, error) {
	return driver.Input(ctx, prompt.InputConfig{
		Message: "Component name",
		Default: current,
		Validator: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("component name is required")
			}
			return nil
		},
	})
}

// promptAttrs asks for name/value pairs until an empty name is entered.
func promptAttrs(ctx context.Context, driver prompt.Driver) (component.Attrs, error) {
	var attrs component.Attrs
	for {
		name, err := driver.Input(ctx, prompt.InputConfig{
			Message: "Attribute name (empty to finish)",
		})
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return attrs, nil
		}

		value, err := driver.Input(ctx, prompt.InputConfig{
			Message: "Value for " + name,
			Help:    "JSON values (true, 3, [\"a\"], null) are bound; anything else is a plain string",
		})
		if err != nil {
			return nil, err
		}
		attrs = attrs.Set(name, parseValue(value))
	}
}
