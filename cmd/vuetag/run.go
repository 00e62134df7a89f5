package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	vuetag "github.com/goliatone/go-vuetag"
	"github.com/goliatone/go-vuetag/internal/prompt"
	"github.com/goliatone/go-vuetag/pkg/component"
	"github.com/goliatone/go-vuetag/pkg/config"
	"github.com/goliatone/go-vuetag/pkg/directive"
)

type options struct {
	component   string
	attrs       string
	directive   string
	configPath  string
	interactive bool
	bare        bool
	body        string
}

func run(ctx context.Context, opts options, driver prompt.Driver) (string, error) {
	set, err := loadDirectives(opts.configPath)
	if err != nil {
		return "", err
	}

	attrs, err := parseAttrs(opts.attrs)
	if err != nil {
		return "", err
	}

	name := opts.directive
	if opts.interactive {
		if driver == nil {
			return "", errors.New("interactive mode needs a prompt driver")
		}
		if name, err = promptDirective(ctx, driver, set, name); err != nil {
			return "", err
		}
		if opts.component, err = promptComponent(ctx, driver, opts.component); err != nil {
			return "", err
		}
		extra, err := promptAttrs(ctx, driver)
		if err != nil {
			return "", err
		}
		for _, attr := range extra {
			attrs = attrs.Set(attr.Name, attr.Value)
		}
	}

	if strings.TrimSpace(opts.component) == "" {
		return "", errors.New("a component name is required (-component)")
	}

	d, ok := set.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown directive %q", name)
	}

	if opts.bare {
		return d.Factory().StartAttrs(opts.component, attrs) + opts.body + d.Factory().End(), nil
	}
	start, err := d.Start(opts.component, attrs)
	if err != nil {
		return "", err
	}
	return start + opts.body + d.End(), nil
}

func loadDirectives(path string) (*directive.Set, error) {
	if strings.TrimSpace(path) == "" {
		store, err := vuetag.DefaultConfig()
		if err != nil {
			return nil, err
		}
		return store.Directives()
	}
	store, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return store.Directives()
}

// parseAttrs decodes a JSON object token by token so attribute order follows
// the command line. Numbers keep their literal text.
func parseAttrs(raw string) (component.Attrs, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("attrs: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("attrs: expected a JSON object")
	}

	var attrs component.Attrs
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("attrs: %w", err)
		}
		key, _ := tok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("attrs: value for %q: %w", key, err)
		}
		attrs = attrs.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("attrs: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("attrs: unexpected data after the JSON object")
	}
	return attrs, nil
}

// parseValue reads a prompted value as JSON when it is valid JSON and as a
// plain string otherwise, so `true`, `3` and `["a"]` keep their types.
func parseValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil || dec.More() {
		return raw
	}
	return value
}
