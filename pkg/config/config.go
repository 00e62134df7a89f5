package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-vuetag/pkg/component"
	"github.com/goliatone/go-vuetag/pkg/directive"
)

// Base variant names accepted in the "base" key.
const (
	BaseBasic  = "basic"
	BaseInline = "inline"
)

// Definition describes one directive and the component variant behind it.
type Definition struct {
	Name     string
	Base     string
	Wrapper  string
	Marker   string
	NameAttr string
	Inner    string
	Defaults component.Attrs
	// Source is the file the definition was read from.
	Source string
}

// Variant builds the component variant: the base variant with the
// definition's overrides applied and its defaults appended.
func (d Definition) Variant() component.Variant {
	variant := component.Basic()
	if d.Base == BaseInline {
		variant = component.Inline()
	}
	variant.Name = d.Name
	variant.Wrapper = d.Wrapper
	variant.Marker = d.Marker
	variant.NameAttr = d.NameAttr
	for _, attr := range d.Defaults {
		variant.Defaults = variant.Defaults.Set(attr.Name, attr.Value)
	}
	return variant
}

// Directive builds the directive described by d.
func (d Definition) Directive() (*directive.Directive, error) {
	return directive.New(d.Name, component.New(d.Variant()), d.Inner)
}

// Store holds definitions in load order.
type Store struct {
	definitions []Definition
	byName      map[string]int
}

// Load reads a single YAML or JSON file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	store := newStore()
	if err := store.parse(data, path); err != nil {
		return nil, err
	}
	return store, nil
}

// Parse reads definitions from data; source names the input in errors.
func Parse(data []byte, source string) (*Store, error) {
	store := newStore()
	if err := store.parse(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFS walks fsys and loads every .yaml, .yml and .json file. A nil fsys
// yields an empty store. Names must be unique across files.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return store.parse(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func newStore() *Store {
	return &Store{byName: make(map[string]int)}
}

// Definitions returns the definitions in load order.
func (s *Store) Definitions() []Definition {
	if s == nil {
		return nil
	}
	out := make([]Definition, len(s.definitions))
	for i, def := range s.definitions {
		def.Defaults = def.Defaults.Clone()
		out[i] = def
	}
	return out
}

// Lookup returns the definition registered under name.
func (s *Store) Lookup(name string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	idx, ok := s.byName[name]
	if !ok {
		return Definition{}, false
	}
	def := s.definitions[idx]
	def.Defaults = def.Defaults.Clone()
	return def, true
}

// Empty reports whether the store holds no definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.definitions) == 0
}

// Directives builds a directive set from every definition.
func (s *Store) Directives() (*directive.Set, error) {
	defs := s.Definitions()
	directives := make([]*directive.Directive, 0, len(defs))
	for _, def := range defs {
		d, err := def.Directive()
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", def.Source, err)
		}
		directives = append(directives, d)
	}
	set, err := directive.NewSet(directives...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return set, nil
}

type documentFile struct {
	Directives []definitionFile `yaml:"directives"`
}

type definitionFile struct {
	Name     string    `yaml:"name"`
	Base     string    `yaml:"base"`
	Wrapper  string    `yaml:"wrapper"`
	Marker   string    `yaml:"marker"`
	NameAttr string    `yaml:"nameAttr"`
	Inner    string    `yaml:"inner"`
	Defaults yaml.Node `yaml:"defaults"`
}

func (s *Store) parse(data []byte, source string) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("config: file %s is empty", source)
	}

	// JSON is valid YAML, so one decoder serves both formats.
	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: parse %s: %w", source, err)
	}

	for i, raw := range doc.Directives {
		def, err := normaliseDefinition(raw, source)
		if err != nil {
			return fmt.Errorf("config: %s: directive #%d: %w", source, i+1, err)
		}
		if _, exists := s.byName[def.Name]; exists {
			return fmt.Errorf("config: duplicate directive %q (file %s)", def.Name, source)
		}
		s.byName[def.Name] = len(s.definitions)
		s.definitions = append(s.definitions, def)
	}
	return nil
}

func normaliseDefinition(raw definitionFile, source string) (Definition, error) {
	def := Definition{
		Name:     strings.TrimSpace(raw.Name),
		Base:     strings.ToLower(strings.TrimSpace(raw.Base)),
		Wrapper:  strings.TrimSpace(raw.Wrapper),
		Marker:   raw.Marker,
		NameAttr: strings.TrimSpace(raw.NameAttr),
		Inner:    strings.TrimSpace(raw.Inner),
		Source:   source,
	}
	if def.Name == "" {
		return Definition{}, fmt.Errorf("name is required")
	}
	switch def.Base {
	case "":
		def.Base = BaseBasic
	case BaseBasic, BaseInline:
	default:
		return Definition{}, fmt.Errorf("unknown base %q", raw.Base)
	}

	defaults, err := decodeDefaults(&raw.Defaults)
	if err != nil {
		return Definition{}, fmt.Errorf("defaults: %w", err)
	}
	def.Defaults = defaults
	return def, nil
}

// decodeDefaults walks the mapping node directly so key order survives.
func decodeDefaults(node *yaml.Node) (component.Attrs, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
	case yaml.MappingNode:
		attrs := make(component.Attrs, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, valueNode := node.Content[i], node.Content[i+1]
			var value any
			if err := valueNode.Decode(&value); err != nil {
				return nil, fmt.Errorf("attribute %q: %w", key.Value, err)
			}
			attrs = attrs.Set(key.Value, value)
		}
		return attrs, nil
	}
	return nil, fmt.Errorf("expected a mapping of attribute names to values (line %d)", node.Line)
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
