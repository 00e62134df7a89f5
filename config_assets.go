package vuetag

import (
	_ "embed"

	"github.com/goliatone/go-vuetag/pkg/config"
)

//go:embed directives.yaml
var embeddedDirectives []byte

// DefaultConfig returns the directive definitions shipped with the module. It
// matches Directives() and serves as a starting point for custom files.
func DefaultConfig() (*config.Store, error) {
	return config.Parse(embeddedDirectives, "directives.yaml")
}

// DefaultConfigYAML returns the raw embedded definitions file.
func DefaultConfigYAML() []byte {
	return append([]byte(nil), embeddedDirectives...)
}
