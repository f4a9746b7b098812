// # internal/core/config/config.go
package config

const (
	// DefaultPath is where the CLI looks for a config file when none is given.
	DefaultPath = "./jsdeps.toml"

	FormatLines = "lines"
	FormatJSON  = "json"
)

type Config struct {
	Version       int           `toml:"version"`
	Builtins      Builtins      `toml:"builtins"`
	Filter        Filter        `toml:"filter"`
	Output        Output        `toml:"output"`
	Observability Observability `toml:"observability"`
}

// Builtins controls which specifiers are treated as runtime-provided modules.
type Builtins struct {
	// IncludeDefaults starts from the Node.js built-in list. Nil means true.
	IncludeDefaults *bool    `toml:"include_defaults"`
	Extra           []string `toml:"extra"`
}

func (b Builtins) DefaultsEnabled() bool {
	return b.IncludeDefaults == nil || *b.IncludeDefaults
}

type Filter struct {
	// Ignore holds glob patterns; matching package names are dropped from
	// the install set.
	Ignore []string `toml:"ignore"`
}

type Output struct {
	Format string `toml:"format"`
}

type Observability struct {
	EnableMetrics bool `toml:"enable_metrics"`
}

// DefaultConfig returns a config with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
