// # internal/core/config/loader.go
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	domainerr "jsdeps/internal/core/errors"

	"github.com/BurntSushi/toml"
)

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := domainerr.CodeInternal
		if errors.Is(err, fs.ErrNotExist) {
			code = domainerr.CodeNotFound
		}
		return nil, domainerr.AddContext(domainerr.Wrap(err, code, "read config"), domainerr.CtxPath, path)
	}
	return Parse(string(data))
}

// Parse decodes TOML content into a validated Config.
func Parse(content string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, domainerr.Wrap(err, domainerr.CodeInvalidInput, "decode config")
	}

	applyDefaults(&cfg)
	normalize(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads path, falling back to DefaultConfig when path is the
// default location and no file exists there.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if path == DefaultPath && domainerr.IsCode(err, domainerr.CodeNotFound) {
		return DefaultConfig(), nil
	}
	return nil, err
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if strings.TrimSpace(cfg.Output.Format) == "" {
		cfg.Output.Format = FormatLines
	}
	if cfg.Builtins.IncludeDefaults == nil {
		enabled := true
		cfg.Builtins.IncludeDefaults = &enabled
	}
}

func normalize(cfg *Config) {
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Builtins.Extra = normalizeList(cfg.Builtins.Extra)
	cfg.Filter.Ignore = normalizeList(cfg.Filter.Ignore)
}

func normalizeList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
