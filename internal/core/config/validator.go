package config

import (
	"fmt"

	domainerr "jsdeps/internal/core/errors"

	"github.com/gobwas/glob"
)

// Validate checks a normalized config. It is run by Parse and again by the
// CLI after flag and env overrides.
func Validate(cfg *Config) error {
	if err := validateVersion(cfg); err != nil {
		return err
	}
	if err := validateOutput(cfg); err != nil {
		return err
	}
	return validateFilter(cfg)
}

func validateVersion(cfg *Config) error {
	if cfg.Version != 1 {
		return domainerr.Newf(domainerr.CodeValidationError, "unsupported config version %d; supported version is 1", cfg.Version)
	}
	return nil
}

func validateOutput(cfg *Config) error {
	switch cfg.Output.Format {
	case FormatLines, FormatJSON:
		return nil
	default:
		return domainerr.AddContext(
			domainerr.Newf(domainerr.CodeValidationError, "output.format must be one of: %s, %s", FormatLines, FormatJSON),
			domainerr.CtxField, "output.format",
		)
	}
}

func validateFilter(cfg *Config) error {
	for i, pattern := range cfg.Filter.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			wrapped := domainerr.Wrap(err, domainerr.CodeValidationError, fmt.Sprintf("filter.ignore[%d] is not a valid glob", i))
			return domainerr.AddContext(wrapped, domainerr.CtxPattern, pattern)
		}
	}
	return nil
}
