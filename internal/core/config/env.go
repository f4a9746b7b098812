package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Pattern: JSDEPS_[SECTION]_[KEY] (e.g., JSDEPS_OUTPUT_FORMAT). List values
// are comma separated.
func ApplyEnvOverrides(cfg *Config) {
	setEnvBoolPtr(&cfg.Builtins.IncludeDefaults, "JSDEPS_BUILTINS_INCLUDE_DEFAULTS")
	setEnvList(&cfg.Builtins.Extra, "JSDEPS_BUILTINS_EXTRA")
	setEnvList(&cfg.Filter.Ignore, "JSDEPS_FILTER_IGNORE")
	setEnvString(&cfg.Output.Format, "JSDEPS_OUTPUT_FORMAT")
	setEnvBool(&cfg.Observability.EnableMetrics, "JSDEPS_OBSERVABILITY_ENABLE_METRICS")

	normalize(cfg)
}

func setEnvString(target *string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		slog.Debug("applying env override", "key", key, "value", val)
		*target = val
	}
}

func setEnvList(target *[]string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		slog.Debug("applying env override", "key", key, "value", val)
		*target = strings.Split(val, ",")
	}
}

func setEnvBool(target *bool, key string) {
	if val, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(strings.ToLower(val))
		if err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = b
		}
	}
}

func setEnvBoolPtr(target **bool, key string) {
	if val, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(strings.ToLower(val))
		if err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = &b
		}
	}
}
