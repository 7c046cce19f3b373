package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "PRECIS_"
	// EnvConfigFile names the YAML file to load when no path is given.
	EnvConfigFile = "PRECIS_CONFIG"
)

// Load builds a Config by layering, low to high precedence:
//  1. Default()
//  2. the YAML file at path, or at $PRECIS_CONFIG when path is empty
//  3. PRECIS_ env vars, with "__" separating sections
//     (PRECIS_LLM__OPENAI__API_KEY sets llm.openai.api_key)
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps PRECIS_LLM__RETRY__MAX_ATTEMPTS to llm.retry.max_attempts.
// Variables without a section separator (PRECIS_CONFIG, PRECIS_DB) are not
// config keys and are skipped.
func envKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	if !strings.Contains(s, "__") {
		return ""
	}
	return strings.ToLower(strings.ReplaceAll(s, "__", "."))
}
