// Package config loads precis configuration from defaults, an optional YAML
// file and PRECIS_ environment variables, in that order of precedence.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/precis/internal/llm"
	"github.com/abhisek/precis/internal/vocab"
)

// Config is the full process configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	DB     DBConfig     `koanf:"db"`
	Vocab  VocabConfig  `koanf:"vocab"`
	LLM    LLMConfig    `koanf:"llm"`
	Sheets SheetsConfig `koanf:"sheets"`
	HTTP   HTTPConfig   `koanf:"http"`
}

type LogConfig struct {
	// Mode is "dev" or "prod".
	Mode  string `koanf:"mode"`
	Level string `koanf:"level"`
	// File receives log output instead of stderr. The TUI always needs one.
	File string `koanf:"file"`
}

type DBConfig struct {
	// Path overrides the XDG default database location.
	Path string `koanf:"path"`
}

// VocabConfig locates the two reference word lists. Explicit paths win over
// Dir joined with the default file names.
type VocabConfig struct {
	Dir      string `koanf:"dir"`
	EraAPath string `koanf:"era_a_path"`
	EraBPath string `koanf:"era_b_path"`
}

// Paths returns the era A and era B list locations.
func (v VocabConfig) Paths() (string, string) {
	a, b := v.EraAPath, v.EraBPath
	if a == "" {
		a = filepath.Join(v.Dir, vocab.DefaultEraAFile)
	}
	if b == "" {
		b = filepath.Join(v.Dir, vocab.DefaultEraBFile)
	}
	return a, b
}

type ProviderConfig struct {
	APIKey  string `koanf:"api_key"`
	Model   string `koanf:"model"`
	BaseURL string `koanf:"base_url"`
}

type RetryConfig struct {
	MaxAttempts int           `koanf:"max_attempts"`
	InitialWait time.Duration `koanf:"initial_wait"`
	MaxWait     time.Duration `koanf:"max_wait"`
	Multiplier  float64       `koanf:"multiplier"`
}

type LLMConfig struct {
	Provider   string         `koanf:"provider"`
	Timeout    time.Duration  `koanf:"timeout"`
	Anthropic  ProviderConfig `koanf:"anthropic"`
	OpenAI     ProviderConfig `koanf:"openai"`
	Gemini     ProviderConfig `koanf:"gemini"`
	OpenRouter ProviderConfig `koanf:"openrouter"`
	Retry      RetryConfig    `koanf:"retry"`
}

// SheetsConfig points at the survey spreadsheet. Either CredentialsFile or
// CredentialsJSON holds a service account key.
type SheetsConfig struct {
	SpreadsheetID   string `koanf:"spreadsheet_id"`
	CredentialsFile string `koanf:"credentials_file"`
	CredentialsJSON string `koanf:"credentials_json"`
	Worksheet       string `koanf:"worksheet"`
}

// Enabled reports whether enough is configured to try connecting.
func (s SheetsConfig) Enabled() bool {
	return len(s.Missing()) == 0
}

// Missing lists the settings that still need a value.
func (s SheetsConfig) Missing() []string {
	var missing []string
	if s.SpreadsheetID == "" {
		missing = append(missing, "sheets.spreadsheet_id")
	}
	if s.CredentialsFile == "" && s.CredentialsJSON == "" {
		missing = append(missing, "sheets.credentials_file or sheets.credentials_json")
	}
	return missing
}

type HTTPConfig struct {
	Addr string `koanf:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	l := llm.DefaultConfig()
	return &Config{
		Log:   LogConfig{Mode: "dev"},
		Vocab: VocabConfig{Dir: "."},
		LLM: LLMConfig{
			Provider:   l.Provider,
			Timeout:    l.Timeout,
			Anthropic:  ProviderConfig{Model: l.Anthropic.Model},
			OpenAI:     ProviderConfig{Model: l.OpenAI.Model},
			Gemini:     ProviderConfig{Model: l.Gemini.Model},
			OpenRouter: ProviderConfig{Model: l.OpenRouter.Model},
			Retry: RetryConfig{
				MaxAttempts: l.Retry.MaxAttempts,
				InitialWait: l.Retry.InitialWait,
				MaxWait:     l.Retry.MaxWait,
				Multiplier:  l.Retry.Multiplier,
			},
		},
		Sheets: SheetsConfig{Worksheet: "TAM_Survey"},
		HTTP:   HTTPConfig{Addr: ":8080"},
	}
}

// LLMConfig converts the llm section into an llm.Config. When the selected
// provider has no key, the standard provider env vars are probed.
func (c *Config) LLMConfig() llm.Config {
	out := llm.Config{
		Provider:   c.LLM.Provider,
		Timeout:    c.LLM.Timeout,
		Anthropic:  llm.AnthropicConfig{APIKey: c.LLM.Anthropic.APIKey, Model: c.LLM.Anthropic.Model, BaseURL: c.LLM.Anthropic.BaseURL},
		OpenAI:     llm.OpenAIConfig{APIKey: c.LLM.OpenAI.APIKey, Model: c.LLM.OpenAI.Model, BaseURL: c.LLM.OpenAI.BaseURL},
		Gemini:     llm.GeminiConfig{APIKey: c.LLM.Gemini.APIKey, Model: c.LLM.Gemini.Model},
		OpenRouter: llm.OpenRouterConfig{APIKey: c.LLM.OpenRouter.APIKey, Model: c.LLM.OpenRouter.Model, BaseURL: c.LLM.OpenRouter.BaseURL},
		Retry: llm.RetryConfig{
			MaxAttempts: c.LLM.Retry.MaxAttempts,
			InitialWait: c.LLM.Retry.InitialWait,
			MaxWait:     c.LLM.Retry.MaxWait,
			Multiplier:  c.LLM.Retry.Multiplier,
		},
	}
	if !out.HasKey() {
		out.Discover()
	}
	return out
}

// Validate checks settings that would otherwise fail much later.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Mode) {
	case "dev", "prod", "production":
	default:
		errs = append(errs, fmt.Sprintf("log.mode: unknown mode %q (want dev or prod)", c.Log.Mode))
	}
	if c.HTTP.Addr == "" {
		errs = append(errs, "http.addr must not be empty")
	}
	if c.LLM.Retry.MaxAttempts < 0 {
		errs = append(errs, "llm.retry.max_attempts must not be negative")
	}
	if c.LLM.Retry.Multiplier != 0 && c.LLM.Retry.Multiplier < 1 {
		errs = append(errs, "llm.retry.multiplier must be at least 1")
	}
	if c.LLM.Timeout < 0 {
		errs = append(errs, "llm.timeout must not be negative")
	}
	if c.Sheets.Worksheet == "" {
		errs = append(errs, "sheets.worksheet must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
