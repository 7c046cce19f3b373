package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/llm"
	"github.com/abhisek/precis/internal/vocab"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	for _, k := range []string{"OPENAI_API_KEY", "GEMINI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Log.Mode)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "TAM_Survey", cfg.Sheets.Worksheet)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "precis.yaml")
	yaml := `
log:
  mode: prod
vocab:
  dir: /srv/vocab
llm:
  provider: anthropic
  timeout: 30s
  anthropic:
    model: claude-sonnet
  retry:
    max_attempts: 5
sheets:
  spreadsheet_id: sheet-123
http:
  addr: ":9000"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("PRECIS_HTTP__ADDR", ":9100")
	t.Setenv("PRECIS_LLM__ANTHROPIC__API_KEY", "sk-ant-test")
	t.Setenv("PRECIS_DB", "/tmp/ignored.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Log.Mode)
	assert.Equal(t, ":9100", cfg.HTTP.Addr, "env overrides file")
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 5, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, 2.0, cfg.LLM.Retry.Multiplier, "untouched defaults survive")
	assert.Equal(t, "claude-sonnet", cfg.LLM.Anthropic.Model)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.Model)
	assert.Equal(t, "sheet-123", cfg.Sheets.SpreadsheetID)

	lc := cfg.LLMConfig()
	assert.Equal(t, llm.ProviderAnthropic, lc.Provider)
	assert.Equal(t, "sk-ant-test", lc.Anthropic.APIKey)
	assert.NoError(t, lc.Validate())

	a, b := cfg.Vocab.Paths()
	assert.Equal(t, filepath.Join("/srv/vocab", vocab.DefaultEraAFile), a)
	assert.Equal(t, filepath.Join("/srv/vocab", vocab.DefaultEraBFile), b)
}

func TestLoad_ConfigFromEnvVar(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  addr: \":7000\"\n"), 0o600))
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.HTTP.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PRECIS_LOG__MODE", "verbose")
	t.Setenv("PRECIS_LLM__RETRY__MULTIPLIER", "0.5")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.mode")
	assert.Contains(t, err.Error(), "multiplier")
}

func TestLLMConfig_DiscoversEnvKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := Default()
	lc := cfg.LLMConfig()
	assert.Equal(t, llm.ProviderGemini, lc.Provider)
	assert.Equal(t, "g-key", lc.Gemini.APIKey)
	assert.Equal(t, "gemini-flash", lc.Gemini.Model)
}

func TestVocabPaths_ExplicitWins(t *testing.T) {
	v := VocabConfig{Dir: "/data", EraAPath: "/a.txt"}
	a, b := v.Paths()
	assert.Equal(t, "/a.txt", a)
	assert.Equal(t, filepath.Join("/data", vocab.DefaultEraBFile), b)
}

func TestSheetsConfig_Missing(t *testing.T) {
	assert.Len(t, SheetsConfig{}.Missing(), 2)
	assert.False(t, SheetsConfig{SpreadsheetID: "x"}.Enabled())
	assert.True(t, SheetsConfig{SpreadsheetID: "x", CredentialsJSON: "{}"}.Enabled())
}
