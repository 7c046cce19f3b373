package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/vocab"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	return executeWithVocab(t, t.TempDir(), args...)
}

func executeWithVocab(t *testing.T, vocabDir string, args ...string) string {
	t.Helper()
	t.Setenv("PRECIS_VOCAB__DIR", vocabDir)
	t.Setenv("PRECIS_DB", filepath.Join(t.TempDir(), "precis.db"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestKeywordsCommand(t *testing.T) {
	out := execute(t, "keywords", "--top", "2",
		"Ocean heat drives storms. Warmer ocean water feeds stronger storms, and ocean heat shifts rainfall.")
	assert.Equal(t, "ocean\nheat\n", out)
}

func TestCurriculumShow(t *testing.T) {
	out := execute(t, "curriculum", "show", "--grade", "고1")
	assert.Contains(t, out, "Key:")
	assert.Contains(t, out, "Writing guideline")
}

func TestCurriculumShowNeedsTrackForUpperGrades(t *testing.T) {
	out := execute(t, "curriculum", "show", "--grade", "고2", "--track", "advanced")
	assert.Contains(t, out, "전문교과")
}

func TestAnalyzeWithoutWordLists(t *testing.T) {
	out := execute(t, "analyze", "--grade", "고1", "Warm oceans feed storms")
	assert.Contains(t, out, "Unique words: 4")
	assert.Contains(t, out, "Words:        4 !")
	assert.Contains(t, out, "a word list could not be loaded")
}

func TestAnalyzePrintsPercentages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, vocab.DefaultEraAFile), []byte("happy : 행복한\nmat : 매트\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, vocab.DefaultEraBFile), []byte("cat : 고양이\n"), 0o644))

	out := executeWithVocab(t, dir, "analyze", "--grade", "고2", "The cat sat on the mat. The cat was happy.")
	assert.Contains(t, out, "Unique words: 7")
	assert.Contains(t, out, "Target list:  2 (28.6%)")
	assert.Contains(t, out, "2015 list:    2 (28.6%)")
	assert.Contains(t, out, "2022 list:    1 (14.3%)")
	assert.Contains(t, out, "Outside list: cat, on, sat, the, was")
	assert.NotContains(t, out, "could not be loaded")
}

func TestVocabReportsMissingLists(t *testing.T) {
	out := execute(t, "vocab")
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "PRECIS_VOCAB__DIR")
}

func TestLLMListEmpty(t *testing.T) {
	out := execute(t, "llm", "list")
	assert.Equal(t, "No LLM events found.\n", out)
}

func TestSurveyStatsEmpty(t *testing.T) {
	out := execute(t, "survey", "stats", "--local")
	assert.Equal(t, "Responses: 0\n", out)
}

func TestVersion(t *testing.T) {
	out := execute(t, "version")
	assert.True(t, strings.HasPrefix(out, "precis "), out)
}
