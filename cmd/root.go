package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/precis/internal/config"
	"github.com/abhisek/precis/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "precis",
	Short: "English summary assistant for teachers",
	Long: `precis helps Korean high-school English teachers write 15-20 word summaries
of reading passages. It extracts keywords, drafts a reference summary pitched
at the curriculum level, reviews the teacher's own summary against the basic
vocabulary lists and collects a short research survey.

Set one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or
OPENROUTER_API_KEY (or the llm section of the config file) to enable
summaries and feedback.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides PRECIS_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PRECIS_DB env var)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(curriculumCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(surveyCmd)
	rootCmd.AddCommand(sheetsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, if any.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db.path from config, then PRECIS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}
