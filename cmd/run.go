package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/precis/internal/app"
	"github.com/abhisek/precis/internal/screens/home"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := newEnv(cmd, needStore|needLLM|needSurvey|logToFile, "info")
	if err != nil {
		return err
	}
	defer e.close()

	if e.llmErr != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", e.llmErr)
		fmt.Fprintln(os.Stderr, "Summaries and feedback will be unavailable.")
	}
	if e.vocab.Degraded() {
		fmt.Fprintln(os.Stderr, "Some vocabulary lists could not be loaded; see `precis vocab`.")
	}

	deps := home.Deps{
		Runner:     e.runner(),
		Curriculum: e.curriculum,
		Vocab:      e.vocab,
		Events:     e.events,
	}
	if e.provider != nil {
		deps.Provider = e.cfg.LLMConfig().Provider
	}

	skip, _ := cmd.Flags().GetBool("no-splash")
	e.log.Info("starting tui", "provider", deps.Provider, "vocab_degraded", e.vocab.Degraded())
	return app.Run(app.Options{
		Home:        deps,
		Status:      e.providerStatus(),
		SkipWelcome: skip,
	})
}

func init() {
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
}
