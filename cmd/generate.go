package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/precis/internal/summarize"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [passage...]",
	Short: "Draft a 15-20 word reference summary of a passage",
	RunE: func(cmd *cobra.Command, args []string) error {
		passage, err := readText(cmd, args, "file")
		if err != nil {
			return err
		}
		g, t, err := gradeFlags(cmd)
		if err != nil {
			return err
		}
		e, err := newEnv(cmd, needStore|needLLM, "warn")
		if err != nil {
			return err
		}
		defer e.close()
		if err := e.requireGenerator(); err != nil {
			return err
		}

		s, err := e.generator.Summarize(cmd.Context(), summarize.SummaryInput{Passage: passage, Grade: g, Track: t})
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd, s)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, s.Text)
		fmt.Fprintf(out, "\n%d words%s\n", s.WordCount, targetNote(s.WithinTarget))
		if s.Generic {
			fmt.Fprintln(out, "No curriculum descriptor matched; generic guidance was used.")
		}
		return nil
	},
}

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Review a teacher-written summary of a passage",
	Long: `Scores a summary on the eight review criteria, suggests a revision and
reports its vocabulary against the basic word lists. The passage is read
from --passage (a file, or - for stdin) and the summary from --summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		passage, err := readText(cmd, nil, "passage")
		if err != nil {
			return err
		}
		summary, _ := cmd.Flags().GetString("summary")
		g, t, err := gradeFlags(cmd)
		if err != nil {
			return err
		}
		e, err := newEnv(cmd, needStore|needLLM, "warn")
		if err != nil {
			return err
		}
		defer e.close()
		if err := e.requireGenerator(); err != nil {
			return err
		}

		fb, err := e.generator.Feedback(cmd.Context(), summarize.FeedbackInput{
			Passage:        passage,
			TeacherSummary: summary,
			Grade:          g,
			Track:          t,
		})
		if err != nil {
			return fmt.Errorf("feedback: %w", err)
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd, fb)
		}

		out := cmd.OutOrStdout()
		sep := strings.Repeat("─", 60)
		fmt.Fprintf(out, "Summary: %s\n%d words%s\n\n", summary, fb.WordCount, targetNote(fb.WithinTarget))
		fmt.Fprintf(out, "%s\nCriteria (average %.1f / 5)\n%s\n", sep, fb.AverageScore(), sep)
		for _, c := range fb.Criteria {
			fmt.Fprintf(out, "%d/5  %s\n", c.Score, c.Name)
			if c.Comment != "" {
				fmt.Fprintf(out, "      %s\n", c.Comment)
			}
			if c.Suggestion != "" {
				fmt.Fprintf(out, "      → %s\n", c.Suggestion)
			}
		}
		if fb.Overall != "" {
			fmt.Fprintf(out, "\nOverall: %s\n", fb.Overall)
		}
		if fb.Revised != "" {
			fmt.Fprintf(out, "Revised: %s\n", fb.Revised)
		}
		fmt.Fprintf(out, "\n%s\nVocabulary\n%s\n", sep, sep)
		printStats(cmd, fb.Vocabulary)
		return nil
	},
}

func targetNote(within bool) string {
	if within {
		return ""
	}
	return fmt.Sprintf(" (outside the %d-%d word target)", summarize.MinWords, summarize.MaxWords)
}

func init() {
	summarizeCmd.Flags().StringP("file", "f", "", "Read the passage from a file (- for stdin)")
	summarizeCmd.Flags().Bool("json", false, "Print as JSON")
	addGradeFlags(summarizeCmd)

	feedbackCmd.Flags().StringP("passage", "p", "-", "Passage file (- for stdin)")
	feedbackCmd.Flags().StringP("summary", "s", "", "The teacher-written summary (required)")
	feedbackCmd.Flags().Bool("json", false, "Print as JSON")
	addGradeFlags(feedbackCmd)
	_ = feedbackCmd.MarkFlagRequired("summary")
}
