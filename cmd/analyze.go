package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/precis/internal/keywords"
	"github.com/abhisek/precis/internal/summarize"
	"github.com/abhisek/precis/internal/vocab"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [summary...]",
	Short: "Analyze a summary's vocabulary against the basic word lists",
	Long: `Counts how many distinct words of a summary appear in the basic vocabulary
list for the grade (2022 list for 고1, 2015 list for 고2/고3) and in each
list separately. The summary comes from the arguments, --file, or stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args, "file")
		if err != nil {
			return err
		}
		g, _, err := gradeFlags(cmd)
		if err != nil {
			return err
		}
		e, err := newEnv(cmd, 0, "warn")
		if err != nil {
			return err
		}
		defer e.close()

		st := e.vocab.AnalyzeForGrade(text, g)
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd, st)
		}

		out := cmd.OutOrStdout()
		n := summarize.CountWords(text)
		mark := "✓"
		if !summarize.WithinTarget(n) {
			mark = "!"
		}
		fmt.Fprintf(out, "Grade:        %s\n", g.Label())
		fmt.Fprintf(out, "Words:        %d %s (target %d-%d)\n", n, mark, summarize.MinWords, summarize.MaxWords)
		printStats(cmd, st)
		return nil
	},
}

func printStats(cmd *cobra.Command, st vocab.Stats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Unique words: %d\n", st.TotalUniqueWords)
	fmt.Fprintf(out, "Target list:  %d (%.1f%%)\n", st.TargetWords, st.TargetRatio*100)
	fmt.Fprintf(out, "2015 list:    %d (%.1f%%)\n", st.EraAWords, st.EraARatio*100)
	fmt.Fprintf(out, "2022 list:    %d (%.1f%%)\n", st.EraBWords, st.EraBRatio*100)
	if len(st.NonTargetExamples) > 0 {
		fmt.Fprintf(out, "Outside list: %s\n", strings.Join(st.NonTargetExamples, ", "))
	}
	if st.Degraded {
		fmt.Fprintln(out, "\nWarning: a word list could not be loaded; ratios are incomplete.")
	}
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords [passage...]",
	Short: "Extract the most frequent content words of a passage",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd, args, "file")
		if err != nil {
			return err
		}
		top, _ := cmd.Flags().GetInt("top")
		words := keywords.Extract(text, top)

		if translate, _ := cmd.Flags().GetBool("translate"); translate && len(words) > 0 {
			e, err := newEnv(cmd, needStore|needLLM, "warn")
			if err != nil {
				return err
			}
			defer e.close()
			if err := e.requireGenerator(); err != nil {
				return err
			}
			glosses, err := e.generator.TranslateKeywords(cmd.Context(), words)
			if err != nil {
				return fmt.Errorf("translate keywords: %w", err)
			}
			for _, w := range words {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s  %s\n", w, glosses[w])
			}
			return nil
		}

		if len(words) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No keywords found.")
			return nil
		}
		for _, w := range words {
			fmt.Fprintln(cmd.OutOrStdout(), w)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringP("file", "f", "", "Read the summary from a file (- for stdin)")
	analyzeCmd.Flags().Bool("json", false, "Print the statistics as JSON")
	addGradeFlags(analyzeCmd)

	keywordsCmd.Flags().StringP("file", "f", "", "Read the passage from a file (- for stdin)")
	keywordsCmd.Flags().IntP("top", "n", 5, "Number of keywords")
	keywordsCmd.Flags().Bool("translate", false, "Add Korean glosses (calls the LLM)")
}
