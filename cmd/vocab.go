package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Show how the basic vocabulary lists were loaded",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, 0, "error")
		if err != nil {
			return err
		}
		defer e.close()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-6s  %-15s  %-7s  %6s  %s\n", "List", "Status", "Enc", "Words", "Source")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, r := range e.vocab.Reports() {
			fmt.Fprintf(out, "%-6s  %-15s  %-7s  %6d  %s\n", r.Era, r.Status, r.Encoding, r.Words, r.Source)
			if r.Err != nil {
				fmt.Fprintf(out, "        %v\n", r.Err)
			}
		}

		o := e.vocab.Overlap()
		fmt.Fprintf(out, "\nUnion %d · common %d · 2015 only %d · 2022 only %d\n",
			o.TotalUnion, o.Common, o.OnlyEraA, o.OnlyEraB)
		if e.vocab.Degraded() {
			fmt.Fprintf(out, "\nSet vocab.dir (PRECIS_VOCAB__DIR) to the folder holding %q and %q.\n",
				vocab.DefaultEraAFile, vocab.DefaultEraBFile)
		}
		return nil
	},
}

var vocabLookupCmd = &cobra.Command{
	Use:   "lookup <word>...",
	Short: "Check which lists contain each word",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, 0, "error")
		if err != nil {
			return err
		}
		defer e.close()

		out := cmd.OutOrStdout()
		yes := func(ok bool) string {
			if ok {
				return "✓"
			}
			return "·"
		}
		fmt.Fprintf(out, "%-20s  %4s  %4s\n", "Word", "2015", "2022")
		for _, w := range args {
			fmt.Fprintf(out, "%-20s  %4s  %4s\n", w,
				yes(e.vocab.Era(grade.EraA).Contains(w)),
				yes(e.vocab.Era(grade.EraB).Contains(w)))
		}
		return nil
	},
}

func init() {
	vocabCmd.AddCommand(vocabLookupCmd)
}
