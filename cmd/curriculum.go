package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/precis/internal/curriculum"
)

var curriculumCmd = &cobra.Command{
	Use:   "curriculum",
	Short: "Browse the curriculum descriptors used to pitch summaries",
}

var curriculumListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every descriptor",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := curriculum.LoadDefault()
		if err != nil {
			return fmt.Errorf("load curriculum: %w", err)
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-22s  %-6s  %-20s  %-5s  %s\n", "Key", "Grade", "Edition", "Year", "Subjects")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		all := cat.All()
		for _, d := range all {
			fmt.Fprintf(out, "%-22s  %-6s  %-20s  %-5s  %s\n",
				d.Key, d.Grade.Label(), d.Edition, d.Year, truncate(strings.Join(d.Subjects, ", "), 40))
		}
		fmt.Fprintf(out, "\n%d descriptors\n", len(all))
		return nil
	},
}

var curriculumShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the descriptor and writing guideline for a grade and track",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, t, err := gradeFlags(cmd)
		if err != nil {
			return err
		}
		cat, err := curriculum.LoadDefault()
		if err != nil {
			return fmt.Errorf("load curriculum: %w", err)
		}
		d, err := cat.Resolve(g, t)
		if errors.Is(err, curriculum.ErrNotFound) {
			return fmt.Errorf("no descriptor for %s; summaries for it use generic guidance", curriculum.Key(g, t))
		}
		if err != nil {
			return err
		}
		guide, _ := cat.Guideline(g)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd, struct {
				Descriptor *curriculum.Descriptor     `json:"descriptor"`
				Guideline  curriculum.WritingGuideline `json:"guideline"`
			}{d, guide})
		}

		out := cmd.OutOrStdout()
		sep := strings.Repeat("─", 60)
		field := func(name, v string) {
			if v != "" {
				fmt.Fprintf(out, "%-18s %s\n", name+":", v)
			}
		}

		field("Key", d.Key)
		field("Edition", d.Edition+" ("+d.Year+")")
		field("Subjects", strings.Join(d.Subjects, ", "))
		field("Main achievement", d.MainAchievement)
		field("Topic range", d.TopicRange)
		field("Summary level", d.SummaryLevel)
		field("Vocabulary", d.VocabularyLevel)
		field("Vocabulary list", d.VocabularyReference)
		field("Grammar", d.GrammarComplexity)
		field("Familiarity", d.TextFamiliarity)

		if r := d.Rubric(); len(r) > 0 {
			fmt.Fprintf(out, "\n%s\nAchievement levels\n%s\n", sep, sep)
			for _, l := range r {
				fmt.Fprintf(out, "  %s  %s\n", l.Level, l.Text)
			}
		}
		if s := d.Standards(); len(s) > 0 {
			fmt.Fprintf(out, "\n%s\nAchievement standards\n%s\n", sep, sep)
			for _, st := range s {
				fmt.Fprintf(out, "  %s  %s\n", st.Subject, st.Display())
			}
		}
		if len(d.KeyFeatures) > 0 {
			fmt.Fprintf(out, "\n%s\nKey features\n%s\n", sep, sep)
			for _, f := range d.KeyFeatures {
				fmt.Fprintf(out, "  - %s\n", f)
			}
		}
		if d.AssessmentTips != "" {
			fmt.Fprintf(out, "\nAssessment tips: %s\n", d.AssessmentTips)
		}

		fmt.Fprintf(out, "\n%s\nWriting guideline\n%s\n", sep, sep)
		field("Length", guide.LengthTarget)
		field("Sentences", guide.SentenceStructure)
		field("Vocabulary", guide.VocabularyFocus)
		field("Content", guide.ContentFocus)
		field("Level", guide.LevelDescriptor)
		return nil
	},
}

func init() {
	addGradeFlags(curriculumShowCmd)
	curriculumShowCmd.Flags().Bool("json", false, "Print as JSON")

	curriculumCmd.AddCommand(curriculumListCmd)
	curriculumCmd.AddCommand(curriculumShowCmd)
}
