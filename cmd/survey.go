package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/precis/internal/survey"
)

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Report on collected research survey responses",
}

// surveySource reads from the spreadsheet when it is configured, else from
// the local store. --local forces the store.
func surveySource(cmd *cobra.Command) (survey.Source, *env, error) {
	e, err := newEnv(cmd, needStore|needSurvey, "warn")
	if err != nil {
		return nil, nil, err
	}
	if local, _ := cmd.Flags().GetBool("local"); local {
		return survey.NewLocalRecorder(e.store.SurveyRepo()), e, nil
	}
	return e.surveySource, e, nil
}

var surveyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize responses by school type, grade and TAM category",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, e, err := surveySource(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		records, err := src.Records(cmd.Context())
		if err != nil {
			return fmt.Errorf("read survey responses: %w", err)
		}
		st := survey.Summarize(records)
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd, st)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Responses: %d\n", st.Total)
		if st.Total == 0 {
			return nil
		}
		fmt.Fprintf(out, "Latest:    %s\n", st.Latest)

		printCounts := func(title string, m map[string]int) {
			fmt.Fprintf(out, "\n%s\n", title)
			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "  %-24s %d\n", k, m[k])
			}
		}
		printCounts("School type", st.SchoolTypes)
		printCounts("Grade", st.GradeLevels)

		fmt.Fprintln(out, "\nTAM averages")
		for _, c := range survey.Categories {
			avg := st.Averages[c.Code]
			bar := strings.Repeat("█", int(avg*4+0.5))
			fmt.Fprintf(out, "  %-5s %-12s %4.2f  %s\n", c.Code, c.Name, avg, bar)
		}
		return nil
	},
}

var surveyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every response as CSV in spreadsheet column order",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, e, err := surveySource(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		records, err := src.Records(cmd.Context())
		if err != nil {
			return fmt.Errorf("read survey responses: %w", err)
		}

		w := cmd.OutOrStdout()
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			defer f.Close()
			w = f
		}

		cw := csv.NewWriter(w)
		if err := cw.Write(survey.Headers); err != nil {
			return err
		}
		row := make([]string, len(survey.Headers))
		for _, rec := range records {
			for i, h := range survey.Headers {
				row[i] = rec[h]
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	},
}

func init() {
	for _, c := range []*cobra.Command{surveyStatsCmd, surveyExportCmd} {
		c.Flags().Bool("local", false, "Read the local database even when Google Sheets is configured")
	}
	surveyStatsCmd.Flags().Bool("json", false, "Print as JSON")
	surveyExportCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	surveyCmd.AddCommand(surveyStatsCmd)
	surveyCmd.AddCommand(surveyExportCmd)
}
