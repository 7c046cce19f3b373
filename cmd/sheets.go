package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/precis/internal/sheets"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Manage the Google Sheets survey destination",
}

// sheetsClient connects using the sheets section of the config.
func sheetsClient(cmd *cobra.Command) (*sheets.Client, *env, error) {
	e, err := newEnv(cmd, 0, "warn")
	if err != nil {
		return nil, nil, err
	}
	if missing := e.cfg.Sheets.Missing(); len(missing) > 0 {
		e.close()
		return nil, nil, fmt.Errorf("google sheets not configured; set %s", strings.Join(missing, ", "))
	}
	c, err := sheets.New(cmd.Context(), e.cfg.Sheets, e.log)
	if err != nil {
		e.close()
		return nil, nil, fmt.Errorf("connect to google sheets: %w", err)
	}
	return c, e, nil
}

var sheetsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the connection and report what the spreadsheet contains",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, e, err := sheetsClient(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		d, err := c.Check(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Spreadsheet: %s\n", d.Title)
		fmt.Fprintf(out, "Worksheets:  %s\n", strings.Join(d.Worksheets, ", "))
		if !d.HasSurvey {
			fmt.Fprintf(out, "\nWorksheet %q does not exist yet; run `precis sheets init` or submit a survey to create it.\n",
				e.cfg.Sheets.Worksheet)
			return nil
		}
		fmt.Fprintf(out, "Responses:   %d\n", d.Records)
		return nil
	},
}

var sheetsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the survey worksheet, backing up one with an outdated header",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, e, err := sheetsClient(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		if err := c.EnsureWorksheet(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Worksheet %q is ready.\n", e.cfg.Sheets.Worksheet)
		return nil
	},
}

func init() {
	sheetsCmd.AddCommand(sheetsCheckCmd)
	sheetsCmd.AddCommand(sheetsInitCmd)
}
