package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/precis/internal/grade"
)

// readText returns the text named by --file, else the positional args
// joined with spaces, else stdin. "-" as the file reads stdin.
func readText(cmd *cobra.Command, args []string, flag string) (string, error) {
	path, _ := cmd.Flags().GetString(flag)
	switch {
	case path == "-":
		return readAll(cmd.InOrStdin())
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		return readAll(cmd.InOrStdin())
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// gradeFlags parses --grade and --track. The track is dropped for grades
// that do not use one.
func gradeFlags(cmd *cobra.Command) (grade.Grade, grade.Track, error) {
	gs, _ := cmd.Flags().GetString("grade")
	g, err := grade.Parse(gs)
	if err != nil {
		return grade.Unknown, grade.NoTrack, err
	}
	ts, _ := cmd.Flags().GetString("track")
	t, err := grade.ParseTrack(ts)
	if err != nil {
		return grade.Unknown, grade.NoTrack, err
	}
	if !g.RequiresTrack() {
		t = grade.NoTrack
	} else if t == grade.NoTrack {
		t = grade.General
	}
	return g, t, nil
}

func addGradeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("grade", "g", "고1", "Grade level: 고1, 고2, 고3 (or tier1..tier3)")
	cmd.Flags().StringP("track", "t", "", "Course track for 고2/고3: general or advanced (default general)")
}

// printJSON writes v to the command's stdout, indented.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
