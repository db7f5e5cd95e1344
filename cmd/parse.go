package cmd

import (
	"errors"
	"fmt"
	"strings"
	"worklog/pkg/temporal"
	"worklog/pkg/terrors"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dateCmd, timeCmd, durationCmd)
	setDateCmdFlags()
	setDurationCmdFlags()
}

func joinArgs(args []string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", terrors.ErrNoArgsProvided
	}
	return text, nil
}

// parseDateAccepting resolves an ambiguous numeric date with the 1-based
// candidate in accept; with accept 0 the candidates are listed and the
// ambiguity is returned
func parseDateAccepting(cmd *cobra.Command, s *session, text string, accept int) (temporal.Date, error) {
	d, err := temporal.ParseDate(text, s.today, &s.prefs)
	var amb *temporal.AmbiguousDateError
	if !errors.As(err, &amb) {
		return d, err
	}
	if accept >= 1 && accept <= len(amb.Candidates) {
		return s.prefs.Adopt(amb.Candidates[accept-1]), nil
	}
	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "'%s' does not fit the %s date format; rerun with --accept to pick:\n", amb.Text, s.prefs.Date.Layout())
	for i, c := range amb.Candidates {
		fmt.Fprintf(out, "  %d) %s as %s\n", i+1, temporal.FormatDate(c.Date, c.Format, false), c.Format.Layout())
	}
	return temporal.Date{}, err
}

var dateCmd = &cobra.Command{
	Use:   "date <text>... [--accept=<n>] [--short]",
	Short: "parse a date",
	Long: `date <text>... [--accept=<n>] [--short]
  parses a numeric date ("3/15", "15.03.2024") or a phrase
  ("tomorrow", "next friday", "the 15th of march 2024").
  a numeric date that only fits another date format lists the
  readings; --accept picks one and switches the date format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := joinArgs(args)
		if err != nil {
			return err
		}
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		accept, _ := cmd.Flags().GetInt("accept")
		d, err := parseDateAccepting(cmd, s, text, accept)
		if err != nil {
			return err
		}
		short, _ := cmd.Flags().GetBool("short")
		fmt.Fprintln(cmd.OutOrStdout(), s.formatDate(d, short))
		return s.commit()
	},
}

func setDateCmdFlags() {
	dateCmd.Flags().Int("accept", 0, "pick the n-th reading of an ambiguous numeric date")
	dateCmd.Flags().Bool("short", false, "print the short numeric form")
}

var timeCmd = &cobra.Command{
	Use:   "time <text>...",
	Short: "parse a time of day",
	Long: `time <text>...
  parses "9:30", "930pm", "noon", "quarter to five",
  "half past nine in the evening" and similar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := joinArgs(args)
		if err != nil {
			return err
		}
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		c, err := temporal.ParseTime(text, &s.prefs)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), temporal.FormatClock(c, s.prefs.Time))
		return s.commit()
	},
}

var durationCmd = &cobra.Command{
	Use:   "duration <text>... [--start=<time>]",
	Short: "parse a duration",
	Long: `duration <text>... [--start=<time>]
  parses "ninety-five minutes", "2 hours and a half", "1h30m" or "max".
  with --start, text that reads as a time is taken as the end time
  and the span from start to it is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := joinArgs(args)
		if err != nil {
			return err
		}
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		var d temporal.Duration
		if start, _ := cmd.Flags().GetString("start"); start != "" {
			c, err := temporal.ParseTime(start, &s.prefs)
			if err != nil {
				return terrors.ErrorArgParse("start", err)
			}
			d, err = temporal.ParseDuration(text, c, &s.prefs)
			if err != nil {
				return err
			}
		} else if d, err = temporal.ParseDurationAbsolute(text); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.String())
		return s.commit()
	},
}

func setDurationCmdFlags() {
	durationCmd.Flags().String("start", "", "start time the text is measured from")
}
