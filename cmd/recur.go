package cmd

import (
	"fmt"
	"worklog/config"
	"worklog/pkg/recurrence"
	"worklog/pkg/terrors"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recurCmd)
	setRecurCmdFlags()
}

func intervalFromFlags(cmd *cobra.Command) (recurrence.Interval, error) {
	var iv recurrence.Interval
	var err error
	flags := cmd.Flags()

	unit, _ := flags.GetString("unit")
	if iv.Unit, err = recurrence.ParseUnit(unit); err != nil {
		return iv, terrors.ErrorArgParse("unit", err)
	}
	iv.Skip, _ = flags.GetInt("skip")
	if limit := config.MaxSkip(); iv.Skip < 1 || iv.Skip > limit {
		return iv, fmt.Errorf("%w: %w: skip must be between 1 and %d not '%d'", terrors.ErrFlag, terrors.ErrValue, limit, iv.Skip)
	}
	if val, _ := flags.GetString("days"); val != "" {
		if iv.Weekdays, err = recurrence.ParseWeekdays(val); err != nil {
			return iv, terrors.ErrorArgParse("days", err)
		}
	}
	if val, _ := flags.GetString("weeks"); val != "" {
		if iv.OrdinalWeeks, err = recurrence.ParseOrdinalWeeks(val); err != nil {
			return iv, terrors.ErrorArgParse("weeks", err)
		}
	}
	if val, _ := flags.GetString("dates"); val != "" {
		if iv.MonthDates, err = recurrence.ParseMonthDates(val); err != nil {
			return iv, terrors.ErrorArgParse("dates", err)
		}
	}
	return iv, nil
}

var recurCmd = &cobra.Command{
	Use:   "recur --until=<date> [--on=<date>] [--unit=<unit>] [--skip=<n>] [--days=<days>] [--weeks=<ordinals>] [--dates=<dates>] [--rrule]",
	Short: "list the dates a recurring task falls on",
	Long: `recur --until=<date> [--on=<date>] [--unit=<unit>] [--skip=<n>] [--days=<days>] [--weeks=<ordinals>] [--dates=<dates>] [--rrule]
  expands a recurrence starting at --on (default today) up to and
  including --until. dates are parsed like the date command.
    --unit   daily, weekly or monthly
    --skip   every n-th day, week or month
    --days   weekdays, e.g. "mon, thu"
    --weeks  with --days on a monthly unit: "1st, 3rd"
    --dates  monthly days of month, e.g. "1, 15, last, -2"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		iv, err := intervalFromFlags(cmd)
		if err != nil {
			return err
		}

		origin := s.today
		if val, _ := cmd.Flags().GetString("on"); val != "" {
			if origin, err = parseDateAccepting(cmd, s, val, 0); err != nil {
				return terrors.ErrorArgParse("on", err)
			}
		}
		val, _ := cmd.Flags().GetString("until")
		if val == "" {
			return terrors.NewArgNotProvidedError("until")
		}
		if iv.End, err = parseDateAccepting(cmd, s, val, 0); err != nil {
			return terrors.ErrorArgParse("until", err)
		}

		dates, err := iv.Occurrences(origin)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, iv.Describe(origin))
		for _, d := range dates {
			fmt.Fprintln(out, s.formatDate(d, true))
		}
		if len(dates) == 0 {
			fmt.Fprintln(out, "no occurrences")
		}
		if rr, _ := cmd.Flags().GetBool("rrule"); rr {
			r, err := iv.RRule(origin, iv.End)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, r.String())
		}
		return s.commit()
	},
}

func setRecurCmdFlags() {
	recurCmd.Flags().String("on", "", "origin date of the task")
	recurCmd.Flags().String("until", "", "last date occurrences may fall on")
	recurCmd.Flags().String("unit", "weekly", "daily, weekly or monthly")
	recurCmd.Flags().Int("skip", 1, "every n-th unit")
	recurCmd.Flags().String("days", "", "weekdays")
	recurCmd.Flags().String("weeks", "", "ordinal weeks of a monthly recurrence")
	recurCmd.Flags().String("dates", "", "days of month of a monthly recurrence")
	recurCmd.Flags().Bool("rrule", false, "also print the RFC 5545 rule")
}
