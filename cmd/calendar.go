package cmd

import (
	"fmt"
	"strconv"
	"time"
	"worklog/pkg/lexicon"
	"worklog/pkg/temporal"
	"worklog/pkg/terrors"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.AddCommand(lastDayCmd, nthCmd)
}

func parseMonth(arg string) (time.Month, error) {
	if m, ok := lexicon.MonthName(arg); ok {
		return m, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > 12 {
		return 0, terrors.ErrorArgParse("month", err)
	}
	return time.Month(n), nil
}

// parseYear defaults to the session's year
func parseYear(s *session, args []string) (int, error) {
	if len(args) == 0 {
		return s.today.Year, nil
	}
	y, err := strconv.Atoi(args[0])
	if err != nil || y < 1 || y > 9999 {
		return 0, terrors.ErrorArgParse("year", err)
	}
	return y, nil
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "month arithmetic",
}

var lastDayCmd = &cobra.Command{
	Use:   "lastday <month> [<year>]",
	Short: "print the last day of a month",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		m, err := parseMonth(args[0])
		if err != nil {
			return err
		}
		y, err := parseYear(s, args[1:])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), temporal.LastDayOfMonth(m, y))
		return nil
	},
}

var nthCmd = &cobra.Command{
	Use:   "nth <n> <weekday> <month> [<year>]",
	Short: "print the n-th weekday of a month",
	Long: `nth <n> <weekday> <month> [<year>]
  e.g. "nth 2nd tue march 2024". months without that
  many of the weekday print nothing and exit cleanly.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		n, ok := lexicon.OrdinalWord(args[0])
		if !ok {
			if n, ok = lexicon.Cardinal(args[0]).Int(); !ok {
				return terrors.ErrorArgParse("n", nil)
			}
		}
		wd, ok := lexicon.WeekdayName(args[1])
		if !ok {
			return terrors.ErrorArgParse("weekday", nil)
		}
		m, err := parseMonth(args[2])
		if err != nil {
			return err
		}
		y, err := parseYear(s, args[3:])
		if err != nil {
			return err
		}
		d, ok := temporal.NthWeekdayOfMonth(temporal.Weekday(wd), n, m, y)
		if !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "there is no %s %s in %s %d\n", lexicon.OrdinalName(n), temporal.Weekday(wd), m, y)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.formatDate(d, false))
		return nil
	},
}
