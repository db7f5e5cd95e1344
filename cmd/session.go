package cmd

import (
	"time"
	"worklog/config"
	"worklog/pkg/temporal"

	"github.com/spf13/cobra"
)

// session carries what every engine call needs: today's date and the
// format preferences, which are saved back if parsing changed them.
type session struct {
	today  temporal.Date
	prefs  temporal.Prefs
	loaded temporal.Prefs
	save   bool
}

func newSession(cmd *cobra.Command) (*session, error) {
	prefs, err := config.Prefs()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("date-format") {
		val, _ := flags.GetString("date-format")
		if prefs.Date, err = temporal.ParseDateFormat(val); err != nil {
			return nil, err
		}
	}
	if flags.Changed("time-format") {
		val, _ := flags.GetInt("time-format")
		if prefs.Time, err = temporal.ParseTimeFormat(val); err != nil {
			return nil, err
		}
	}

	today := temporal.DateOf(time.Now())
	if val, _ := flags.GetString("today"); val != "" {
		if today, err = temporal.ParseISODate(val); err != nil {
			return nil, err
		}
	}
	noSave, _ := flags.GetBool("no-save")
	return &session{today: today, prefs: prefs, loaded: prefs, save: !noSave}, nil
}

// commit persists preferences changed as a side effect of parsing
func (s *session) commit() error {
	if !s.save || s.prefs == s.loaded {
		return nil
	}
	s.loaded = s.prefs
	return config.SavePrefs(s.prefs)
}

func (s *session) formatDate(d temporal.Date, short bool) string {
	return temporal.FormatDate(d, s.prefs.Date, short || config.ShortDates())
}
