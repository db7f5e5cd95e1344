package cmd

import (
	"errors"
	"fmt"
	"worklog/config"
	"worklog/pkg/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:          "worklog",
	Short:        fmt.Sprintf("worklog %s: the date, time, duration and recurrence engine of a console work log", version),
	SilenceUsage: true,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Close()
	},
}

func init() {
	rootCmd.SetHelpTemplate(`
{{ with (or .Long .Short) }}{{ . | trimTrailingWhitespaces }}

{{ end}}Usage:{{if .Runnable}}
  {{ .UseLine }}{{end}}{{if .HasAvailableSubCommands}}
  {{ .CommandPath }} [command]{{end}}{{if gt (len .Aliases) 0 }}

Aliases:
  {{ .NameAndAliases }}{{end}}{{if .HasExample}}

Examples:
{{ .Example }}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:
{{- range .Commands }}
  {{ rpad .NameAndAliases 20 }} {{ .Short }}
{{- end}}{{end}}{{if .HasAvailableFlags}}{{if not .Parent}}

Flags:
{{ .Flags.FlagUsages | trimTrailingWhitespaces }}{{else}}

{{ if .HasInheritedFlags }}Local {{end}}Flags:
{{ .LocalFlags.FlagUsages | trimTrailingWhitespaces }}{{if .HasInheritedFlags}}

Global Flags:
{{ .InheritedFlags.FlagUsages | trimTrailingWhitespaces }}{{end}}{{end}}{{end}}
`)
	cobra.OnInitialize(func() {
		arg, err := rootCmd.PersistentFlags().GetString("config")
		cobra.CheckErr(err)
		cobra.CheckErr(config.InitViper(arg))
		cobra.CheckErr(errors.Join(config.Validate()...))
		cobra.CheckErr(logging.Initialize(config.LoggingOptions(viper.GetBool("debug"))))
	})
	rootCmd.PersistentFlags().StringP("config", "c", "", "config directory holding worklog.yaml")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debugging mode")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	rootCmd.PersistentFlags().String("today", "", "pretend today is this date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().String("date-format", "", "date order for this run: middle, little or big")
	rootCmd.PersistentFlags().Int("time-format", 0, "clock for this run: 12 or 24")
	rootCmd.PersistentFlags().Bool("no-save", false, "do not write format changes back to the config")
}

func Execute() error {
	return rootCmd.Execute()
}
