package config

import (
	"strings"
	"text/template"
)

const (
	DefaultMaxSkip = 30
	// zap levels: -1 debug .. 5 fatal
	defaultConsoleLevel = 1
	defaultFileLevel    = -1
)

var DefaultConfig string = `
logging:
  console-level: {{ .ConsoleLevel }}
  file-level: {{ .FileLevel }}

format:
  # one of "", middle, little, big; unset until the first numeric date
  date: ""
  # 0 (unset), 12 or 24
  time: 0
  short-dates: false

recurrence:
  max-skip: {{ .MaxSkip }}
`

func init() {
	tmpl, err := template.New("config").Parse(DefaultConfig)
	if err != nil {
		panic("error parsing default config template: " + err.Error())
	}

	var str strings.Builder
	err = tmpl.Execute(&str, struct {
		ConsoleLevel int
		FileLevel    int
		MaxSkip      int
	}{defaultConsoleLevel, defaultFileLevel, DefaultMaxSkip})
	if err != nil {
		panic("error executing default config template: " + err.Error())
	}
	DefaultConfig = str.String()
}
