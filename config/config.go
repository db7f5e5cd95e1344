package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"worklog/pkg/logging"
	"worklog/pkg/temporal"
	"worklog/pkg/terrors"
	"worklog/pkg/utils"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "WORKLOG"
	EnvCFG    = "WORKLOG_CONFIG"
	fileName  = "worklog"
	fileType  = "yaml"
)

var DefaultPath = "~/.worklog"

var configPath string

func ConfigPath() string {
	return configPath
}

func ConfigFile() string {
	return filepath.Join(configPath, fileName+"."+fileType)
}

func setConfigPath(path string) error {
	path, err := utils.NormalizePath(path)
	if err != nil {
		return fmt.Errorf("%w: config path '%s': %w", terrors.ErrConf, path, err)
	}
	configPath = path
	return nil
}

// SelectConfigFile picks the config dir: the flag, then $WORKLOG_CONFIG,
// then DefaultPath.
func SelectConfigFile(arg string) error {
	var path string
	env := os.Getenv(EnvCFG)
	if arg != "" {
		path = arg
	} else if env != "" {
		path = env
	} else {
		path = DefaultPath
	}
	return setConfigPath(path)
}

func InitViper(arg string) error {
	err := SelectConfigFile(arg)
	if err != nil {
		return err
	}
	path := ConfigPath()
	viper.SetConfigType(fileType)
	viper.SetConfigName(fileName)
	viper.AddConfigPath(path)
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	err = viper.ReadConfig(bytes.NewReader([]byte(DefaultConfig)))
	if err != nil {
		return fmt.Errorf("%w: failed parsing default configurations: %w", terrors.ErrParse, err)
	}
	err = viper.MergeInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("%w: %w", terrors.ErrConf, err)
		}
	}
	err = os.MkdirAll(path, 0755)
	if err != nil {
		return err
	}
	err = viper.SafeWriteConfigAs(ConfigFile())
	var exists viper.ConfigFileAlreadyExistsError
	if errors.As(err, &exists) {
		return nil
	}
	return err
}

// Prefs builds the parser format context from format.date and format.time.
func Prefs() (temporal.Prefs, error) {
	df, err := temporal.ParseDateFormat(viper.GetString("format.date"))
	if err != nil {
		return temporal.Prefs{}, fmt.Errorf("%w: format.date: %w", terrors.ErrConf, err)
	}
	tf, err := temporal.ParseTimeFormat(viper.GetInt("format.time"))
	if err != nil {
		return temporal.Prefs{}, fmt.Errorf("%w: format.time: %w", terrors.ErrConf, err)
	}
	return temporal.Prefs{Date: df, Time: tf}, nil
}

// SavePrefs writes p back when parsing changed it.
func SavePrefs(p temporal.Prefs) error {
	old, err := Prefs()
	if err == nil && old == p {
		return nil
	}
	viper.Set("format.date", p.Date.String())
	viper.Set("format.time", int(p.Time))
	if err := viper.WriteConfigAs(ConfigFile()); err != nil {
		return fmt.Errorf("%w: saving format preferences: %w", terrors.ErrConf, err)
	}
	logging.Logger.Debugw("format preferences saved", "date", p.Date.String(), "time", int(p.Time), "file", ConfigFile())
	return nil
}

func ShortDates() bool {
	return viper.GetBool("format.short-dates")
}

func MaxSkip() int {
	return viper.GetInt("recurrence.max-skip")
}

func LoggingOptions(debug bool) logging.Options {
	return logging.Options{
		Dir:          ConfigPath(),
		ConsoleLevel: viper.GetInt("logging.console-level"),
		FileLevel:    viper.GetInt("logging.file-level"),
		Debug:        debug,
	}
}
