package config

import (
	"fmt"
	"worklog/pkg/temporal"
	"worklog/pkg/terrors"

	"github.com/spf13/viper"
)

// Validate returns every problem found in the loaded configuration.
func Validate() []error {
	var errs []error
	// logging.*
	{
		if err := validateLogLevel("logging.console-level"); err != nil {
			errs = append(errs, err)
		}
		if err := validateLogLevel("logging.file-level"); err != nil {
			errs = append(errs, err)
		}
	}

	// format.*
	{
		if err := validateTypeString("format.date"); err == nil {
			if _, err := temporal.ParseDateFormat(viper.GetString("format.date")); err != nil {
				errs = append(errs, fmt.Errorf("%w: %w: value of 'format.date' must be one of '', 'middle', 'little', 'big' not '%s'", terrors.ErrConf, terrors.ErrValue, viper.GetString("format.date")))
			}
		} else {
			errs = append(errs, err)
		}
		if err := validateTypeInt("format.time"); err == nil {
			if _, err := temporal.ParseTimeFormat(viper.GetInt("format.time")); err != nil {
				errs = append(errs, fmt.Errorf("%w: %w: value of 'format.time' must be one of '0', '12', '24' not '%d'", terrors.ErrConf, terrors.ErrValue, viper.GetInt("format.time")))
			}
		} else {
			errs = append(errs, err)
		}
		if err := validateTypeBool("format.short-dates"); err != nil {
			errs = append(errs, err)
		}
	}

	// recurrence.*
	{
		if err := validateTypeInt("recurrence.max-skip"); err == nil {
			val := viper.GetInt("recurrence.max-skip")
			if val < 1 || val > DefaultMaxSkip {
				errs = append(errs, fmt.Errorf("%w: %w: value of 'recurrence.max-skip' must be between 1 and %d not '%d'", terrors.ErrConf, terrors.ErrValue, DefaultMaxSkip, val))
			}
		} else {
			errs = append(errs, err)
		}
	}
	return errs
}

func validateLogLevel(key string) error {
	if err := validateTypeInt(key); err != nil {
		return err
	}
	val := viper.GetInt(key)
	if val < -1 || val > 5 {
		return fmt.Errorf("%w: %w: config key '%s' must be between '-1' and '5' and not '%d'", terrors.ErrConf, terrors.ErrValue, key, val)
	}
	return nil
}

func validateTypeInt(key string) error {
	raw := viper.Get(key)
	switch raw.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return nil
	default:
		return fmt.Errorf("%w: %w: config key '%s' must be of an int type not '%T'", terrors.ErrConf, terrors.ErrType, key, raw)
	}
}

func validateTypeString(key string) error {
	raw := viper.Get(key)
	switch raw.(type) {
	case string:
		return nil
	default:
		return fmt.Errorf("%w: %w: config key '%s' must be of type string not '%T'", terrors.ErrConf, terrors.ErrType, key, raw)
	}
}

func validateTypeBool(key string) error {
	raw := viper.Get(key)
	switch raw.(type) {
	case bool:
		return nil
	default:
		return fmt.Errorf("%w: %w: config key '%s' must be of type bool not '%T'", terrors.ErrConf, terrors.ErrType, key, raw)
	}
}
