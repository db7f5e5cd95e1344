package terrors

import (
	"errors"
	"fmt"
)

var (
	ErrArg            = errors.New("arg error")
	ErrNoArgsProvided = fmt.Errorf("%w: no args provided error", ErrArg)
	ErrEmptyText      = errors.New("empty text error")
	ErrParse          = errors.New("failed to parse error")
	ErrValue          = errors.New("value error")
	ErrType           = errors.New("type error")
	ErrConf           = errors.New("config error")
	ErrFlag           = errors.New("flag error")
	ErrNotFound       = errors.New("not found error")
)

// temporal engine failures; every one of them is recoverable by re-prompting
var (
	ErrUnparsableDate            = fmt.Errorf("%w: unparsable date", ErrParse)
	ErrInvalidTime               = fmt.Errorf("%w: invalid time", ErrParse)
	ErrNoDurationFound           = fmt.Errorf("%w: no duration found", ErrParse)
	ErrNegativeDuration          = fmt.Errorf("%w: negative duration", ErrValue)
	ErrAmbiguousDateFormat       = errors.New("ambiguous date format error")
	ErrDateFormatUnset           = errors.New("date format not set error")
	ErrRecurrenceEndDateTooEarly = fmt.Errorf("%w: recurrence end date must be after the origin date", ErrValue)
	ErrInvalidInterval           = fmt.Errorf("%w: invalid recurrence interval", ErrValue)
)

func NewArgNotProvidedError(field string) error {
	return fmt.Errorf("%w: arg '%s' not provided error", ErrArg, field)
}

func ErrorArgParse(arg string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %w: arg %s", ErrArg, ErrParse, arg)
	}
	return fmt.Errorf("%w: %w: arg %s: %w", ErrArg, ErrParse, arg, err)
}
