package promocode

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode            = errors.New("invalid promo code format")
	ErrInvalidDiscountType    = errors.New("invalid discount type")
	ErrInvalidDiscountValue   = errors.New("discount value cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidDateWindow      = errors.New("valid-from must not be after valid-until")
	ErrInvalidTimeOfDay       = errors.New("time of day must be HH:MM")
	ErrInvalidTimeWindow      = errors.New("valid-from time must not be after valid-to time")
	ErrInvalidUsage           = errors.New("used count cannot exceed usage limit")
	ErrCapWithoutPercentage   = errors.New("max discount cap applies to percentage discounts only")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is case-insensitive on input and stored uppercase.
type Code string

func NewCode(s string) (Code, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if !codeRegex.MatchString(s) {
		return Code(""), ErrInvalidCode
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}

var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeOfDay is a wall-clock "HH:MM" bound. The zero-padded format makes plain
// string comparison equivalent to chronological comparison, which is how the
// in-day window check is defined.
type TimeOfDay string

func NewTimeOfDay(s string) (TimeOfDay, error) {
	if !timeOfDayRegex.MatchString(s) {
		return TimeOfDay(""), ErrInvalidTimeOfDay
	}
	return TimeOfDay(s), nil
}

func (t TimeOfDay) String() string {
	return string(t)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return string(t) < string(other)
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return string(t) > string(other)
}
