package kernel

import (
	"fmt"
	"time"

	"foodservice/internal/pkg/errs"
	"foodservice/internal/pkg/guard"
)

// ErrTimeOfDayIsNotConstructed indicates that a TimeOfDay was not created
// through NewTimeOfDay or ParseTimeOfDay.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError("TimeOfDay must be created via NewTimeOfDay or ParseTimeOfDay")

const minutesPerDay = 24 * 60

// TimeOfDay is a value object representing a wall-clock time with minute
// precision, independent of date and zone. Restaurants use a pair of these
// as their operating window.
//
// The zero value is invalid; construct via NewTimeOfDay or ParseTimeOfDay.
type TimeOfDay struct {
	minutes int

	guard guard.ConstructorGuard
}

// NewTimeOfDay creates a TimeOfDay from an hour in [0,23] and a minute
// in [0,59].
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}

	return TimeOfDay{
		minutes: hour*60 + minute,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// ParseTimeOfDay parses a "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}
	return NewTimeOfDay(hour, minute)
}

// TimeOfDayFromMinutes restores a TimeOfDay from a minute-of-day count,
// as stored in persistence.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minutes", minutes, 0, minutesPerDay-1)
	}
	return TimeOfDay{
		minutes: minutes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// TimeOfDayFromTime extracts the TimeOfDay of a time.Time in its location.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay{
		minutes: t.Hour()*60 + t.Minute(),
		guard:   guard.NewConstructorGuard(),
	}
}

// Hour returns the hour component in [0,23].
func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

// Minute returns the minute component in [0,59].
func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

// Minutes returns the minute-of-day count, used for persistence and
// ordering comparisons.
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// String returns the zero-padded "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// IsEqual reports whether two TimeOfDay values denote the same minute.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.minutes == other.minutes
}

// Validate ensures the value was created via a constructor.
func (t TimeOfDay) Validate() error {
	return t.guard.Validate(ErrTimeOfDayIsNotConstructed)
}
