package calendar

import (
	"fmt"
	"time"
)

// Reference pair: these two dates are the same day.
const (
	referenceADYear  = 1943
	referenceADMonth = time.April
	referenceADDay   = 14

	referenceBSYear  = 2000
	referenceBSMonth = Baisakh
	referenceBSDay   = 1
)

// AD years the conversion may return. ISO YYYY-MM-DD cannot express more.
const (
	minADYear = 1
	maxADYear = 9999
)

const secondsPerDay = 24 * 60 * 60

// CivilDate returns midnight UTC of the given Gregorian date. Unlike
// time.Date it refuses to normalise: 2023-02-30 is an error, not March 2.
func CivilDate(year int, month time.Month, day int) (time.Time, error) {
	if year < minADYear || year > maxADYear {
		return time.Time{}, fmt.Errorf("%w: year %d", ErrInvalidADDate, year)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidADDate, year, int(month), day)
	}
	return t, nil
}

// Today returns the current civil date in loc as midnight UTC.
func Today(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return civil(time.Now().In(loc))
}

// ADDaysInMonth returns the number of days in a Gregorian month.
func ADDaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days from a to b using Unix seconds; a
// time.Duration saturates after about 292 years.
func daysBetween(a, b time.Time) int64 {
	return (civil(b).Unix() - civil(a).Unix()) / secondsPerDay
}

func reference() (time.Time, Date, error) {
	ad, err := CivilDate(referenceADYear, referenceADMonth, referenceADDay)
	if err != nil {
		return time.Time{}, Date{}, fmt.Errorf("%w: %v", ErrInvalidReferenceDate, err)
	}
	bs, err := NewDate(referenceBSYear, referenceBSMonth, referenceBSDay)
	if err != nil {
		return time.Time{}, Date{}, fmt.Errorf("%w: %v", ErrInvalidReferenceDate, err)
	}
	return ad, bs, nil
}

// ADToBS converts the civil date of t to BS.
func ADToBS(t time.Time) (Date, error) {
	refAD, refBS, err := reference()
	if err != nil {
		return Date{}, err
	}

	year, month, day := refBS.year, refBS.month, refBS.day
	days := daysBetween(refAD, t)

	if days >= 0 {
		for days > 0 {
			n, ok := DaysInMonth(year, month)
			if !ok {
				return Date{}, unsupportedYear(year)
			}
			left := int64(n - day + 1)
			if days < left {
				day += int(days)
				break
			}
			days -= left
			day = 1
			year, month = nextMonth(year, month)
		}
	} else {
		remaining := -days
		for remaining > 0 {
			if remaining < int64(day) {
				day -= int(remaining)
				break
			}
			remaining -= int64(day)
			year, month = prevMonth(year, month)
			n, ok := DaysInMonth(year, month)
			if !ok {
				return Date{}, unsupportedYear(year)
			}
			day = n
		}
	}

	// The walk can leave the table on its final step (e.g. landing on
	// 2101/01/01); NewDate reports that along with any day overrun.
	return NewDate(year, month, day)
}

// BSToAD converts d to its Gregorian date, returned as midnight UTC.
func BSToAD(d Date) (time.Time, error) {
	if _, err := NewDate(d.year, d.month, d.day); err != nil {
		return time.Time{}, err
	}
	refAD, refBS, err := reference()
	if err != nil {
		return time.Time{}, err
	}
	days, err := daysFrom(refBS, d)
	if err != nil {
		return time.Time{}, err
	}
	return addDays(refAD, days)
}

// DaysBetween returns the signed number of days from a to b.
func DaysBetween(a, b Date) (int, error) {
	for _, d := range []Date{a, b} {
		if _, err := NewDate(d.year, d.month, d.day); err != nil {
			return 0, err
		}
	}
	n, err := daysFrom(a, b)
	return int(n), err
}

// daysFrom walks month by month from a towards b. Both must be valid.
func daysFrom(a, b Date) (int64, error) {
	year, month, day := a.year, a.month, a.day
	var days int64

	switch c := Compare(a, b); {
	case c == 0:
		return 0, nil
	case c < 0:
		for {
			if year == b.year && month == b.month {
				days += int64(b.day - day)
				return days, nil
			}
			n, ok := DaysInMonth(year, month)
			if !ok {
				return 0, unsupportedYear(year)
			}
			days += int64(n - day + 1)
			day = 1
			year, month = nextMonth(year, month)
		}
	default:
		for {
			if year == b.year && month == b.month {
				days -= int64(day - b.day)
				return days, nil
			}
			days -= int64(day)
			year, month = prevMonth(year, month)
			n, ok := DaysInMonth(year, month)
			if !ok {
				return 0, unsupportedYear(year)
			}
			day = n
		}
	}
}

func addDays(t time.Time, days int64) (time.Time, error) {
	const maxSpan = (maxADYear - minADYear + 1) * 366
	if days > maxSpan || days < -maxSpan {
		return time.Time{}, fmt.Errorf("%w: %d days from %s", ErrDateOverflow, days, t.Format(time.DateOnly))
	}
	out := t.AddDate(0, 0, int(days))
	if out.Year() < minADYear || out.Year() > maxADYear {
		return time.Time{}, fmt.Errorf("%w: %d days from %s", ErrDateOverflow, days, t.Format(time.DateOnly))
	}
	return out, nil
}
