package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month is a BS month, 1 (Baisakh) through 12 (Chaitra).
type Month int

const (
	Baisakh Month = 1 + iota
	Jestha
	Ashadh
	Shrawan
	Bhadra
	Ashwin
	Kartik
	Mangsir
	Poush
	Magh
	Falgun
	Chaitra
)

var monthNames = [...]string{
	"Baisakh", "Jestha", "Ashadh", "Shrawan", "Bhadra", "Ashwin",
	"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
}

// MonthNames returns the romanised BS month names in calendar order.
func MonthNames() []string {
	out := make([]string, len(monthNames))
	copy(out, monthNames[:])
	return out
}

func (m Month) String() string {
	if m.valid() {
		return monthNames[m-1]
	}
	return "%!Month(" + strconv.Itoa(int(m)) + ")"
}

func (m Month) valid() bool {
	return m >= Baisakh && m <= Chaitra
}

// Date is a validated BS date. The zero value is not a valid date; build
// dates with NewDate, Parse or ADToBS. Dates compare with ==.
type Date struct {
	year  int
	month Month
	day   int
}

// NewDate validates and returns a BS date. The month is checked first, then
// the year against the table, then the day against that month's length.
func NewDate(year int, month Month, day int) (Date, error) {
	if !month.valid() {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidMonth, int(month))
	}
	n, ok := DaysInMonth(year, month)
	if !ok {
		return Date{}, unsupportedYear(year)
	}
	if day < 1 || day > n {
		return Date{}, fmt.Errorf("%w: %d for month %04d/%02d (has %d days)", ErrInvalidDay, day, year, int(month), n)
	}
	return Date{year: year, month: month, day: day}, nil
}

// Parse reads the canonical YYYY/MM/DD form produced by Date.String.
func Parse(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("parse BS date %q: want YYYY/MM/DD", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("parse BS date %q: %w", s, err)
		}
		nums[i] = n
	}
	return NewDate(nums[0], Month(nums[1]), nums[2])
}

func (d Date) Year() int    { return d.year }
func (d Date) Month() Month { return d.month }
func (d Date) Day() int     { return d.day }

// IsZero reports whether d is the zero value rather than a real date.
func (d Date) IsZero() bool { return d == Date{} }

// String renders the date as YYYY/MM/DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.year, int(d.month), d.day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Compare orders dates by year, then month, then day. It returns -1, 0 or +1.
func Compare(a, b Date) int {
	switch {
	case a.year != b.year:
		return cmpInt(a.year, b.year)
	case a.month != b.month:
		return cmpInt(int(a.month), int(b.month))
	default:
		return cmpInt(a.day, b.day)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func (d Date) Before(other Date) bool { return Compare(d, other) < 0 }
func (d Date) After(other Date) bool  { return Compare(d, other) > 0 }

// DayOfYear returns the 1-based position of d within its BS year.
func (d Date) DayOfYear() int {
	n := d.day
	for m := Baisakh; m < d.month; m++ {
		days, _ := DaysInMonth(d.year, m)
		n += days
	}
	return n
}

// DaysLeftInMonth returns how many days follow d in its month.
func (d Date) DaysLeftInMonth() int {
	n, _ := DaysInMonth(d.year, d.month)
	return n - d.day
}

// AddMonths moves d by n BS months. The day is clamped to the length of
// the target month, so Jestha 32 plus one month is Ashadh 31 or 32.
func (d Date) AddMonths(n int) (Date, error) {
	idx := d.year*12 + int(d.month-1) + n
	year := idx / 12
	month := Month(idx%12 + 1)
	length, ok := DaysInMonth(year, month)
	if !ok {
		return Date{}, unsupportedYear(year)
	}
	return NewDate(year, month, min(d.day, length))
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() (time.Weekday, error) {
	ad, err := BSToAD(d)
	if err != nil {
		return 0, err
	}
	return ad.Weekday(), nil
}

func nextMonth(year int, month Month) (int, Month) {
	if month == Chaitra {
		return year + 1, Baisakh
	}
	return year, month + 1
}

func prevMonth(year int, month Month) (int, Month) {
	if month == Baisakh {
		return year - 1, Chaitra
	}
	return year, month - 1
}
