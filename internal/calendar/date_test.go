package calendar

import (
	"errors"
	"testing"
	"time"
)

// bs is a test helper that builds a date or fails the test.
func bs(t testing.TB, year int, month Month, day int) Date {
	t.Helper()
	d, err := NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate(%d, %d, %d): %v", year, month, day, err)
	}
	return d
}

func TestNewDateErrors(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month Month
		day   int
		want  error
	}{
		{"month zero", 2080, 0, 1, ErrInvalidMonth},
		{"month thirteen", 2080, 13, 1, ErrInvalidMonth},
		{"month checked before year", 1900, 13, 1, ErrInvalidMonth},
		{"year before table", 1999, Baisakh, 1, ErrUnsupportedYear},
		{"year after table", 2101, Baisakh, 1, ErrUnsupportedYear},
		{"day zero", 2080, Baisakh, 0, ErrInvalidDay},
		{"negative day", 2080, Baisakh, -3, ErrInvalidDay},
		{"day past month end", 2000, Baisakh, 31, ErrInvalidDay},
		{"day 33", 2080, Jestha, 33, ErrInvalidDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.year, tt.month, tt.day)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewDate(%d, %d, %d) err = %v, want %v", tt.year, tt.month, tt.day, err, tt.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	tests := []struct {
		date Date
		want string
	}{
		{bs(t, 2000, Baisakh, 1), "2000/01/01"},
		{bs(t, 2081, Jestha, 8), "2081/02/08"},
		{bs(t, 2100, Chaitra, 30), "2100/12/30"},
	}
	for _, tt := range tests {
		if got := tt.date.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDateEquality(t *testing.T) {
	a := bs(t, 2081, Shrawan, 15)
	b := bs(t, 2081, Shrawan, 15)
	if a != b {
		t.Error("dates with the same fields should be equal")
	}
	if a == bs(t, 2081, Shrawan, 16) {
		t.Error("dates with different days should differ")
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2081/02/08")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d != bs(t, 2081, Jestha, 8) {
		t.Errorf("Parse = %v", d)
	}
	for _, in := range []string{"", "2081-02-08", "2081/02", "2081/xx/08"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
	if _, err := Parse("2200/01/01"); !errors.Is(err, ErrUnsupportedYear) {
		t.Errorf("Parse out of range err = %v", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	d := bs(t, 2075, Magh, 19)
	b, err := d.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var got Date
	if err := got.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("got %v, want %v", got, d)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{"equal", bs(t, 2080, Poush, 5), bs(t, 2080, Poush, 5), 0},
		{"earlier day", bs(t, 2080, Poush, 4), bs(t, 2080, Poush, 5), -1},
		{"later month", bs(t, 2080, Magh, 1), bs(t, 2080, Poush, 29), 1},
		// A later year with an earlier month and day must still sort later.
		{"later year earlier month", bs(t, 2081, Baisakh, 1), bs(t, 2080, Chaitra, 30), 1},
		{"earlier year later month", bs(t, 2079, Chaitra, 30), bs(t, 2080, Baisakh, 2), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if tt.want < 0 && !tt.a.Before(tt.b) {
				t.Errorf("%v.Before(%v) = false", tt.a, tt.b)
			}
			if tt.want > 0 && !tt.a.After(tt.b) {
				t.Errorf("%v.After(%v) = false", tt.a, tt.b)
			}
		})
	}
}

func TestMonthString(t *testing.T) {
	if Baisakh.String() != "Baisakh" || Chaitra.String() != "Chaitra" {
		t.Errorf("unexpected month names %q %q", Baisakh, Chaitra)
	}
	if got := Month(13).String(); got != "%!Month(13)" {
		t.Errorf("Month(13).String() = %q", got)
	}
	names := MonthNames()
	names[0] = "changed"
	if Baisakh.String() != "Baisakh" {
		t.Error("MonthNames must return a copy")
	}
}

func TestDayOfYear(t *testing.T) {
	if got := bs(t, 2000, Baisakh, 1).DayOfYear(); got != 1 {
		t.Errorf("DayOfYear = %d, want 1", got)
	}
	// Baisakh 2000 has 30 days.
	if got := bs(t, 2000, Jestha, 1).DayOfYear(); got != 31 {
		t.Errorf("DayOfYear = %d, want 31", got)
	}
	if got := bs(t, 2081, Chaitra, 30).DayOfYear(); got != 366 {
		t.Errorf("DayOfYear = %d, want 366", got)
	}
}

func TestDaysLeftInMonth(t *testing.T) {
	if got := bs(t, 2000, Jestha, 30).DaysLeftInMonth(); got != 2 {
		t.Errorf("DaysLeftInMonth = %d, want 2", got)
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		from Date
		n    int
		want Date
	}{
		{"next month", bs(t, 2081, Baisakh, 10), 1, bs(t, 2081, Jestha, 10)},
		{"clamped day", bs(t, 2000, Jestha, 32), 1, bs(t, 2000, Ashadh, 31)},
		{"year rollover", bs(t, 2080, Chaitra, 15), 1, bs(t, 2081, Baisakh, 15)},
		{"backwards over year", bs(t, 2081, Baisakh, 15), -1, bs(t, 2080, Chaitra, 15)},
		{"twelve months", bs(t, 2050, Magh, 3), 12, bs(t, 2051, Magh, 3)},
		{"zero", bs(t, 2050, Magh, 3), 0, bs(t, 2050, Magh, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.AddMonths(tt.n)
			if err != nil {
				t.Fatalf("AddMonths: %v", err)
			}
			if got != tt.want {
				t.Errorf("%v.AddMonths(%d) = %v, want %v", tt.from, tt.n, got, tt.want)
			}
		})
	}

	if _, err := bs(t, MaxYear, Chaitra, 1).AddMonths(1); !errors.Is(err, ErrUnsupportedYear) {
		t.Errorf("AddMonths past table err = %v", err)
	}
	if _, err := bs(t, MinYear, Baisakh, 1).AddMonths(-1); !errors.Is(err, ErrUnsupportedYear) {
		t.Errorf("AddMonths before table err = %v", err)
	}
}

func TestWeekday(t *testing.T) {
	got, err := bs(t, 2000, Baisakh, 1).Weekday()
	if err != nil {
		t.Fatal(err)
	}
	if got != time.Wednesday {
		t.Errorf("Weekday = %v, want Wednesday", got)
	}
	got, err = bs(t, 2081, Baisakh, 1).Weekday()
	if err != nil {
		t.Fatal(err)
	}
	if got != time.Saturday {
		t.Errorf("Weekday = %v, want Saturday", got)
	}
}

func TestZeroDate(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if _, err := BSToAD(d); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("BSToAD(zero) err = %v, want ErrInvalidMonth", err)
	}
}
