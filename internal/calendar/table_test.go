package calendar

import (
	"errors"
	"testing"
)

func TestMonthDaysInRange(t *testing.T) {
	for i, row := range monthDays {
		for m, n := range row {
			if n < 29 || n > 32 {
				t.Errorf("year %d month %d has %d days", MinYear+i, m+1, n)
			}
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name   string
		year   int
		month  Month
		want   int
		wantOK bool
	}{
		{"first month of table", 2000, Baisakh, 30, true},
		{"Jestha 2000", 2000, Jestha, 32, true},
		{"Chaitra 2000", 2000, Chaitra, 31, true},
		{"Baisakh 2081", 2081, Baisakh, 31, true},
		{"Chaitra 2080", 2080, Chaitra, 30, true},
		{"last month of table", 2100, Chaitra, 30, true},
		{"year before table", 1999, Chaitra, 0, false},
		{"year after table", 2101, Baisakh, 0, false},
		{"month zero", 2050, 0, 0, false},
		{"month thirteen", 2050, 13, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DaysInMonth(tt.year, tt.month)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DaysInMonth(%d, %d) = %d, %v; want %d, %v", tt.year, tt.month, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDaysInYear(t *testing.T) {
	if n, ok := DaysInYear(2000); !ok || n != 365 {
		t.Errorf("DaysInYear(2000) = %d, %v; want 365, true", n, ok)
	}
	if n, ok := DaysInYear(2081); !ok || n != 366 {
		t.Errorf("DaysInYear(2081) = %d, %v; want 366, true", n, ok)
	}
	if _, ok := DaysInYear(MaxYear + 1); ok {
		t.Error("DaysInYear should reject years past the table")
	}
}

// Every day count the table advertises must be accepted by NewDate, and
// the day after must not.
func TestMonthLengthConsistency(t *testing.T) {
	for year := MinYear; year <= MaxYear; year++ {
		for m := Baisakh; m <= Chaitra; m++ {
			n, ok := DaysInMonth(year, m)
			if !ok {
				t.Fatalf("DaysInMonth(%d, %d) not ok", year, m)
			}
			accepted := 0
			for day := 0; day <= 33; day++ {
				if _, err := NewDate(year, m, day); err == nil {
					accepted++
				}
			}
			if accepted != n {
				t.Errorf("%d/%02d: NewDate accepted %d days, table says %d", year, m, accepted, n)
			}
			if _, err := NewDate(year, m, n+1); !errors.Is(err, ErrInvalidDay) {
				t.Errorf("NewDate(%d, %d, %d) err = %v, want ErrInvalidDay", year, m, n+1, err)
			}
		}
	}
}

func TestSupported(t *testing.T) {
	for _, y := range []int{MinYear, 2050, MaxYear} {
		if !Supported(y) {
			t.Errorf("Supported(%d) = false", y)
		}
	}
	for _, y := range []int{0, MinYear - 1, MaxYear + 1} {
		if Supported(y) {
			t.Errorf("Supported(%d) = true", y)
		}
	}
}
