package calendar

import (
	"errors"
	"testing"
	"time"
)

// ad is a test helper to construct AD dates.
func ad(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var (
	firstSupportedAD = ad(1943, time.April, 14)
	lastSupportedAD  = ad(2044, time.April, 12)
)

func TestReferencePair(t *testing.T) {
	got, err := ADToBS(ad(1943, time.April, 14))
	if err != nil {
		t.Fatalf("ADToBS: %v", err)
	}
	if got != bs(t, 2000, Baisakh, 1) {
		t.Errorf("ADToBS(reference) = %v, want 2000/01/01", got)
	}

	back, err := BSToAD(bs(t, 2000, Baisakh, 1))
	if err != nil {
		t.Fatalf("BSToAD: %v", err)
	}
	if !back.Equal(ad(1943, time.April, 14)) {
		t.Errorf("BSToAD(reference) = %v, want 1943-04-14", back.Format(time.DateOnly))
	}
}

func TestADToBS(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want Date
	}{
		{"reference", ad(1943, time.April, 14), bs(t, 2000, Baisakh, 1)},
		{"last day of first month", ad(1943, time.May, 13), bs(t, 2000, Baisakh, 30)},
		{"first day of second month", ad(1943, time.May, 14), bs(t, 2000, Jestha, 1)},
		{"last day of first year", ad(1944, time.April, 12), bs(t, 2000, Chaitra, 31)},
		{"first day of second year", ad(1944, time.April, 13), bs(t, 2001, Baisakh, 1)},
		{"new year 2080", ad(2023, time.April, 14), bs(t, 2080, Baisakh, 1)},
		{"last day of 2080", ad(2024, time.April, 12), bs(t, 2080, Chaitra, 30)},
		{"new year 2081", ad(2024, time.April, 13), bs(t, 2081, Baisakh, 1)},
		{"2024-05-21", ad(2024, time.May, 21), bs(t, 2081, Jestha, 8)},
		{"new year 2082", ad(2025, time.April, 14), bs(t, 2082, Baisakh, 1)},
		{"last supported day", lastSupportedAD, bs(t, 2100, Chaitra, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ADToBS(tt.date)
			if err != nil {
				t.Fatalf("ADToBS(%s): %v", tt.date.Format(time.DateOnly), err)
			}
			if got != tt.want {
				t.Errorf("ADToBS(%s) = %v, want %v", tt.date.Format(time.DateOnly), got, tt.want)
			}
		})
	}
}

func TestADToBSUnsupported(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
	}{
		{"day before table", firstSupportedAD.AddDate(0, 0, -1)},
		{"day after table", lastSupportedAD.AddDate(0, 0, 1)},
		{"far past", ad(1, time.January, 1)},
		{"far future", ad(9999, time.December, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ADToBS(tt.date)
			if !errors.Is(err, ErrUnsupportedYear) {
				t.Errorf("ADToBS(%s) err = %v, want ErrUnsupportedYear", tt.date.Format(time.DateOnly), err)
			}
		})
	}
}

func TestADToBSIgnoresTimeOfDay(t *testing.T) {
	kathmandu := time.FixedZone("NPT", 5*60*60+45*60)
	late := time.Date(2024, time.May, 21, 23, 59, 59, 0, kathmandu)
	got, err := ADToBS(late)
	if err != nil {
		t.Fatal(err)
	}
	if got != bs(t, 2081, Jestha, 8) {
		t.Errorf("ADToBS(late evening) = %v, want 2081/02/08", got)
	}
}

func TestBSToAD(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want time.Time
	}{
		{"reference", bs(t, 2000, Baisakh, 1), ad(1943, time.April, 14)},
		{"new year 2080", bs(t, 2080, Baisakh, 1), ad(2023, time.April, 14)},
		{"new year 2081", bs(t, 2081, Baisakh, 1), ad(2024, time.April, 13)},
		{"Jestha 8 2081", bs(t, 2081, Jestha, 8), ad(2024, time.May, 21)},
		{"end of table", bs(t, 2100, Chaitra, 30), lastSupportedAD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BSToAD(tt.date)
			if err != nil {
				t.Fatalf("BSToAD(%v): %v", tt.date, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("BSToAD(%v) = %s, want %s", tt.date, got.Format(time.DateOnly), tt.want.Format(time.DateOnly))
			}
		})
	}
}

func TestRoundTripConcrete(t *testing.T) {
	in := ad(2024, time.May, 21)
	d, err := ADToBS(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := BSToAD(d)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(in) {
		t.Errorf("round trip 2024-05-21 gave %s", out.Format(time.DateOnly))
	}
}

// Walks every AD day the table covers: each must round-trip, and each
// must map to the BS successor of the previous day.
func TestRoundTripAllADDays(t *testing.T) {
	var prev Date
	for day := firstSupportedAD; !day.After(lastSupportedAD); day = day.AddDate(0, 0, 1) {
		got, err := ADToBS(day)
		if err != nil {
			t.Fatalf("ADToBS(%s): %v", day.Format(time.DateOnly), err)
		}
		back, err := BSToAD(got)
		if err != nil {
			t.Fatalf("BSToAD(%v): %v", got, err)
		}
		if !back.Equal(day) {
			t.Fatalf("round trip %s -> %v -> %s", day.Format(time.DateOnly), got, back.Format(time.DateOnly))
		}
		if !prev.IsZero() {
			if !prev.Before(got) {
				t.Fatalf("not monotonic: %v then %v", prev, got)
			}
			if want := successor(t, prev); got != want {
				t.Fatalf("ADToBS(%s) = %v, want successor %v", day.Format(time.DateOnly), got, want)
			}
		}
		prev = got
	}
}

func TestRoundTripAllBSDays(t *testing.T) {
	for year := MinYear; year <= MaxYear; year++ {
		for m := Baisakh; m <= Chaitra; m++ {
			n, _ := DaysInMonth(year, m)
			for day := 1; day <= n; day++ {
				d := bs(t, year, m, day)
				adDate, err := BSToAD(d)
				if err != nil {
					t.Fatalf("BSToAD(%v): %v", d, err)
				}
				got, err := ADToBS(adDate)
				if err != nil {
					t.Fatalf("ADToBS(%s): %v", adDate.Format(time.DateOnly), err)
				}
				if got != d {
					t.Fatalf("round trip %v -> %s -> %v", d, adDate.Format(time.DateOnly), got)
				}
			}
		}
	}
}

// successor returns the BS day after d using only the table.
func successor(t *testing.T, d Date) Date {
	t.Helper()
	if d.DaysLeftInMonth() > 0 {
		return bs(t, d.Year(), d.Month(), d.Day()+1)
	}
	y, m := nextMonth(d.Year(), d.Month())
	return bs(t, y, m, 1)
}

func TestCrossMonthWalks(t *testing.T) {
	for _, start := range []Date{
		bs(t, 2000, Baisakh, 1),
		bs(t, 2045, Ashwin, 1),
		bs(t, 2080, Chaitra, 1),
		bs(t, 2081, Baisakh, 1),
	} {
		first, err := BSToAD(start)
		if err != nil {
			t.Fatal(err)
		}
		n, _ := DaysInMonth(start.Year(), start.Month())

		// One day past the end of the month lands on day 1 of the next.
		next, err := ADToBS(first.AddDate(0, 0, n))
		if err != nil {
			t.Fatal(err)
		}
		wy, wm := nextMonth(start.Year(), start.Month())
		if next != bs(t, wy, wm, 1) {
			t.Errorf("forward from %v: got %v, want %04d/%02d/01", start, next, wy, wm)
		}

		if start.Year() == MinYear && start.Month() == Baisakh {
			continue
		}
		// One day before the start lands on the last day of the previous month.
		prev, err := ADToBS(first.AddDate(0, 0, -1))
		if err != nil {
			t.Fatal(err)
		}
		py, pm := prevMonth(start.Year(), start.Month())
		plen, _ := DaysInMonth(py, pm)
		if prev != bs(t, py, pm, plen) {
			t.Errorf("backward from %v: got %v, want %04d/%02d/%02d", start, prev, py, pm, plen)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{"same day", bs(t, 2081, Magh, 1), bs(t, 2081, Magh, 1), 0},
		{"within month", bs(t, 2081, Magh, 1), bs(t, 2081, Magh, 11), 10},
		{"across month", bs(t, 2000, Baisakh, 30), bs(t, 2000, Jestha, 1), 1},
		{"backwards across month", bs(t, 2000, Jestha, 5), bs(t, 2000, Baisakh, 30), -5},
		{"whole year", bs(t, 2081, Baisakh, 1), bs(t, 2082, Baisakh, 1), 366},
		{"backwards over year with later month", bs(t, 2082, Baisakh, 1), bs(t, 2081, Chaitra, 30), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysBetween(tt.a, tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCivilDate(t *testing.T) {
	got, err := CivilDate(2024, time.February, 29)
	if err != nil {
		t.Fatalf("CivilDate leap day: %v", err)
	}
	if !got.Equal(ad(2024, time.February, 29)) {
		t.Errorf("CivilDate = %v", got)
	}
	for _, tt := range []struct {
		y int
		m time.Month
		d int
	}{
		{2023, time.February, 29},
		{2023, time.February, 30},
		{2023, time.April, 31},
		{2023, 13, 1},
		{2023, time.January, 0},
		{0, time.January, 1},
		{10000, time.January, 1},
	} {
		if _, err := CivilDate(tt.y, tt.m, tt.d); !errors.Is(err, ErrInvalidADDate) {
			t.Errorf("CivilDate(%d, %d, %d) err = %v, want ErrInvalidADDate", tt.y, tt.m, tt.d, err)
		}
	}
}

func TestAddDaysOverflow(t *testing.T) {
	if _, err := addDays(ad(9999, time.December, 31), 1); !errors.Is(err, ErrDateOverflow) {
		t.Errorf("addDays past 9999 err = %v, want ErrDateOverflow", err)
	}
	if _, err := addDays(ad(1, time.January, 1), -1); !errors.Is(err, ErrDateOverflow) {
		t.Errorf("addDays before year 1 err = %v, want ErrDateOverflow", err)
	}
	if _, err := addDays(ad(2000, time.January, 1), 1<<40); !errors.Is(err, ErrDateOverflow) {
		t.Errorf("addDays huge err = %v, want ErrDateOverflow", err)
	}
}

func TestADDaysInMonth(t *testing.T) {
	tests := []struct {
		y    int
		m    time.Month
		want int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.December, 31},
		{2024, time.April, 30},
	}
	for _, tt := range tests {
		if got := ADDaysInMonth(tt.y, tt.m); got != tt.want {
			t.Errorf("ADDaysInMonth(%d, %v) = %d, want %d", tt.y, tt.m, got, tt.want)
		}
	}
}

func TestToday(t *testing.T) {
	got := Today(time.UTC)
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != time.UTC {
		t.Errorf("Today should be midnight UTC, got %v", got)
	}
	if Today(nil).IsZero() {
		t.Error("Today(nil) should fall back to local time")
	}
}
