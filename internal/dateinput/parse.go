// Package dateinput turns what a user types into AD or BS dates.
//
// Accepted shapes, for both calendars:
//
//	2081-02-08   2081/2/8   2081.02.08
//	08-02-2081   (day first when the last field has three or more digits)
//	2081 Jestha 8   8 Jeth 2081   Jestha 8, 2081
//
// Month names are matched loosely, so Baishakh, Vaisakh and Baisak all
// mean Baisakh.
package dateinput

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/jask/miti/internal/calendar"
)

var (
	ErrFormat       = errors.New("invalid date format. Use YYYY-MM-DD")
	ErrUnknownMonth = errors.New("unknown month name")
)

// fields holds a date split into year, month and day before validation.
type fields struct {
	year, month, day int
}

// ParseAD parses a Gregorian date and returns it as midnight UTC.
func ParseAD(s string) (time.Time, error) {
	f, err := split(s, func(name string) (int, bool) {
		m, ok := MatchADMonth(name)
		return int(m), ok
	})
	if err != nil {
		return time.Time{}, err
	}
	return calendar.CivilDate(f.year, time.Month(f.month), f.day)
}

// ParseBS parses a Bikram Sambat date.
func ParseBS(s string) (calendar.Date, error) {
	f, err := split(s, func(name string) (int, bool) {
		m, ok := MatchBSMonth(name)
		return int(m), ok
	})
	if err != nil {
		return calendar.Date{}, err
	}
	return calendar.NewDate(f.year, calendar.Month(f.month), f.day)
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '/' || r == '.' || r == ','
	})
}

func split(s string, month func(string) (int, bool)) (fields, error) {
	tokens := tokenize(s)
	if len(tokens) != 3 {
		return fields{}, ErrFormat
	}

	var nums []string
	named := -1
	for i, tok := range tokens {
		if isDigits(tok) {
			nums = append(nums, tok)
			continue
		}
		if named >= 0 {
			return fields{}, ErrFormat
		}
		named = i
	}

	if named < 0 {
		return numeric(tokens)
	}

	m, ok := month(tokens[named])
	if !ok {
		return fields{}, fmt.Errorf("%w: %q", ErrUnknownMonth, tokens[named])
	}
	a, b := nums[0], nums[1]
	var yearTok, dayTok string
	switch {
	case len(a) >= 3 && len(b) <= 2:
		yearTok, dayTok = a, b
	case len(b) >= 3 && len(a) <= 2:
		yearTok, dayTok = b, a
	default:
		return fields{}, ErrFormat
	}
	year, err := strconv.Atoi(yearTok)
	if err != nil {
		return fields{}, ErrFormat
	}
	day, err := strconv.Atoi(dayTok)
	if err != nil {
		return fields{}, ErrFormat
	}
	return fields{year: year, month: m, day: day}, nil
}

// numeric handles all-digit input: year first, or day first when only the
// last field looks like a year.
func numeric(tokens []string) (fields, error) {
	var n [3]int
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return fields{}, ErrFormat
		}
		n[i] = v
	}
	switch {
	case len(tokens[0]) >= 3 && len(tokens[2]) <= 2:
		return fields{year: n[0], month: n[1], day: n[2]}, nil
	case len(tokens[2]) >= 3 && len(tokens[0]) <= 2:
		return fields{year: n[2], month: n[1], day: n[0]}, nil
	default:
		return fields{}, ErrFormat
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
