package dateinput

import (
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/jask/miti/internal/calendar"
)

// bsMonthSpellings lists the common romanisations of each BS month. The
// first entry of each row is the canonical calendar.Month name.
var bsMonthSpellings = [12][]string{
	{"baisakh", "baishakh", "vaisakh", "vaishakh", "besakh"},
	{"jestha", "jeth", "jyestha", "jeshtha"},
	{"ashadh", "asar", "asadh", "ashar"},
	{"shrawan", "saun", "sawan", "srawan", "shravan"},
	{"bhadra", "bhadau", "bhadrapad"},
	{"ashwin", "asoj", "ashoj", "aswin", "ashwayuja"},
	{"kartik", "kattik", "kartika"},
	{"mangsir", "mangshir", "marga", "margashirsha"},
	{"poush", "paush", "push", "pus", "pausa"},
	{"magh", "magha"},
	{"falgun", "phagun", "fagun", "phalgun"},
	{"chaitra", "chait", "chaita", "chaite"},
}

var adMonthSpellings = func() [12][]string {
	var out [12][]string
	for m := time.January; m <= time.December; m++ {
		out[m-1] = []string{strings.ToLower(m.String())}
	}
	out[time.September-1] = append(out[time.September-1], "sept")
	return out
}()

// MatchBSMonth resolves a BS month name, tolerating alternate spellings
// and small typos.
func MatchBSMonth(name string) (calendar.Month, bool) {
	idx, ok := matchMonth(name, bsMonthSpellings)
	return calendar.Month(idx), ok
}

// MatchADMonth resolves an English month name or abbreviation.
func MatchADMonth(name string) (time.Month, bool) {
	idx, ok := matchMonth(name, adMonthSpellings)
	return time.Month(idx), ok
}

// matchMonth returns the 1-based month whose spelling matches name. An
// unambiguous prefix of at least three letters wins outright; otherwise
// the closest spelling by edit distance is taken if it is close enough.
func matchMonth(name string, table [12][]string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(name, ".")))
	if len(name) < 3 {
		return 0, false
	}

	prefixHit := 0
	for i, spellings := range table {
		for _, s := range spellings {
			if s == name {
				return i + 1, true
			}
			if strings.HasPrefix(s, name) {
				if prefixHit != 0 && prefixHit != i+1 {
					prefixHit = -1
				} else if prefixHit == 0 {
					prefixHit = i + 1
				}
			}
		}
	}
	if prefixHit > 0 {
		return prefixHit, true
	}
	if prefixHit < 0 {
		return 0, false
	}

	best, bestDist, tie := 0, len(name)+1, false
	for i, spellings := range table {
		for _, s := range spellings {
			d := levenshtein.ComputeDistance(name, s)
			switch {
			case d < bestDist:
				best, bestDist, tie = i+1, d, false
			case d == bestDist && best != i+1:
				tie = true
			}
		}
	}
	if tie || float64(bestDist)/float64(len(name)) > 0.34 {
		return 0, false
	}
	return best, true
}
