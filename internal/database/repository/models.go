package repository

import (
	"time"

	"github.com/jask/miti/internal/calendar"
)

// Bookmark represents a bookmarks row: a labelled BS date. AD is the
// same day in the Gregorian calendar and is stored alongside for lookup.
type Bookmark struct {
	ID        string
	Date      calendar.Date
	AD        time.Time
	Label     string
	CreatedAt time.Time
}
