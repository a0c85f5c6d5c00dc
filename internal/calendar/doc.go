// Package calendar converts dates between the Gregorian calendar (AD) and
// Bikram Sambat (BS).
//
// BS month lengths change from year to year and follow no closed-form rule,
// so they are compiled into this package as a table covering BS years
// [MinYear, MaxYear]. Conversions walk month by month from a reference pair
// that is known to fall on the same day:
//
//	AD 1943-04-14  ==  BS 2000/01/01
//
// AD dates are plain time.Time values. Only the civil date in the value's
// own location is used; the time of day is ignored. Returned AD dates are
// midnight UTC.
//
//	d, err := calendar.ADToBS(time.Date(2024, time.May, 21, 0, 0, 0, 0, time.UTC))
//	// d.String() == "2081/02/08"
//
// Dates outside the table fail with ErrUnsupportedYear. This is the common
// failure and callers are expected to handle it as ordinary control flow.
//
// All functions are safe for concurrent use; the table is never modified.
package calendar
