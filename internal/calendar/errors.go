package calendar

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMonth         = errors.New("invalid month")
	ErrInvalidDay           = errors.New("invalid day")
	ErrUnsupportedYear      = errors.New("year not in supported range")
	ErrDateOverflow         = errors.New("date out of representable range")
	ErrInvalidReferenceDate = errors.New("invalid reference date")
	ErrInvalidADDate        = errors.New("invalid AD date")
)

func unsupportedYear(year int) error {
	return fmt.Errorf("%w: %d (supported %d-%d)", ErrUnsupportedYear, year, MinYear, MaxYear)
}
