package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/miti/internal/calendar"
	"github.com/jask/miti/internal/dateinput"
)

// NewAD2BSCommand creates the ad2bs command.
func NewAD2BSCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ad2bs [DATE]",
		Short:   "Convert a Gregorian date to Bikram Sambat",
		Long:    "Convert an AD date (default today) to BS. DATE accepts 2024-05-21, 21/05/2024 or 21 May 2024.",
		Example: "  miti ad2bs 2024-05-21",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := calendar.Today(a.cfg.Location())
			input := t.Format(time.DateOnly)
			if len(args) == 1 {
				input = args[0]
				parsed, err := dateinput.ParseAD(input)
				if err != nil {
					return err
				}
				t = parsed
			}
			d, err := calendar.ADToBS(t)
			a.log.LogConversion("ad2bs", input, d.String(), err)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

// NewBS2ADCommand creates the bs2ad command.
func NewBS2ADCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "bs2ad DATE",
		Short:   "Convert a Bikram Sambat date to Gregorian",
		Long:    "Convert a BS date to AD. DATE accepts 2081-02-08, 2081/2/8 or 8 Jestha 2081.",
		Example: "  miti bs2ad 2081/02/08",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dateinput.ParseBS(args[0])
			if err != nil {
				return err
			}
			t, err := calendar.BSToAD(d)
			a.log.LogConversion("bs2ad", d.String(), t.Format(time.DateOnly), err)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", t.Format(a.cfg.UI.ADDateFormat), t.Weekday())
			return nil
		},
	}
}

// NewMonthCommand creates the month command.
func NewMonthCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "month [YEAR MONTH]",
		Short:   "Print a BS month as a calendar grid",
		Long:    "Print a BS month (default the current one). MONTH is a number or a name such as Jestha or Jeth.",
		Example: "  miti month 2081 Jestha\n  miti month 2081 2",
		Args:    cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				year  int
				month calendar.Month
			)
			switch len(args) {
			case 0:
				today, err := calendar.ADToBS(calendar.Today(a.cfg.Location()))
				if err != nil {
					return err
				}
				year, month = today.Year(), today.Month()
			case 2:
				y, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q", args[0])
				}
				m, err := parseMonth(args[1])
				if err != nil {
					return err
				}
				year, month = y, m
			default:
				return fmt.Errorf("month needs both YEAR and MONTH")
			}
			grid, err := monthGrid(year, month, a.cfg.WeekStart())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), grid)
			return nil
		},
	}
}

func parseMonth(s string) (calendar.Month, error) {
	if n, err := strconv.Atoi(s); err == nil {
		m := calendar.Month(n)
		if m < calendar.Baisakh || m > calendar.Chaitra {
			return 0, fmt.Errorf("%w: %d", calendar.ErrInvalidMonth, n)
		}
		return m, nil
	}
	m, ok := dateinput.MatchBSMonth(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", dateinput.ErrUnknownMonth, s)
	}
	return m, nil
}

var weekdayAbbrev = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// monthGrid renders a plain BS month with the AD span underneath.
func monthGrid(year int, month calendar.Month, weekStart time.Weekday) (string, error) {
	first, err := calendar.NewDate(year, month, 1)
	if err != nil {
		return "", err
	}
	n, _ := calendar.DaysInMonth(year, month)
	start, err := calendar.BSToAD(first)
	if err != nil {
		return "", err
	}
	end := start.AddDate(0, 0, n-1)

	var b strings.Builder
	title := fmt.Sprintf("%s %d", month, year)
	fmt.Fprintf(&b, "%*s\n", (20+len(title))/2, title)
	head := make([]string, 7)
	for i := range head {
		head[i] = weekdayAbbrev[(int(weekStart)+i)%7]
	}
	b.WriteString(strings.Join(head, " "))
	b.WriteString("\n")

	col := (int(start.Weekday()) - int(weekStart) + 7) % 7
	b.WriteString(strings.Repeat("   ", col))
	for day := 1; day <= n; day++ {
		fmt.Fprintf(&b, "%2d", day)
		col++
		if col == 7 || day == n {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	fmt.Fprintf(&b, "\n%s to %s\n", start.Format(time.DateOnly), end.Format(time.DateOnly))
	return b.String(), nil
}
