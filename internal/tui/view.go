package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/miti/internal/calendar"
)

const appTitle = "Miti - Calendar Viewer (AD ↔ BS)"

var weekdayAbbrev = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// cell is one day in a month grid.
type cell struct {
	day      int
	ad       time.Time
	selected bool
	today    bool
	marked   bool
}

func (m *Model) View() string {
	title := renderBar(titleStyle, m.width, " "+appTitle)
	grids := lipgloss.JoinHorizontal(lipgloss.Top, m.adPane(), " ", m.bsPane())
	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		grids,
		m.infoPane(),
		m.statusLine(),
		m.footer(),
	)

	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = lipgloss.Width(body), lipgloss.Height(body)
	}
	switch {
	case m.showHelp:
		return centerOverlay(body, m.helpPopup(), w, h)
	case m.mode != modeNormal:
		return centerOverlay(body, m.inputPopup(), w, h)
	}
	return body
}

func (m *Model) adPane() string {
	y, mo, _ := m.selected.Date()
	first := time.Date(y, mo, 1, 0, 0, 0, 0, time.UTC)
	n := calendar.ADDaysInMonth(y, mo)
	cells := make([]cell, n)
	for i := range cells {
		t := first.AddDate(0, 0, i)
		cells[i] = m.newCell(i+1, t)
	}
	header := fmt.Sprintf("AD  %s %d", mo, y)
	return paneStyle.Render(paneTitleStyle.Render(header) + "\n" + m.grid(first.Weekday(), cells))
}

func (m *Model) bsPane() string {
	bs, err := calendar.ADToBS(m.selected)
	if err != nil {
		msg := "Error converting to BS"
		if errors.Is(err, calendar.ErrUnsupportedYear) {
			msg = "Year not in supported range"
		}
		return paneStyle.Render(paneTitleStyle.Render("BS") + "\n" + warnStyle.Render(msg))
	}
	first, err := calendar.NewDate(bs.Year(), bs.Month(), 1)
	if err != nil {
		return paneStyle.Render(warnStyle.Render("Error converting to BS"))
	}
	start, err := calendar.BSToAD(first)
	if err != nil {
		return paneStyle.Render(warnStyle.Render("Error converting to BS"))
	}
	n, _ := calendar.DaysInMonth(bs.Year(), bs.Month())
	cells := make([]cell, n)
	for i := range cells {
		cells[i] = m.newCell(i+1, start.AddDate(0, 0, i))
	}
	header := fmt.Sprintf("BS  %s %d", bs.Month(), bs.Year())
	return paneStyle.Render(paneTitleStyle.Render(header) + "\n" + m.grid(start.Weekday(), cells))
}

func (m *Model) newCell(day int, ad time.Time) cell {
	return cell{
		day:      day,
		ad:       ad,
		selected: ad.Equal(m.selected),
		today:    ad.Equal(m.today),
		marked:   len(m.marks[ad.Format(time.DateOnly)]) > 0,
	}
}

// grid lays cells out in weeks starting on m.weekStart. firstWeekday is
// the weekday of cells[0].
func (m *Model) grid(firstWeekday time.Weekday, cells []cell) string {
	var b strings.Builder
	head := make([]string, 7)
	for i := range head {
		head[i] = weekdayAbbrev[(int(m.weekStart)+i)%7]
	}
	b.WriteString(weekdayStyle.Render(strings.Join(head, " ")))

	col := (int(firstWeekday) - int(m.weekStart) + 7) % 7
	b.WriteString("\n")
	b.WriteString(strings.Repeat("   ", col))
	for i, c := range cells {
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(renderCell(c))
		col++
	}
	// pad to six rows so both panes keep the same height
	rows := strings.Count(b.String(), "\n")
	for ; rows < 6; rows++ {
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(c cell) string {
	text := fmt.Sprintf("%2d", c.day)
	switch {
	case c.selected:
		return selectedStyle.Render(text)
	case c.today:
		return todayStyle.Render(text)
	case c.marked:
		return markedStyle.Render(text)
	case c.ad.Weekday() == time.Saturday:
		return weekendStyle.Render(text)
	}
	return dayStyle.Render(text)
}

func (m *Model) infoPane() string {
	lines := []string{
		labelStyle.Render("AD: ") + valueStyle.Render(fmt.Sprintf("%s (%s)", m.selected.Format(m.adFormat), m.selected.Weekday())),
	}
	bs, err := calendar.ADToBS(m.selected)
	if err != nil {
		lines = append(lines, labelStyle.Render("BS: ")+warnStyle.Render("Year not in supported range"))
	} else {
		lines = append(lines,
			labelStyle.Render("BS: ")+bsValueStyle.Render(fmt.Sprintf("%d %s %d (%s)", bs.Day(), bs.Month(), bs.Year(), bs)),
			labelStyle.Render(fmt.Sprintf("Day %d of the year, %d left in %s", bs.DayOfYear(), bs.DaysLeftInMonth(), bs.Month())),
		)
	}
	for _, b := range m.marks[m.selected.Format(time.DateOnly)] {
		label := b.Label
		if label == "" {
			label = "(no label)"
		}
		lines = append(lines, bookmarkStyle.Render("★ "+label))
	}
	return paneStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return renderBar(statusErrBarStyle, m.width, m.errMsg)
	}
	return renderBar(statusBarStyle, m.width, m.status)
}

func (m *Model) footer() string {
	if m.mode != modeNormal {
		return footerStyle.Render(m.help.View(inputKeys{Submit: m.keys.Submit, Cancel: m.keys.Cancel}))
	}
	return footerStyle.Render(m.help.View(m.keys))
}

func (m *Model) helpPopup() string {
	full := m.help
	full.ShowAll = true
	body := modalTitleStyle.Render("Keys") + "\n\n" + full.View(m.keys) + "\n\n" + helpDescStyle.Render("press any key to close")
	return modalStyle.Render(body)
}

func (m *Model) inputPopup() string {
	title := "Go to AD date"
	switch m.mode {
	case modeBS:
		title = "Go to BS date"
	case modeLabel:
		title = "Bookmark"
		if bs, err := calendar.ADToBS(m.selected); err == nil {
			title = "Bookmark " + bs.String()
		}
	}
	return modalStyle.Render(modalTitleStyle.Render(title) + "\n\n" + m.input.View())
}
