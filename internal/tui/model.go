// Package tui is the interactive dual calendar: an AD month and the
// matching BS month side by side, with keyboard navigation, date entry
// in either calendar and per-day bookmarks.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/miti/internal/calendar"
	"github.com/jask/miti/internal/database/repository"
	"github.com/jask/miti/internal/dateinput"
	"github.com/jask/miti/internal/logging"
)

const storeTimeout = 3 * time.Second

// BookmarkStore is the subset of the bookmark repository the UI needs.
type BookmarkStore interface {
	Add(ctx context.Context, date calendar.Date, label string) (repository.Bookmark, error)
	DeleteOnDate(ctx context.Context, date calendar.Date) (int64, error)
	ListInADRange(ctx context.Context, from, to time.Time) ([]repository.Bookmark, error)
}

// Options configures a Model. Zero values are usable.
type Options struct {
	Bookmarks    BookmarkStore // nil disables m and x
	Logger       *logging.Logger
	Location     *time.Location
	WeekStart    time.Weekday
	ADDateFormat string
	ShowHelp     bool
	Now          func() time.Time
}

type inputMode int

const (
	modeNormal inputMode = iota
	modeAD
	modeBS
	modeLabel
)

// Model is the bubbletea model for the calendar viewer.
type Model struct {
	ctx       context.Context
	store     BookmarkStore
	log       *logging.Logger
	keys      keyMap
	help      help.Model
	input     textinput.Model
	mode      inputMode
	showHelp  bool
	weekStart time.Weekday
	adFormat  string

	now      func() time.Time
	loc      *time.Location
	today    time.Time
	selected time.Time

	// bookmarks for the visible range, keyed by AD date
	marks      map[string][]repository.Bookmark
	marksRange string

	errMsg string
	status string

	width  int
	height int
}

// New returns a Model with today selected.
func New(ctx context.Context, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	adFormat := opts.ADDateFormat
	if adFormat == "" {
		adFormat = time.DateOnly
	}

	in := textinput.New()
	in.CharLimit = 32
	in.Width = 24
	in.PromptStyle = promptStyle

	h := help.New()
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = helpDescStyle

	today := civilToday(now, loc)

	return &Model{
		ctx:       ctx,
		store:     opts.Bookmarks,
		log:       log.WithComponent("tui"),
		keys:      defaultKeyMap(),
		help:      h,
		input:     in,
		showHelp:  opts.ShowHelp,
		weekStart: opts.WeekStart,
		adFormat:  adFormat,
		now:       now,
		loc:       loc,
		today:     today,
		selected:  today,
		marks:     map[string][]repository.Bookmark{},
	}
}

// Selected returns the highlighted AD date.
func (m *Model) Selected() time.Time { return m.selected }

// SelectedBS returns the highlighted date in BS, if it is in range.
func (m *Model) SelectedBS() (calendar.Date, error) { return calendar.ADToBS(m.selected) }

type marksMsg struct {
	rangeKey string
	list     []repository.Bookmark
}

type bookmarkAddedMsg struct{ b repository.Bookmark }

type bookmarksRemovedMsg struct {
	date calendar.Date
	n    int64
}

type errMsg struct{ error }

func (m *Model) Init() tea.Cmd {
	return m.loadMarks()
}

// visibleRange spans the AD month and the BS month of the selection.
func (m *Model) visibleRange() (from, to time.Time) {
	y, mo, _ := m.selected.Date()
	from = time.Date(y, mo, 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(y, mo, calendar.ADDaysInMonth(y, mo), 0, 0, 0, 0, time.UTC)

	bs, err := calendar.ADToBS(m.selected)
	if err != nil {
		return from, to
	}
	first, err1 := calendar.NewDate(bs.Year(), bs.Month(), 1)
	n, _ := calendar.DaysInMonth(bs.Year(), bs.Month())
	last, err2 := calendar.NewDate(bs.Year(), bs.Month(), n)
	if err1 != nil || err2 != nil {
		return from, to
	}
	if start, err := calendar.BSToAD(first); err == nil && start.Before(from) {
		from = start
	}
	if end, err := calendar.BSToAD(last); err == nil && end.After(to) {
		to = end
	}
	return from, to
}

func (m *Model) loadMarks() tea.Cmd {
	if m.store == nil {
		return nil
	}
	from, to := m.visibleRange()
	rangeKey := from.Format(time.DateOnly) + ".." + to.Format(time.DateOnly)
	if rangeKey == m.marksRange {
		return nil
	}
	m.marksRange = rangeKey
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, storeTimeout)
		defer cancel()
		list, err := store.ListInADRange(ctx, from, to)
		if err != nil {
			return errMsg{fmt.Errorf("load bookmarks: %w", err)}
		}
		return marksMsg{rangeKey: rangeKey, list: list}
	}
}

func (m *Model) addBookmark(date calendar.Date, label string) tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, storeTimeout)
		defer cancel()
		b, err := store.Add(ctx, date, label)
		if err != nil {
			return errMsg{fmt.Errorf("add bookmark: %w", err)}
		}
		return bookmarkAddedMsg{b: b}
	}
}

func (m *Model) removeBookmarks(date calendar.Date) tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, storeTimeout)
		defer cancel()
		n, err := store.DeleteOnDate(ctx, date)
		if err != nil {
			return errMsg{fmt.Errorf("remove bookmarks: %w", err)}
		}
		return bookmarksRemovedMsg{date: date, n: n}
	}
}

// reloadMarks forces a fetch even when the visible range is unchanged.
func (m *Model) reloadMarks() tea.Cmd {
	m.marksRange = ""
	return m.loadMarks()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case marksMsg:
		if msg.rangeKey != m.marksRange {
			return m, nil
		}
		m.marks = make(map[string][]repository.Bookmark, len(msg.list))
		for _, b := range msg.list {
			k := b.AD.Format(time.DateOnly)
			m.marks[k] = append(m.marks[k], b)
		}
		return m, nil
	case bookmarkAddedMsg:
		m.status = fmt.Sprintf("Bookmarked %s", msg.b.Date)
		m.log.Infow("bookmark added", "id", msg.b.ID, "bs", msg.b.Date.String(), "label", msg.b.Label)
		return m, m.reloadMarks()
	case bookmarksRemovedMsg:
		m.status = fmt.Sprintf("Removed %d bookmark(s) on %s", msg.n, msg.date)
		m.log.Infow("bookmarks removed", "bs", msg.date.String(), "count", msg.n)
		return m, m.reloadMarks()
	case errMsg:
		m.errMsg = msg.Error()
		m.log.WithError(msg.error).Warn("store operation failed")
		return m, nil
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.mode != modeNormal {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.PrevDay):
		m.moveDays(-1)
	case key.Matches(msg, m.keys.NextDay):
		m.moveDays(1)
	case key.Matches(msg, m.keys.PrevWeek):
		m.moveDays(-7)
	case key.Matches(msg, m.keys.NextWeek):
		m.moveDays(7)
	case key.Matches(msg, m.keys.PrevADMonth):
		m.moveADMonths(-1)
	case key.Matches(msg, m.keys.NextADMonth):
		m.moveADMonths(1)
	case key.Matches(msg, m.keys.PrevBSMonth):
		m.moveBSMonths(-1)
	case key.Matches(msg, m.keys.NextBSMonth):
		m.moveBSMonths(1)
	case key.Matches(msg, m.keys.Today):
		m.clearMessages()
		m.today = civilToday(m.now, m.loc)
		m.selected = m.today
	case key.Matches(msg, m.keys.EnterAD):
		m.openInput(modeAD, "AD date (YYYY-MM-DD): ", "2024-04-13")
		return m, textinput.Blink
	case key.Matches(msg, m.keys.EnterBS):
		m.openInput(modeBS, "BS date (YYYY-MM-DD): ", "2081-01-01")
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Bookmark):
		if _, ok := m.bookmarkTarget(); !ok {
			return m, nil
		}
		m.openInput(modeLabel, "Label: ", "")
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Unbookmark):
		date, ok := m.bookmarkTarget()
		if !ok {
			return m, nil
		}
		return m, m.removeBookmarks(date)
	default:
		return m, nil
	}
	return m, m.loadMarks()
}

// bookmarkTarget returns the selected BS date, setting an error when
// bookmarks are unavailable for it.
func (m *Model) bookmarkTarget() (calendar.Date, bool) {
	if m.store == nil {
		m.errMsg = "Bookmarks are not available"
		return calendar.Date{}, false
	}
	bs, err := calendar.ADToBS(m.selected)
	if err != nil {
		m.errMsg = "Year not in supported range"
		return calendar.Date{}, false
	}
	return bs, true
}

func (m *Model) openInput(mode inputMode, prompt, placeholder string) {
	m.clearMessages()
	m.mode = mode
	m.input.Prompt = prompt
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
}

func (m *Model) closeInput() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		mode, value := m.mode, strings.TrimSpace(m.input.Value())
		m.closeInput()
		return m, m.submit(mode, value)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(mode inputMode, value string) tea.Cmd {
	switch mode {
	case modeAD:
		t, err := dateinput.ParseAD(value)
		if err != nil {
			m.errMsg = adInputError(err)
			m.log.LogConversion("input-ad", value, "", err)
			return nil
		}
		m.selected = t
	case modeBS:
		d, err := dateinput.ParseBS(value)
		if err != nil {
			m.errMsg = "Invalid BS date: " + err.Error()
			m.log.LogConversion("input-bs", value, "", err)
			return nil
		}
		t, err := calendar.BSToAD(d)
		m.log.LogConversion("bs2ad", d.String(), t.Format(time.DateOnly), err)
		if err != nil {
			m.errMsg = "Conversion error: " + err.Error()
			return nil
		}
		m.selected = t
	case modeLabel:
		date, ok := m.bookmarkTarget()
		if !ok {
			return nil
		}
		return m.addBookmark(date, value)
	}
	return m.loadMarks()
}

func adInputError(err error) string {
	switch {
	case errors.Is(err, calendar.ErrInvalidADDate):
		return "Invalid AD date"
	case errors.Is(err, dateinput.ErrUnknownMonth):
		return "Invalid AD date: " + err.Error()
	default:
		return "Invalid date format. Use YYYY-MM-DD"
	}
}

func (m *Model) clearMessages() {
	m.errMsg = ""
	m.status = ""
}

func (m *Model) moveDays(n int) {
	m.clearMessages()
	next := m.selected.AddDate(0, 0, n)
	if !inADRange(next) {
		m.errMsg = "Date out of range"
		return
	}
	m.selected = next
}

// moveADMonths keeps the day of month, clamped to the target month.
func (m *Model) moveADMonths(n int) {
	m.clearMessages()
	y, mo, d := m.selected.Date()
	first := time.Date(y, mo+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if !inADRange(first) {
		m.errMsg = "Date out of range"
		return
	}
	fy, fm, _ := first.Date()
	m.selected = time.Date(fy, fm, min(d, calendar.ADDaysInMonth(fy, fm)), 0, 0, 0, 0, time.UTC)
}

func (m *Model) moveBSMonths(n int) {
	m.clearMessages()
	bs, err := calendar.ADToBS(m.selected)
	if err != nil {
		m.errMsg = "Year not in supported range"
		return
	}
	next, err := bs.AddMonths(n)
	if err != nil {
		m.errMsg = "Year not in supported range"
		return
	}
	t, err := calendar.BSToAD(next)
	if err != nil {
		m.errMsg = "Conversion error: " + err.Error()
		return
	}
	m.selected = t
}

// civilToday is the current date in loc as midnight UTC.
func civilToday(now func() time.Time, loc *time.Location) time.Time {
	y, mo, d := now().In(loc).Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func inADRange(t time.Time) bool {
	return t.Year() >= 1 && t.Year() <= 9999
}
