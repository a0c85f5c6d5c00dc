package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent   = colorPink
	colorFocus    = colorLavender
	colorSuccess  = colorGreen
	colorError    = colorRed
	colorWarning  = colorYellow
	colorInfo     = colorTeal
	colorMuted    = colorSubtext0
	colorBorder   = colorSurface1
	colorBookmark = colorPeach
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorMantle).
			Bold(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	paneTitleStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	weekdayStyle   = lipgloss.NewStyle().Foreground(colorMuted)

	dayStyle      = lipgloss.NewStyle().Foreground(colorText)
	weekendStyle  = lipgloss.NewStyle().Foreground(colorRed)
	todayStyle    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Underline(true)
	markedStyle   = lipgloss.NewStyle().Foreground(colorBookmark)
	selectedStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorAccent).
			Bold(true)

	labelStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	valueStyle    = lipgloss.NewStyle().Foreground(colorText)
	bsValueStyle  = lipgloss.NewStyle().Foreground(colorMauve)
	warnStyle     = lipgloss.NewStyle().Foreground(colorWarning)
	bookmarkStyle = lipgloss.NewStyle().Foreground(colorBookmark)

	statusBarStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colorError)
	footerStyle       = lipgloss.NewStyle()
	keyStyle          = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle     = lipgloss.NewStyle().Foreground(colorMuted)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFocus).
			Padding(1, 2)
	modalTitleStyle = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
	promptStyle     = lipgloss.NewStyle().Foreground(colorBlue)
)
