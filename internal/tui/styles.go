package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorRed     = lipgloss.Color("#ff5555")
	colorGreen   = lipgloss.Color("#50fa7b")
	colorYellow  = lipgloss.Color("#f1fa8c")
	colorBlue    = lipgloss.Color("#8be9fd")
	colorOrange  = lipgloss.Color("#ffb86c")
	colorDim     = lipgloss.Color("#6272a4")
	colorBgLight = lipgloss.Color("#343746")
	colorFg      = lipgloss.Color("#f8f8f2")
	colorBorder  = lipgloss.Color("#44475a")
)

// Style definitions.
var (
	insertedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	deletedStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Strikethrough(true)

	substOldStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Strikethrough(true)

	substNewStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	substArrowStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	unchangedStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	commentStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	viewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true).
			Padding(0, 0, 1, 0)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Background(colorBgLight).
			Padding(0, 1)

	helpBarStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)
