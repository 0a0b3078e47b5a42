// Package tui implements the interactive product browser.
package tui

import "github.com/charmbracelet/lipgloss"

// Colors.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorMuted     = lipgloss.Color("245")
	ColorError     = lipgloss.Color("196")
	ColorOK        = lipgloss.Color("42")
	ColorSelectFG  = lipgloss.Color("229")
	ColorSelectBG  = lipgloss.Color("57")
	ColorHighlight = lipgloss.Color("214")
)

//nolint:gochecknoglobals // Shared styles.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(ColorSelectFG).Background(ColorSelectBG)
	mutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	okStyle       = lipgloss.NewStyle().Foreground(ColorOK)
	warnStyle     = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
)

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keySlash    = "/"
	keyLeft     = "left"
	keyRight    = "right"
	keyH        = "h"
	keyL        = "l"
	keyPlus     = "+"
	keyDelete   = "d"
	keyReload   = "r"
	keyYes      = "y"
	keyNo       = "n"
	keyClearAll = "c"
)

const (
	defaultWidth         = 120
	defaultHeight        = 30
	chromeHeight         = 8
	filterInputCharLimit = 100
	filterInputWidth     = 40
)
