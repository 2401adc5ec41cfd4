package tui

import "github.com/charmbracelet/lipgloss"

var (
	borderStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedBorder  = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true)
	placeholderText = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStatus     = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	promptStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("218"))
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// box-drawing runes used by the rune-grid renderer in view.go.
const (
	runeHorizontal  = '─'
	runeVertical    = '│'
	runeTopLeft     = '┌'
	runeTopRight    = '┐'
	runeBottomLeft  = '└'
	runeBottomRight = '┘'
	runeSpace       = ' '
)

// cellKind marks what a grid cell holds, so render can style runs of cells
// differently: plain borders, a selected item's border, a placeholder's
// label, or a live item's title.
type cellKind int

const (
	cellPlain cellKind = iota
	cellSelectedBorder
	cellPlaceholderLabel
	cellTitle
)

func (k cellKind) style() lipgloss.Style {
	switch k {
	case cellSelectedBorder:
		return selectedBorder
	case cellPlaceholderLabel:
		return placeholderText
	case cellTitle:
		return titleStyle
	default:
		return borderStyle
	}
}
