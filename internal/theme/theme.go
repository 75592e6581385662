package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorTeal     = lipgloss.AdaptiveColor{Dark: "#4DB6AC", Light: "#00796B"}
	ColorDeepTeal = lipgloss.AdaptiveColor{Dark: "#80CBC4", Light: "#004D40"}
	ColorRed      = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#D32F2F"}
	ColorBinTint  = lipgloss.AdaptiveColor{Dark: "#3B2326", Light: "#FFEBEE"}
	ColorGray     = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#888888"}
	ColorText     = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#333333"}
	ColorWhite    = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#FFFFFF"}
	ColorSubtle   = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder   = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the application title bar.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorTeal).
	Padding(0, 1)

// SubHeaderStyle titles the task and bin sections.
var SubHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorDeepTeal).
	MarginBottom(1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps an unfocused section.
var PanelStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// FocusedPanelStyle wraps the section that receives key input.
var FocusedPanelStyle = PanelStyle.
	BorderForeground(ColorTeal)

// InputStyle frames the entry field.
var InputStyle = lipgloss.NewStyle().
	Foreground(ColorText).
	Padding(0, 1)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2).
	Foreground(ColorText)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorTeal).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorTeal)

// CompletedStyle strikes through finished tasks.
var CompletedStyle = lipgloss.NewStyle().
	Strikethrough(true).
	Foreground(ColorGray)

// BinItemStyle is used for tasks sitting in the bin.
var BinItemStyle = lipgloss.NewStyle().
	PaddingLeft(2).
	Foreground(ColorText).
	Background(ColorBinTint)

// SelectedBinItemStyle highlights the focused bin entry.
var SelectedBinItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorRed).
	Background(ColorBinTint).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorRed)

// RestoreStyle labels the restore action.
var RestoreStyle = lipgloss.NewStyle().
	Foreground(ColorTeal)

// RemoveStyle labels destructive actions.
var RemoveStyle = lipgloss.NewStyle().
	Foreground(ColorRed)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// EmptyStyle is used for placeholder text in empty sections.
var EmptyStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// PanelFor returns the border style for a section given its focus.
func PanelFor(focused bool) lipgloss.Style {
	if focused {
		return FocusedPanelStyle
	}
	return PanelStyle
}
