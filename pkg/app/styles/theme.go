package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#FF4081")
	Secondary  = lipgloss.Color("#C792EA")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#888888")
	Surface    = lipgloss.Color("#1E1E1E")
	Background = lipgloss.Color("#121212")
	Foreground = lipgloss.Color("#EEFFFF")

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Base styles
var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	// Card headings, no margin so cards stay compact
	CardTitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	// Section headings on the details screen
	SectionStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginTop(1)

	// Normal text
	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// Muted/dimmed text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Label column of key/value rows
	LabelStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(14)

	// Selected item
	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			BorderStyle(RoundedBorder).
			BorderForeground(Primary).
			Padding(0, 1)

	// Card style
	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Surface).
			Padding(0, 2)

	// Active/focused card
	ActiveCardStyle = lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(Primary).
			Padding(0, 2)

	// Genre chips
	TagStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(lipgloss.Color("#333333")).
			Padding(0, 1).
			MarginRight(1)

	// Status styles
	StatusOngoing = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	StatusCompleted = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusHiatus = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Spinner while a fetch is in flight
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Primary)

	// Progress bar styles
	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(Muted)

	// Tab styles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(Surface).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	// Input field
	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Surface).
			Padding(0, 1)

	// Focused input
	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)

	// Attribution footer
	AttributionStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Italic(true).
				MarginTop(1)
)

// StatusStyle picks the style for a publication status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "ongoing":
		return StatusOngoing
	case "completed":
		return StatusCompleted
	case "hiatus":
		return StatusHiatus
	case "cancelled":
		return StatusError
	default:
		return MutedStyle
	}
}
