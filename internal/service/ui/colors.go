package ui

import "github.com/charmbracelet/lipgloss"

// ANSI palette indexes so output follows the user's terminal theme.
var (
	// TitleStyle uses cyan, readable on light and dark backgrounds
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle is gray so secondary text recedes
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	TagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	IDStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	ContentStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("8")).
			PaddingLeft(1)
)
