package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	crumb    lipgloss.Style
	status   lipgloss.Style
	screen   lipgloss.Style
	sheet    lipgloss.Style
	heading  lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	text     lipgloss.Style
	leaving  lipgloss.Style
	err      lipgloss.Style
}

func newStyles(theme string) styles {
	primary, accent, muted, failure := lipgloss.Color("99"), lipgloss.Color("212"), lipgloss.Color("245"), lipgloss.Color("196")
	if theme == "light" {
		primary, accent, muted, failure = lipgloss.Color("57"), lipgloss.Color("162"), lipgloss.Color("240"), lipgloss.Color("160")
	}

	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(primary).PaddingRight(1),
		crumb:   lipgloss.NewStyle().Foreground(muted),
		status:  lipgloss.NewStyle().Foreground(muted).MarginBottom(1),
		screen:  lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 2),
		sheet:   lipgloss.NewStyle().BorderStyle(lipgloss.DoubleBorder()).BorderForeground(accent).Padding(0, 2),
		heading: lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		item:    lipgloss.NewStyle().PaddingLeft(2),
		selected: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(primary).
			PaddingLeft(1),
		text:    lipgloss.NewStyle().Italic(true).Foreground(muted),
		leaving: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		err:     lipgloss.NewStyle().Foreground(failure).Bold(true),
	}
}
