package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tamirms/handrank"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// styleCategory colours made hands by strength; ineligible hands are red.
func styleCategory(c handrank.Category) string {
	switch c {
	case handrank.Ineligible:
		return badStyle.Render(c.String())
	case handrank.StraightFlush, handrank.RoyalFlush, handrank.FourOfAKind, handrank.FourCards:
		return okStyle.Render(c.String())
	}
	return categoryStyle.Render(c.String())
}
