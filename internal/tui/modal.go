package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// confirmModal is a yes/no dialog. Yes is the destructive choice.
type confirmModal struct {
	title   string
	message string
	yes     bool
}

// toggle flips the highlighted button
func (c confirmModal) toggle() confirmModal {
	c.yes = !c.yes
	return c
}

// render draws the modal centered on a width x height canvas
func (c confirmModal) render(width, height int) string {
	modalWidth := 54

	var content strings.Builder
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorError))
	content.WriteString(titleStyle.Render(c.title))
	content.WriteString("\n\n")

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Width(modalWidth - 4)
	content.WriteString(messageStyle.Render(c.message))
	content.WriteString("\n\n")

	yesStyle := lipgloss.NewStyle().Padding(0, 2)
	noStyle := lipgloss.NewStyle().Padding(0, 2)
	if c.yes {
		yesStyle = yesStyle.
			Background(lipgloss.Color(ColorError)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
	} else {
		noStyle = noStyle.
			Background(lipgloss.Color(ColorAccentBright)).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
	}

	content.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Center,
		noStyle.Render("Cancel"),
		"   ",
		yesStyle.Render("Delete"),
	))
	content.WriteString("\n\n")
	content.WriteString("← → or Y/N to choose, Enter to confirm\nEsc to cancel")

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorError)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1).
		Align(lipgloss.Center)

	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		modalStyle.Render(content.String()),
	)
}
