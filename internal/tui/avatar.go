package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/fluxo/internal/project"
)

// renderAvatar draws a member's initials on their avatar color
func renderAvatar(name string) string {
	initials := project.Initials(name)
	if initials == "" {
		initials = "?"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(project.AvatarColor(name))).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 1).
		Render(initials)
}
