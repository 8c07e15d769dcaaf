package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/fluxo/internal/models"
	"github.com/balkashynov/fluxo/internal/project"
)

// Step represents the current step in the project wizard
type Step int

const (
	StepName Step = iota
	StepLogo
	StepMembers
	StepInvite
	StepSave
)

var stepLabels = []string{"Name", "Logo", "Members", "Invite", "Save"}

// projectSavedMsg carries the project the wizard produced
type projectSavedMsg struct {
	project models.Project
}

// wizardClosedMsg is sent when the wizard is left without saving
type wizardClosedMsg struct{}

// projectDeletedMsg is sent when the user confirms deleting the project
type projectDeletedMsg struct{}

// ProjectModel is the project creation wizard. In edit mode it doubles as
// the project settings screen.
type ProjectModel struct {
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	name    string
	logo    string
	members []models.Assignee

	memberCursor  int
	inviteLink    string
	inviteBaseURL string

	original   *models.Project
	isEditMode bool

	validationErr string

	showSaveModal   bool
	saveModalChoice bool // true for Yes, false for No

	deleteModal *confirmModal

	shimmer *ShimmerState
}

// NewProjectModel creates the wizard for a new project
func NewProjectModel(inviteBaseURL string, animations bool) ProjectModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[StepName].Placeholder = "Project name... (required)"
	inputs[StepName].CharLimit = 80
	inputs[StepName].Focus()

	inputs[StepLogo].Placeholder = "Path or URL of a logo image (Enter to skip)"
	inputs[StepLogo].CharLimit = 300

	inputs[StepMembers].Placeholder = "Member name (Enter on empty to continue)"
	inputs[StepMembers].CharLimit = 60

	return ProjectModel{
		currentStep:   StepName,
		inputs:        inputs,
		members:       []models.Assignee{},
		inviteBaseURL: inviteBaseURL,
		shimmer:       NewShimmerState(DefaultShimmerConfig(animations)),
	}
}

// NewEditProjectModel creates the settings screen for an existing project
func NewEditProjectModel(p models.Project, inviteBaseURL string, animations bool) ProjectModel {
	m := NewProjectModel(inviteBaseURL, animations)
	m.isEditMode = true
	m.original = &p

	m.name = p.Name
	m.inputs[StepName].SetValue(p.Name)
	m.logo = p.Logo
	m.inputs[StepLogo].SetValue(p.Logo)
	m.members = append([]models.Assignee{}, p.Members...)

	return m
}

// Init initializes the model
func (m ProjectModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m ProjectModel) Update(msg tea.Msg) (ProjectModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.deleteModal != nil {
			return m.handleDeleteModalKeys(msg)
		}
		if m.showSaveModal {
			return m.handleSaveModalKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if !m.hasChanges() {
				return m, func() tea.Msg { return wizardClosedMsg{} }
			}
			m.showSaveModal = true
			m.saveModalChoice = true // Default to "Yes"
			return m, nil

		case "enter":
			return m.handleEnter()

		case "tab", "down":
			if m.currentStep == StepName && strings.TrimSpace(m.name) == "" {
				m.validationErr = "Project name is required"
				return m, nil
			}
			return m.nextStep()

		case "shift+tab", "up":
			return m.prevStep()

		case "ctrl+n":
			if m.currentStep == StepMembers && m.memberCursor < len(m.members)-1 {
				m.memberCursor++
			}
			return m, nil

		case "ctrl+p":
			if m.currentStep == StepMembers && m.memberCursor > 0 {
				m.memberCursor--
			}
			return m, nil

		case "ctrl+x":
			if m.currentStep == StepMembers && len(m.members) > 0 {
				m.members = project.RemoveMember(m.members, m.members[m.memberCursor].ID)
				if m.memberCursor >= len(m.members) && m.memberCursor > 0 {
					m.memberCursor--
				}
			}
			return m, nil

		case "ctrl+d":
			if m.isEditMode {
				m.deleteModal = &confirmModal{
					title:   "Delete Project",
					message: fmt.Sprintf("Are you sure you want to delete %q? The board and all its cards will be lost.", m.original.Name),
				}
			}
			return m, nil

		case "g":
			if m.currentStep == StepInvite {
				m.inviteLink = project.InviteLink(m.inviteBaseURL)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.currentStep < StepInvite {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
		m.updateCurrentField()
	}
	return m, cmd
}

// syncShimmer pauses the preview highlight while a modal is open
func (m ProjectModel) syncShimmer() {
	if m.shimmer == nil {
		return
	}
	m.shimmer.SetActive(m.deleteModal == nil && !m.showSaveModal)
}

// handleEnter processes the Enter key
func (m ProjectModel) handleEnter() (ProjectModel, tea.Cmd) {
	m.validationErr = ""

	switch m.currentStep {
	case StepName:
		if strings.TrimSpace(m.name) == "" {
			m.validationErr = "Project name is required"
			return m, nil
		}
		return m.nextStep()

	case StepLogo:
		return m.nextStep()

	case StepMembers:
		name := strings.TrimSpace(m.inputs[StepMembers].Value())
		if name == "" {
			return m.nextStep()
		}
		members, _, err := project.AddMember(m.members, name)
		if err != nil {
			if errors.Is(err, project.ErrDuplicateMember) {
				m.validationErr = fmt.Sprintf("%s is already a member", name)
			} else {
				m.validationErr = err.Error()
			}
			return m, nil
		}
		m.members = members
		m.memberCursor = len(m.members) - 1
		m.inputs[StepMembers].SetValue("")
		m.inputs[StepMembers].Placeholder = fmt.Sprintf("Add another member (%d so far, Enter on empty to continue)", len(m.members))
		return m, nil

	case StepInvite:
		if m.inviteLink == "" {
			m.inviteLink = project.InviteLink(m.inviteBaseURL)
			return m, nil
		}
		return m.nextStep()

	case StepSave:
		return m.save()
	}

	return m, nil
}

// save validates the project and hands it to the parent model
func (m ProjectModel) save() (ProjectModel, tea.Cmd) {
	name := strings.TrimSpace(m.name)
	if name == "" {
		m.validationErr = "Project name is required"
		m.currentStep = StepName
		m.inputs[StepName].Focus()
		return m, nil
	}

	p := models.Project{
		Name:    name,
		Logo:    strings.TrimSpace(m.logo),
		Members: append([]models.Assignee{}, m.members...),
	}
	return m, func() tea.Msg { return projectSavedMsg{project: p} }
}

// nextStep moves to the next step
func (m ProjectModel) nextStep() (ProjectModel, tea.Cmd) {
	if m.currentStep < StepSave {
		if m.currentStep < StepInvite {
			m.inputs[m.currentStep].Blur()
		}
		m.currentStep++
		if m.currentStep < StepInvite {
			m.inputs[m.currentStep].Focus()
		}
		m.shimmer.Reset()
	}
	return m, textinput.Blink
}

// prevStep moves to the previous step
func (m ProjectModel) prevStep() (ProjectModel, tea.Cmd) {
	if m.currentStep > StepName {
		if m.currentStep < StepInvite {
			m.inputs[m.currentStep].Blur()
		}
		m.currentStep--
		if m.currentStep < StepInvite {
			m.inputs[m.currentStep].Focus()
		}
		m.shimmer.Reset()
	}
	return m, textinput.Blink
}

// updateCurrentField copies the focused input into the model
func (m *ProjectModel) updateCurrentField() {
	switch m.currentStep {
	case StepName:
		m.name = m.inputs[StepName].Value()
	case StepLogo:
		m.logo = m.inputs[StepLogo].Value()
	}
}

// hasChanges checks if anything differs from what the wizard started with
func (m ProjectModel) hasChanges() bool {
	if !m.isEditMode {
		return strings.TrimSpace(m.name) != "" ||
			strings.TrimSpace(m.logo) != "" ||
			len(m.members) > 0
	}

	if strings.TrimSpace(m.name) != m.original.Name || strings.TrimSpace(m.logo) != m.original.Logo {
		return true
	}
	if len(m.members) != len(m.original.Members) {
		return true
	}
	for i := range m.members {
		if m.members[i] != m.original.Members[i] {
			return true
		}
	}
	return false
}

// handleSaveModalKeys handles keys while the save confirmation is shown
func (m ProjectModel) handleSaveModalKeys(msg tea.KeyMsg) (ProjectModel, tea.Cmd) {
	switch msg.String() {
	case "left", "right":
		m.saveModalChoice = !m.saveModalChoice
	case "y", "Y":
		m.saveModalChoice = true
		return m.handleSaveChoice()
	case "n", "N":
		m.saveModalChoice = false
		return m.handleSaveChoice()
	case "enter":
		return m.handleSaveChoice()
	case "esc":
		m.showSaveModal = false
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// handleSaveChoice handles the save confirmation modal response
func (m ProjectModel) handleSaveChoice() (ProjectModel, tea.Cmd) {
	m.showSaveModal = false
	if m.saveModalChoice {
		return m.save()
	}
	return m, func() tea.Msg { return wizardClosedMsg{} }
}

// handleDeleteModalKeys handles keys while the delete project dialog is shown
func (m ProjectModel) handleDeleteModalKeys(msg tea.KeyMsg) (ProjectModel, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "tab":
		toggled := m.deleteModal.toggle()
		m.deleteModal = &toggled
	case "y", "Y":
		m.deleteModal = nil
		return m, func() tea.Msg { return projectDeletedMsg{} }
	case "n", "N", "esc":
		m.deleteModal = nil
	case "enter":
		confirmed := m.deleteModal.yes
		m.deleteModal = nil
		if confirmed {
			return m, func() tea.Msg { return projectDeletedMsg{} }
		}
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// View renders the wizard
func (m ProjectModel) View() string {
	if m.deleteModal != nil {
		return m.deleteModal.render(m.width, m.height)
	}
	if m.showSaveModal {
		return m.renderSaveModal()
	}

	width := m.width - 2
	if width < 40 {
		width = 40
	}
	leftWidth := width * 55 / 100
	rightWidth := width - leftWidth - 4

	leftStyle := lipgloss.NewStyle().
		Width(leftWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)
	rightStyle := lipgloss.NewStyle().
		Width(rightWidth).
		Padding(1)

	if m.width < 85 {
		return leftStyle.Width(width).Render(m.renderWizard() + "\n\n" + m.renderPreview(width))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(m.renderWizard()),
		" ",
		rightStyle.Render(m.renderPreview(rightWidth)),
	)
}

// renderWizard renders the step list and the current input
func (m ProjectModel) renderWizard() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	titleText := "✨ Create your new project"
	if m.isEditMode {
		titleText = "⚙️  Project settings"
	}
	b.WriteString(titleStyle.Render(titleText))
	b.WriteString("\n\n")

	current := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	done := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	future := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	skipped := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	for i, label := range stepLabels {
		step := Step(i)
		if step == StepSave {
			b.WriteString("\n")
			label = "💾 " + label
		}
		switch {
		case step == m.currentStep:
			b.WriteString(current.Render("▶ " + label))
		case m.stepHasValue(step) && (m.isEditMode || step < m.currentStep):
			b.WriteString(done.Render("✓ " + label))
		case step < m.currentStep:
			b.WriteString(skipped.Render("  " + label))
		default:
			b.WriteString(future.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.currentStep {
	case StepName:
		b.WriteString("📋 Project Name\n")
		b.WriteString(m.inputs[StepName].View())
	case StepLogo:
		b.WriteString("🖼  Logo\n")
		b.WriteString(m.inputs[StepLogo].View())
	case StepMembers:
		b.WriteString("👥 Members\n")
		b.WriteString(m.inputs[StepMembers].View())
	case StepInvite:
		b.WriteString("🔗 Invite Link\n")
		if m.inviteLink == "" {
			b.WriteString("Press Enter to generate an invite link")
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(m.inviteLink))
			b.WriteString("\ng: new link | Enter: continue")
		}
	case StepSave:
		if m.isEditMode {
			b.WriteString("💾 Save Changes\nPress Enter to save")
		} else {
			b.WriteString("💾 Create Project\nPress Enter to create the board")
		}
	}

	if m.validationErr != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			MarginTop(1)
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("❌ " + m.validationErr))
	}

	b.WriteString("\n\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	help := "Enter: Next | Tab/↓: Next | Shift+Tab/↑: Back | Esc: Cancel"
	if m.currentStep == StepMembers {
		help += "\nCtrl+N/Ctrl+P: Select member | Ctrl+X: Remove member"
	}
	if m.isEditMode {
		help += "\nCtrl+D: Delete project"
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// renderPreview renders the project card preview
func (m ProjectModel) renderPreview(width int) string {
	var card strings.Builder

	name := strings.TrimSpace(m.name)
	if name == "" {
		name = "Untitled Project"
	}
	cardWidth := width - 4
	if cardWidth < 20 {
		cardWidth = 20
	}

	titleBoxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Center).
		Width(cardWidth - 4)
	card.WriteString(titleBoxStyle.Render(m.shimmer.RenderShimmerText(name, cardWidth-8)))
	card.WriteString("\n")

	if logo := strings.TrimSpace(m.logo); logo != "" {
		card.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render("🖼  " + logo))
		card.WriteString("\n")
	}

	card.WriteString("\n")
	if len(m.members) == 0 {
		card.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Italic(true).Render("No members yet"))
	}
	for i, member := range m.members {
		line := renderAvatar(member.Name) + " " + member.Name
		if m.currentStep == StepMembers && i == m.memberCursor {
			line = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render("▸ ") + line
		} else {
			line = "  " + line
		}
		card.WriteString(line)
		card.WriteString("\n")
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(cardWidth).
		Padding(1)
	return cardStyle.Render(card.String())
}

// stepHasValue checks if a step has been filled with a value (not skipped)
func (m ProjectModel) stepHasValue(step Step) bool {
	switch step {
	case StepName:
		return strings.TrimSpace(m.name) != ""
	case StepLogo:
		return strings.TrimSpace(m.logo) != ""
	case StepMembers:
		return len(m.members) > 0
	case StepInvite:
		return m.inviteLink != ""
	default:
		return false
	}
}

// renderSaveModal renders the save confirmation modal overlay
func (m ProjectModel) renderSaveModal() string {
	var content strings.Builder
	content.WriteString("Save changes?\n\n")

	yesStyle := lipgloss.NewStyle().Padding(0, 2)
	noStyle := lipgloss.NewStyle().Padding(0, 2)
	if m.saveModalChoice {
		yesStyle = yesStyle.
			Background(lipgloss.Color(ColorAccentBright)).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
	} else {
		noStyle = noStyle.
			Background(lipgloss.Color(ColorError)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
	}

	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, yesStyle.Render("Yes"), "   ", noStyle.Render("No")))
	content.WriteString("\n\n")
	content.WriteString("← → or Y/N to choose, Enter to confirm\nEsc to cancel")

	modalStyle := lipgloss.NewStyle().
		Width(50).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentBright)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1).
		Align(lipgloss.Center)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modalStyle.Render(content.String()))
}
