package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/balkashynov/fluxo/internal/board"
	"github.com/balkashynov/fluxo/internal/locale"
	"github.com/balkashynov/fluxo/internal/models"
	"github.com/balkashynov/fluxo/internal/notify"
	"github.com/balkashynov/fluxo/internal/parser"
)

// Workspace is everything one board lives on
type Workspace struct {
	Session       *board.Session
	Notifications *notify.Log
	Journal       *notify.Journal
}

// Mode represents what the board screen is currently doing
type Mode int

const (
	ModeBoard Mode = iota
	ModeInput
	ModeAssign
	ModeNotifications
	ModeHelp
)

type inputAction int

const (
	inputAddCard inputAction = iota
	inputEditCard
	inputEditTitle
)

// openSettingsMsg asks the app to show the project settings
type openSettingsMsg struct{}

const columnWidth = 32

// BoardModel is the kanban board screen
type BoardModel struct {
	width  int
	height int

	ws          Workspace
	locale      locale.Locale
	log         logrus.FieldLogger
	projectName string

	// cursor
	column int
	row    int

	mode         Mode
	input        textinput.Model
	action       inputAction
	editTarget   string
	assignCursor int
	panel        []notify.Entry

	modalYes     bool
	compact      bool
	showActivity bool

	status      string
	statusError bool

	shimmer *ShimmerState
}

// NewBoardModel creates the board screen for a workspace
func NewBoardModel(ws Workspace, loc locale.Locale, logger logrus.FieldLogger, projectName string, compact, animations bool) BoardModel {
	input := textinput.New()
	input.Width = columnWidth * 2
	input.CharLimit = 500
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return BoardModel{
		ws:          ws,
		locale:      loc,
		log:         logger,
		projectName: projectName,
		input:       input,
		compact:     compact,
		shimmer:     NewShimmerState(DefaultShimmerConfig(animations)),
	}
}

// Update handles messages
func (m BoardModel) Update(msg tea.Msg) (BoardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		if _, pending := m.ws.Session.Deletion.Pending(); pending {
			m = m.handleModalKeys(msg)
		} else {
			switch m.mode {
			case ModeInput:
				m, cmd = m.handleInputKeys(msg)
			case ModeAssign:
				m = m.handleAssignKeys(msg)
			case ModeNotifications, ModeHelp:
				m = m.handleOverlayKeys(msg)
			default:
				m, cmd = m.handleBoardKeys(msg)
			}
		}
		m = m.clampCursor()
		m = m.collectNotifications()
		m.syncShimmer()
		return m, cmd
	}

	if m.mode == ModeInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// syncShimmer pauses the card highlight while a dialog or overlay covers the board
func (m BoardModel) syncShimmer() {
	if m.shimmer == nil {
		return
	}
	_, pending := m.ws.Session.Deletion.Pending()
	m.shimmer.SetActive(!pending && m.mode != ModeNotifications && m.mode != ModeHelp)
}

// handleBoardKeys handles navigation and board commands
func (m BoardModel) handleBoardKeys(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	session := m.ws.Session
	dragging := false
	if _, ok := session.Drag.Active(); ok {
		dragging = true
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "left", "h":
		if m.column > 0 {
			m.column--
			m.row = 0
			m.shimmer.Reset()
		}
	case "right", "l":
		if m.column < len(session.ColumnOrder())-1 {
			m.column++
			m.row = 0
			m.shimmer.Reset()
		}
	case "up", "k":
		if !dragging && m.row > 0 {
			m.row--
			m.shimmer.Reset()
		}
	case "down", "j":
		if !dragging {
			m.row++
			m.shimmer.Reset()
		}

	case " ", "space", "enter":
		if dragging {
			return m.drop(), nil
		}
		if msg.String() == "enter" {
			return m.startInput(inputEditCard)
		}
		if task, columnID, ok := m.selected(); ok {
			session.Drag.Start(task.ID, columnID)
			m.setStatus("Moving "+quote(task.Content)+": ←/→ choose a column, space to drop, esc to cancel", false)
		}

	case "esc":
		if dragging {
			session.Drag.End()
			m.setStatus("Move cancelled", false)
		}

	case "a":
		return m.startInput(inputAddCard)
	case "e":
		return m.startInput(inputEditCard)
	case "t":
		return m.startInput(inputEditTitle)

	case "c":
		column := session.AddColumn()
		m.column = len(session.ColumnOrder()) - 1
		m.row = 0
		m.setStatus("Added column "+quote(column.Title), false)

	case "x", "d":
		if task, columnID, ok := m.selected(); ok {
			if _, err := session.Deletion.RequestTask(task.ID, columnID); err != nil {
				m.setStatus(err.Error(), true)
			}
			m.modalYes = false
		}
	case "X", "D":
		if columnID, ok := m.currentColumnID(); ok {
			if _, err := session.Deletion.RequestColumn(columnID); err != nil {
				m.setStatus(err.Error(), true)
			}
			m.modalYes = false
		}

	case "u", "@":
		if _, _, ok := m.selected(); ok {
			m.mode = ModeAssign
			m.assignCursor = 0
		}

	case "n":
		entries, err := m.ws.Notifications.List()
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.panel = entries
		m.ws.Notifications.MarkRead()
		m.mode = ModeNotifications

	case "v":
		m.compact = !m.compact
	case "i":
		m.showActivity = !m.showActivity
	case "?":
		m.mode = ModeHelp
	case "s":
		return m, func() tea.Msg { return openSettingsMsg{} }
	}

	return m, nil
}

// drop places the card being moved into the focused column
func (m BoardModel) drop() BoardModel {
	active, _ := m.ws.Session.Drag.Active()
	target, ok := m.currentColumnID()
	if !ok {
		m.ws.Session.Drag.End()
		return m
	}
	if err := m.ws.Session.Drag.Drop(target); err != nil {
		m.setStatus(err.Error(), true)
		return m
	}

	column, _ := m.ws.Session.Column(target)
	for i, id := range column.TaskIDs {
		if id == active.TaskID {
			m.row = i
		}
	}
	m.status = ""
	return m
}

// startInput opens the text input for a card or column edit
func (m BoardModel) startInput(action inputAction) (BoardModel, tea.Cmd) {
	m.action = action
	m.input.Reset()

	switch action {
	case inputAddCard:
		if _, ok := m.currentColumnID(); !ok {
			return m, nil
		}
		m.input.Placeholder = "Card text (@name assigns it)"
	case inputEditCard:
		task, _, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.editTarget = task.ID
		m.input.Placeholder = "Card text"
		m.input.SetValue(task.Content)
	case inputEditTitle:
		columnID, ok := m.currentColumnID()
		if !ok {
			return m, nil
		}
		column, _ := m.ws.Session.Column(columnID)
		m.editTarget = columnID
		m.input.Placeholder = "Column title"
		m.input.SetValue(column.Title)
	}

	m.mode = ModeInput
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

// handleInputKeys handles keys while the text input is open
func (m BoardModel) handleInputKeys(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.closeInput()
		return m, nil
	case "enter":
		m = m.submitInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitInput applies the text input to the board
func (m BoardModel) submitInput() BoardModel {
	session := m.ws.Session
	value := m.input.Value()

	switch m.action {
	case inputAddCard:
		columnID, ok := m.currentColumnID()
		if !ok {
			break
		}
		parsed := parser.ParseCard(value, session.Roster())
		if parsed.Content == "" {
			m.setStatus("Card text is required", true)
			return m
		}
		task, err := session.AddTask(columnID, parsed.Content)
		if err != nil {
			m.setStatus(err.Error(), true)
			break
		}
		if parsed.Assignee != nil {
			if err := session.UpdateTaskAssignee(task.ID, parsed.Assignee); err != nil {
				m.setStatus(err.Error(), true)
			}
		}
		if len(parsed.Errors) > 0 {
			m.setStatus(strings.Join(parsed.Errors, ", "), true)
		}
		column, _ := session.Column(columnID)
		m.row = len(column.TaskIDs) - 1

	case inputEditCard:
		if err := session.UpdateTaskContent(m.editTarget, value); err != nil && !errors.Is(err, board.ErrNoOpEdit) {
			m.setStatus(err.Error(), true)
		}

	case inputEditTitle:
		if err := session.UpdateColumnTitle(m.editTarget, value); err != nil && !errors.Is(err, board.ErrNoOpEdit) {
			m.setStatus(err.Error(), true)
		}
	}

	m.closeInput()
	return m
}

func (m *BoardModel) closeInput() {
	m.input.Blur()
	m.input.Reset()
	m.editTarget = ""
	m.mode = ModeBoard
}

// assignOptions lists the picker entries; the first one clears the assignee
func (m BoardModel) assignOptions() []models.Assignee {
	return append([]models.Assignee{{}}, m.ws.Session.Roster()...)
}

// handleAssignKeys handles keys in the assignee picker
func (m BoardModel) handleAssignKeys(msg tea.KeyMsg) BoardModel {
	options := m.assignOptions()

	switch msg.String() {
	case "up", "k":
		if m.assignCursor > 0 {
			m.assignCursor--
		}
	case "down", "j":
		if m.assignCursor < len(options)-1 {
			m.assignCursor++
		}
	case "esc", "q":
		m.mode = ModeBoard
	case "enter":
		task, _, ok := m.selected()
		m.mode = ModeBoard
		if !ok {
			return m
		}
		var assignee *models.Assignee
		if m.assignCursor > 0 {
			assignee = &options[m.assignCursor]
		}
		if err := m.ws.Session.UpdateTaskAssignee(task.ID, assignee); err != nil {
			m.setStatus(err.Error(), true)
		}
	}
	return m
}

// handleOverlayKeys closes the notification panel and help overlay
func (m BoardModel) handleOverlayKeys(msg tea.KeyMsg) BoardModel {
	switch msg.String() {
	case "esc", "q", "n", "?", "enter":
		m.mode = ModeBoard
		m.panel = nil
	}
	return m
}

// handleModalKeys handles the delete confirmation dialog
func (m BoardModel) handleModalKeys(msg tea.KeyMsg) BoardModel {
	deletion := m.ws.Session.Deletion

	switch msg.String() {
	case "left", "right", "tab":
		m.modalYes = !m.modalYes
	case "y", "Y":
		m.confirmDeletion()
	case "n", "N", "esc":
		deletion.Cancel()
	case "enter":
		if m.modalYes {
			m.confirmDeletion()
		} else {
			deletion.Cancel()
		}
	}
	return m
}

func (m *BoardModel) confirmDeletion() {
	if err := m.ws.Session.Deletion.Confirm(); err != nil {
		m.setStatus(err.Error(), true)
	}
	m.modalYes = false
}

// collectNotifications surfaces freshly arrived notifications in the status line
func (m BoardModel) collectNotifications() BoardModel {
	messages := m.ws.Notifications.Drain()
	if len(messages) > 0 {
		m.setStatus("🔔 "+messages[len(messages)-1], false)
	}
	return m
}

// clampCursor keeps the cursor on an existing column and card
func (m BoardModel) clampCursor() BoardModel {
	order := m.ws.Session.ColumnOrder()
	if m.column >= len(order) {
		m.column = len(order) - 1
	}
	if m.column < 0 {
		m.column = 0
		m.row = 0
		return m
	}

	column, _ := m.ws.Session.Column(order[m.column])
	if m.row >= len(column.TaskIDs) {
		m.row = len(column.TaskIDs) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	return m
}

func (m BoardModel) currentColumnID() (string, bool) {
	order := m.ws.Session.ColumnOrder()
	if m.column < 0 || m.column >= len(order) {
		return "", false
	}
	return order[m.column], true
}

// selected returns the card under the cursor and its column
func (m BoardModel) selected() (models.Task, string, bool) {
	columnID, ok := m.currentColumnID()
	if !ok {
		return models.Task{}, "", false
	}
	column, _ := m.ws.Session.Column(columnID)
	if m.row < 0 || m.row >= len(column.TaskIDs) {
		return models.Task{}, "", false
	}
	task, ok := m.ws.Session.Task(column.TaskIDs[m.row])
	return task, columnID, ok
}

func (m *BoardModel) setStatus(text string, isError bool) {
	m.status = text
	m.statusError = isError
	if isError && m.log != nil {
		m.log.WithField("status", text).Debug("board action failed")
	}
}

// SetProjectName updates the header after the project settings change
func (m BoardModel) SetProjectName(name string) BoardModel {
	m.projectName = name
	return m
}

// View renders the board
func (m BoardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if target, pending := m.ws.Session.Deletion.Pending(); pending {
		title := m.locale.Text(locale.KeyDeleteTask)
		if _, ok := target.(board.ColumnDeletion); ok {
			title = m.locale.Text(locale.KeyDeleteColumn)
		}
		modal := confirmModal{
			title:   title,
			message: m.locale.Text(locale.KeyDeleteConfirm, target.Label()),
			yes:     m.modalYes,
		}
		return modal.render(m.width, m.height)
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModeNotifications:
		return m.renderNotifications()
	}

	columns := m.renderColumns()
	if m.showActivity {
		columns = lipgloss.JoinHorizontal(lipgloss.Top, columns, " ", m.renderActivity())
	}

	parts := []string{m.renderHeader(), columns}
	switch m.mode {
	case ModeInput:
		parts = append(parts, m.renderInput())
	case ModeAssign:
		parts = append(parts, m.renderAssignPicker())
	}
	parts = append(parts, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the project name and the notification bell
func (m BoardModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))

	bell := "🔔"
	if unread := m.ws.Notifications.Unread(); unread > 0 {
		bell = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Bold(true).Render(fmt.Sprintf("🔔 %d", unread))
	}

	left := titleStyle.Render("▦ " + m.projectName)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(bell) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + left + strings.Repeat(" ", gap) + bell + "\n"
}

// renderColumns renders the window of columns that fits the terminal
func (m BoardModel) renderColumns() string {
	session := m.ws.Session
	order := session.ColumnOrder()
	active, dragging := session.Drag.Active()

	available := m.width
	if m.showActivity {
		available -= columnWidth + 1
	}
	visible := available / (columnWidth + 1)
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.column >= visible {
		start = m.column - visible + 1
	}
	end := start + visible
	if end > len(order) {
		end = len(order)
	}

	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rendered = append(rendered, m.renderColumn(i, order[i], dragging, active))
	}
	if start > 0 {
		rendered = append([]string{"‹"}, rendered...)
	}
	if end < len(order) {
		rendered = append(rendered, "›")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderColumn renders one column with its cards
func (m BoardModel) renderColumn(index int, columnID string, dragging bool, active board.DragSession) string {
	session := m.ws.Session
	column, _ := session.Column(columnID)
	tasks, _ := session.ColumnTasks(columnID)
	focused := index == m.column

	var b strings.Builder
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	b.WriteString(headerStyle.Render(truncate(column.Title, columnWidth-8)))
	b.WriteString(countStyle.Render(fmt.Sprintf(" (%d)", len(tasks))))
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Italic(true).Render("No cards"))
	}
	for row, task := range tasks {
		b.WriteString(m.renderCard(task, focused && row == m.row, dragging && task.ID == active.TaskID))
		b.WriteString("\n")
	}

	border := ColorBorder
	switch {
	case focused && dragging:
		border = ColorSuccess
	case focused:
		border = ColorAccentMain
	}
	style := lipgloss.NewStyle().
		Width(columnWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
	if h := m.height - 6; h > 4 {
		style = style.Height(h)
	}
	return style.Render(b.String())
}

// renderCard renders a single card
func (m BoardModel) renderCard(task models.Task, selected, moving bool) string {
	inner := columnWidth - 6
	limit := inner
	if m.compact && task.Assignee != nil {
		limit = inner - 5
	}

	content := task.Content
	if m.compact {
		content = truncate(content, limit)
	}
	if moving {
		content = m.shimmer.RenderShimmerText(task.Content, limit)
	}

	var body string
	if m.compact {
		body = content
		if task.Assignee != nil {
			body = renderAvatar(task.Assignee.Name) + " " + content
		}
	} else {
		body = lipgloss.NewStyle().Width(inner).Foreground(lipgloss.Color(ColorPrimaryText)).Render(content)
		if task.Assignee != nil {
			assignee := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(task.Assignee.Name)
			body += "\n" + renderAvatar(task.Assignee.Name) + " " + assignee
		}
	}

	if m.compact && !selected && !moving {
		return " " + body
	}

	border := ColorBorder
	switch {
	case moving:
		border = ColorSuccess
	case selected:
		border = ColorAccentBright
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(inner + 2).
		Padding(0, 1).
		Render(body)
}

// renderActivity renders the history of the selected card
func (m BoardModel) renderActivity() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Render("Activity"))
	b.WriteString("\n\n")

	task, _, ok := m.selected()
	if !ok {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Italic(true).Render("Select a card to see its history"))
	} else {
		history, err := m.ws.Journal.Task(task.ID)
		if err != nil {
			b.WriteString(err.Error())
		}
		for _, entry := range history {
			line := strings.ReplaceAll(entry.EventType, "_", " ")
			if entry.Details != "" {
				line += ": " + entry.Details
			}
			b.WriteString(truncate(line, columnWidth-4))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Width(columnWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Render(b.String())
}

// renderInput renders the open text input
func (m BoardModel) renderInput() string {
	label := "New card"
	switch m.action {
	case inputEditCard:
		label = "Edit card"
	case inputEditTitle:
		label = "Column title"
	}
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1).
		Render(labelStyle.Render(label) + "\n" + m.input.View())
}

// renderAssignPicker renders the member list of the assignee picker
func (m BoardModel) renderAssignPicker() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Render(m.locale.Text(locale.KeyAssignTo)))
	b.WriteString("\n")

	for i, member := range m.assignOptions() {
		cursor := "  "
		if i == m.assignCursor {
			cursor = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render("▸ ")
		}
		if i == 0 {
			b.WriteString(cursor + lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(m.locale.Text(locale.KeyUnassign)))
		} else {
			b.WriteString(cursor + renderAvatar(member.Name) + " " + member.Name)
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1).
		Render(b.String())
}

// renderNotifications renders the notification panel
func (m BoardModel) renderNotifications() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Render("🔔 Notifications"))
	b.WriteString("\n\n")

	if len(m.panel) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true).Render(m.locale.Text(locale.KeyNoNotifications)))
	}
	ageStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	for _, entry := range m.panel {
		marker := "  "
		if entry.Unread {
			marker = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render("● ")
		}
		b.WriteString(marker + entry.Message + "  " + ageStyle.Render(m.ws.Notifications.Age(entry.Notification, m.locale)))
		b.WriteString("\n")
	}

	panel := lipgloss.NewStyle().
		Width(60).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1).
		Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

// renderHelp renders the key binding overlay
func (m BoardModel) renderHelp() string {
	keys := [][2]string{
		{"←/→ h/l", "Move between columns"},
		{"↑/↓ k/j", "Move between cards"},
		{"a", "Add card (@name assigns it)"},
		{"e / enter", "Edit card"},
		{"t", "Rename column"},
		{"c", "Add column"},
		{"space", "Pick up card, space again to drop"},
		{"esc", "Put the card back"},
		{"u / @", "Assign card"},
		{"x", "Delete card"},
		{"X", "Delete column"},
		{"n", "Notifications"},
		{"i", "Card activity"},
		{"v", "Compact view"},
		{"s", "Project settings"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Render("Keys"))
	b.WriteString("\n\n")
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Width(12)
	for _, k := range keys {
		b.WriteString(keyStyle.Render(k[0]) + k[1] + "\n")
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1).
		Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

// renderStatusBar renders the last status message or the key hints
func (m BoardModel) renderStatusBar() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Width(m.width)

	if m.status != "" {
		if m.statusError {
			return style.Foreground(lipgloss.Color(ColorError)).Render("❌ " + m.status)
		}
		return style.Foreground(lipgloss.Color(ColorSecondaryText)).Render(m.status)
	}
	return style.Render("←/→/↑/↓ nav · a add · e edit · space move · u assign · x delete · n notifications · ? help · q quit")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 3 || len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

func quote(s string) string {
	return "\"" + truncate(s, 30) + "\""
}
