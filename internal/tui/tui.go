package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/balkashynov/fluxo/internal/locale"
	"github.com/balkashynov/fluxo/internal/project"
)

// WorkspaceFactory creates a fresh board for a newly created project
type WorkspaceFactory func() (Workspace, error)

// Options configures the board TUI
type Options struct {
	Project       *project.Session
	NewWorkspace  WorkspaceFactory
	Locale        locale.Locale
	Logger        logrus.FieldLogger
	InviteBaseURL string
	CompactView   bool
	Animations    bool
}

type screen int

const (
	screenWizard screen = iota
	screenBoard
)

// shimmerTickMsg is sent when shimmer should update. Ticks from an older
// generation are dropped so only one tick chain runs at a time.
type shimmerTickMsg struct {
	gen int
}

// AppModel switches between the project wizard and the board
type AppModel struct {
	opts   Options
	screen screen
	wizard ProjectModel
	board  BoardModel

	hasBoard bool
	width    int
	height   int
	tickGen  int
	err      error
}

// NewAppModel starts on the board when a project already exists, otherwise
// on the creation wizard
func NewAppModel(opts Options) (AppModel, error) {
	m := AppModel{
		opts:   opts,
		screen: screenWizard,
		wizard: NewProjectModel(opts.InviteBaseURL, opts.Animations),
	}

	if p, err := opts.Project.Project(); err == nil {
		if err := m.openBoard(p.Name); err != nil {
			return m, err
		}
	}
	return m, nil
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.animating() {
		cmds = append(cmds, tick(m.tickGen, m.activeShimmer().GetTickInterval()))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and restarts the shimmer clock when the active
// screen starts animating again
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t, ok := msg.(shimmerTickMsg); ok {
		if t.gen != m.tickGen || !m.animating() {
			return m, nil
		}
		return m, tick(m.tickGen, m.activeShimmer().GetTickInterval())
	}

	wasAnimating := m.animating()
	next, cmd := m.update(msg)
	next.syncShimmer()
	if !wasAnimating && next.animating() {
		next.tickGen++
		cmd = tea.Batch(cmd, tick(next.tickGen, next.activeShimmer().GetTickInterval()))
	}
	return next, cmd
}

func (m AppModel) update(msg tea.Msg) (AppModel, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.wizard, _ = m.wizard.Update(msg)
		if m.hasBoard {
			m.board, _ = m.board.Update(msg)
		}
		return m, nil

	case projectSavedMsg:
		if m.opts.Project.Active() {
			p, err := m.opts.Project.Update(msg.project)
			if err != nil {
				m.wizard.validationErr = err.Error()
				return m, nil
			}
			m.board = m.board.SetProjectName(p.Name)
			m.screen = screenBoard
			return m, nil
		}

		p, err := m.opts.Project.Create(msg.project.Name, msg.project.Logo, msg.project.Members)
		if err != nil {
			m.wizard.validationErr = err.Error()
			return m, nil
		}
		if err := m.openBoard(p.Name); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, nil

	case wizardClosedMsg:
		if !m.hasBoard {
			return m, tea.Quit
		}
		m.screen = screenBoard
		return m, nil

	case openSettingsMsg:
		p, err := m.opts.Project.Project()
		if err != nil {
			return m, nil
		}
		m.wizard = NewEditProjectModel(p, m.opts.InviteBaseURL, m.opts.Animations)
		m.wizard, _ = m.wizard.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.screen = screenWizard
		return m, textinput.Blink

	case projectDeletedMsg:
		m.opts.Project.Delete()
		m.hasBoard = false
		m.board = BoardModel{}
		m.wizard = NewProjectModel(m.opts.InviteBaseURL, m.opts.Animations)
		m.wizard, _ = m.wizard.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.screen = screenWizard
		m.opts.Logger.Info("project deleted")
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	if m.screen == screenBoard {
		m.board, cmd = m.board.Update(msg)
	} else {
		m.wizard, cmd = m.wizard.Update(msg)
	}
	return m, cmd
}

// View renders the active screen
func (m AppModel) View() string {
	if m.screen == screenBoard {
		return m.board.View()
	}
	return m.wizard.View()
}

// openBoard creates a fresh workspace and switches to the board
func (m *AppModel) openBoard(projectName string) error {
	ws, err := m.opts.NewWorkspace()
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}
	m.board = NewBoardModel(ws, m.opts.Locale, m.opts.Logger, projectName, m.opts.CompactView, m.opts.Animations)
	m.board, _ = m.board.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.hasBoard = true
	m.screen = screenBoard
	m.opts.Logger.WithField("project", projectName).Info("board opened")
	return nil
}

// activeShimmer returns the shimmer of the visible screen
func (m AppModel) activeShimmer() *ShimmerState {
	if m.screen == screenBoard && m.hasBoard {
		return m.board.shimmer
	}
	return m.wizard.shimmer
}

func (m AppModel) animating() bool {
	s := m.activeShimmer()
	return s != nil && s.ShouldTick()
}

func (m AppModel) syncShimmer() {
	if m.hasBoard {
		m.board.syncShimmer()
	}
	m.wizard.syncShimmer()
}

func tick(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return shimmerTickMsg{gen: gen}
	})
}

// RunBoardTUI starts the interactive board
func RunBoardTUI(opts Options) error {
	model, err := NewAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AppModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
