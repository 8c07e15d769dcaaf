// Package console drives a board session from line commands, for terminals
// without a full-screen UI and for scripting.
package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/balkashynov/fluxo/internal/board"
	"github.com/balkashynov/fluxo/internal/locale"
	"github.com/balkashynov/fluxo/internal/models"
	"github.com/balkashynov/fluxo/internal/notify"
	"github.com/balkashynov/fluxo/internal/parser"
)

// errQuit ends the command loop
var errQuit = errors.New("quit")

// Console executes board commands and writes their results to out
type Console struct {
	session       *board.Session
	notifications *notify.Log
	journal       *notify.Journal
	locale        locale.Locale
	out           io.Writer
	log           logrus.FieldLogger
}

// Deps are the collaborators a Console works with
type Deps struct {
	Session       *board.Session
	Notifications *notify.Log
	Journal       *notify.Journal
	Locale        locale.Locale
	Out           io.Writer
	Logger        logrus.FieldLogger
}

// New creates a console over a board session
func New(deps Deps) *Console {
	return &Console{
		session:       deps.Session,
		notifications: deps.Notifications,
		journal:       deps.Journal,
		locale:        deps.Locale,
		out:           deps.Out,
		log:           deps.Logger,
	}
}

// Run reads commands from in until EOF, "quit" or ctx is cancelled. Command
// errors are printed and do not stop the loop.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return ctx.Err()
				}
			}

			err := c.Exec(line)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintf(c.out, "Error: %v\n", err)
			}
			c.flushNotifications()
		}
	}
}

// Exec runs a single command line
func (c *Console) Exec(line string) error {
	name, rest := splitWord(strings.TrimSpace(line))
	if name == "" || strings.HasPrefix(name, "#") {
		return nil
	}
	c.log.WithField("command", name).Debug("console command")

	switch name {
	case "show":
		c.show()
		return nil
	case "add":
		return c.add(rest)
	case "edit":
		id, text := splitWord(rest)
		return c.session.UpdateTaskContent(id, text)
	case "title":
		id, text := splitWord(rest)
		return c.session.UpdateColumnTitle(id, text)
	case "column":
		column := c.session.AddColumn()
		fmt.Fprintf(c.out, "Added %s (%s)\n", column.ID, column.Title)
		return nil
	case "assign":
		return c.assign(rest)
	case "drag":
		taskID, columnID := splitWord(rest)
		if taskID == "" || columnID == "" {
			return errors.New("usage: drag <task> <column>")
		}
		c.session.Drag.Start(taskID, columnID)
		return nil
	case "drop":
		return c.session.Drag.Drop(strings.TrimSpace(rest))
	case "release":
		c.session.Drag.End()
		return nil
	case "rm-task":
		taskID, columnID := splitWord(rest)
		target, err := c.session.Deletion.RequestTask(taskID, strings.TrimSpace(columnID))
		if err != nil {
			return err
		}
		c.prompt(locale.KeyDeleteTask, target)
		return nil
	case "rm-column":
		target, err := c.session.Deletion.RequestColumn(strings.TrimSpace(rest))
		if err != nil {
			return err
		}
		c.prompt(locale.KeyDeleteColumn, target)
		return nil
	case "confirm":
		return c.session.Deletion.Confirm()
	case "cancel":
		c.session.Deletion.Cancel()
		return nil
	case "notifications":
		return c.listNotifications()
	case "history":
		return c.history(strings.TrimSpace(rest))
	case "json":
		return c.dump()
	case "help":
		c.help()
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try 'help')", name)
	}
}

func (c *Console) add(rest string) error {
	columnID, text := splitWord(rest)
	parsed := parser.ParseCard(text, c.session.Roster())
	if parsed.Content == "" {
		return errors.New("card content is required")
	}
	if len(parsed.Errors) > 0 {
		fmt.Fprintf(c.out, "⚠️  %s\n", strings.Join(parsed.Errors, ", "))
	}

	task, err := c.session.AddTask(columnID, parsed.Content)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Added %s to %s\n", task.ID, columnID)

	if parsed.Assignee != nil {
		return c.session.UpdateTaskAssignee(task.ID, parsed.Assignee)
	}
	return nil
}

func (c *Console) assign(rest string) error {
	taskID, memberID := splitWord(rest)
	if memberID == "-" {
		return c.session.UpdateTaskAssignee(taskID, nil)
	}
	return c.session.UpdateTaskAssignee(taskID, &models.Assignee{ID: memberID})
}

func (c *Console) prompt(titleKey string, target board.DeletionTarget) {
	fmt.Fprintf(c.out, "%s: %s\n", c.locale.Text(titleKey), c.locale.Text(locale.KeyDeleteConfirm, target.Label()))
	fmt.Fprintln(c.out, "Type 'confirm' or 'cancel'.")
}

// show prints the board column by column
func (c *Console) show() {
	snapshot := c.session.Snapshot()
	for _, columnID := range snapshot.ColumnOrder {
		column := snapshot.Columns[columnID]
		fmt.Fprintf(c.out, "%-10s %s (%d)\n", column.ID, column.Title, len(column.TaskIDs))
		for _, taskID := range column.TaskIDs {
			task := snapshot.Tasks[taskID]
			line := fmt.Sprintf("  %-8s %s", task.ID, task.Content)
			if task.Assignee != nil {
				line += " @" + task.Assignee.Name
			}
			if c.session.Drag.Dragging(task.ID) {
				line += " (dragging)"
			}
			fmt.Fprintln(c.out, line)
		}
	}
}

func (c *Console) listNotifications() error {
	entries, err := c.notifications.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.out, c.locale.Text(locale.KeyNoNotifications))
		return nil
	}
	for _, entry := range entries {
		marker := " "
		if entry.Unread {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %-4d %s  %s (%s)\n", marker, entry.ID, entry.Timestamp(), entry.Message, c.notifications.Age(entry.Notification, c.locale))
	}
	c.notifications.MarkRead()
	return nil
}

func (c *Console) history(taskID string) error {
	activities, err := c.journal.Task(taskID)
	if err != nil {
		return err
	}
	if len(activities) == 0 {
		fmt.Fprintf(c.out, "No history for %s\n", taskID)
		return nil
	}
	for _, a := range activities {
		fmt.Fprintf(c.out, "%-16s %-10s %s\n", a.EventType, a.ColumnID, a.Details)
	}
	return nil
}

func (c *Console) dump() error {
	data, err := json.MarshalIndent(c.session.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}
	fmt.Fprintln(c.out, string(data))
	return nil
}

func (c *Console) flushNotifications() {
	for _, message := range c.notifications.Drain() {
		fmt.Fprintf(c.out, "🔔 %s\n", message)
	}
}

func (c *Console) help() {
	fmt.Fprint(c.out, `Commands:
  show                          print the board
  add <column> <text>           add a card (@name assigns it)
  edit <task> <text>            change a card's text
  title <column> <text>         rename a column
  column                        add a column
  assign <task> <member|->      assign a card, '-' clears
  drag <task> <column>          pick up a card from its column
  drop <column>                 drop the picked up card
  release                       put the picked up card back
  rm-task <task> <column>       ask to delete a card
  rm-column <column>            ask to delete a column and its cards
  confirm | cancel              answer a pending deletion
  notifications                 list notifications
  history <task>                show a card's activity
  json                          dump the board as JSON
  quit                          leave
`)
}

// splitWord splits s into its first word and the trimmed remainder
func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	word, rest, _ := strings.Cut(s, " ")
	return word, strings.TrimSpace(rest)
}
