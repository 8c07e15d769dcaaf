package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/balkashynov/fluxo/internal/board"
	"github.com/balkashynov/fluxo/internal/console"
	"github.com/balkashynov/fluxo/internal/db"
	"github.com/balkashynov/fluxo/internal/locale"
	"github.com/balkashynov/fluxo/internal/logging"
	"github.com/balkashynov/fluxo/internal/models"
	"github.com/balkashynov/fluxo/internal/notify"
	"github.com/balkashynov/fluxo/internal/project"
	"github.com/balkashynov/fluxo/internal/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the kanban board",
	Long: `Open a new kanban board.

Without --name the project wizard runs first. The board starts with
three columns and lives until you quit.

Modes:
  Interactive: fluxo board
  Quick start: fluxo board --name "Launch" -m Ana -m Bruno
  Scripted:    fluxo board --no-ui < commands.txt`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBoard(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func runBoard(cmd *cobra.Command) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	noUI, _ := cmd.Flags().GetBool("no-ui")
	var fallback io.Writer = io.Discard
	if noUI {
		fallback = os.Stderr
	}
	logger, closeLog, err := logging.New(cfg, fallback)
	if err != nil {
		return err
	}
	defer closeLog()
	defer db.Close()

	loc := locale.New(cfg.Locale)
	projects, err := projectFromFlags(cmd)
	if err != nil {
		return err
	}
	newWorkspace := func() (tui.Workspace, error) {
		return openWorkspace(loc, projects, logger)
	}

	if noUI {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		c := console.New(console.Deps{
			Session:       ws.Session,
			Notifications: ws.Notifications,
			Journal:       ws.Journal,
			Locale:        loc,
			Out:           os.Stdout,
			Logger:        logger,
		})
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := c.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	return tui.RunBoardTUI(tui.Options{
		Project:       projects,
		NewWorkspace:  newWorkspace,
		Locale:        loc,
		Logger:        logger,
		InviteBaseURL: cfg.InviteBaseURL,
		CompactView:   cfg.CompactView,
		Animations:    cfg.Animations,
	})
}

// projectFromFlags creates the project given on the command line, if any
func projectFromFlags(cmd *cobra.Command) (*project.Session, error) {
	projects := project.NewSession()

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		return projects, nil
	}

	var members []models.Assignee
	names, _ := cmd.Flags().GetStringSlice("member")
	for _, memberName := range names {
		var err error
		members, _, err = project.AddMember(members, memberName)
		if err != nil {
			return nil, err
		}
	}

	logo, _ := cmd.Flags().GetString("logo")
	if _, err := projects.Create(name, logo, members); err != nil {
		return nil, err
	}
	return projects, nil
}

// openWorkspace starts a fresh session store and a seeded board on it
func openWorkspace(loc locale.Locale, roster board.Roster, logger *logrus.Logger) (tui.Workspace, error) {
	if err := db.Initialize(); err != nil {
		return tui.Workspace{}, err
	}

	notifications := notify.NewLog(logger)
	journal := notify.NewJournal(logger)
	texts := boardTexts(loc)
	session := board.NewSession(board.Options{
		Roster:   roster,
		Notifier: notifications,
		Journal:  journal,
		Logger:   logger,
		Texts:    &texts,
	})

	return tui.Workspace{
		Session:       session,
		Notifications: notifications,
		Journal:       journal,
	}, nil
}

// boardTexts returns the board strings in the given locale
func boardTexts(loc locale.Locale) board.Texts {
	return board.Texts{
		SeedColumnTitles: loc.SeedColumnTitles(),
		NewColumnTitle:   loc.NewColumnTitle(),
		Assigned:         loc.Assigned,
	}
}

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Project name (skips the wizard)")
	cmd.Flags().StringSliceP("member", "m", nil, "Project member (repeatable)")
	cmd.Flags().String("logo", "", "Path or URL of the project logo")
	cmd.Flags().Bool("no-ui", false, "Read board commands from stdin instead of opening the TUI")
}

func init() {
	addBoardFlags(boardCmd)
}
