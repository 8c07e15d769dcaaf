package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for fluxo",
	Long:  `Display detailed help for all fluxo commands, flags and board keys.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
███████╗██╗     ██╗   ██╗██╗  ██╗ ██████╗
██╔════╝██║     ██║   ██║╚██╗██╔╝██╔═══██╗
█████╗  ██║     ██║   ██║ ╚███╔╝ ██║   ██║
██╔══╝  ██║     ██║   ██║ ██╔██╗ ██║   ██║
██║     ███████╗╚██████╔╝██╔╝ ██╗╚██████╔╝
╚═╝     ╚══════╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝

fluxo - Kanban board for the terminal

COMMANDS:

  board                   Open a new board
    --name                Project name (skips the wizard)
    -m, --member          Add a project member (repeatable)
    --logo                Logo path or URL
    --no-ui               Read commands from stdin instead of the TUI

    Board keys:
      ←/→ ↑/↓       Navigate columns and cards
      a             Add card (type @name to assign it)
      e / enter     Edit card
      t             Rename column
      c             Add column
      space         Pick up card, move with ←/→, space to drop
      esc           Put the picked up card back
      u / @         Assign card
      x / X         Delete card / column (asks first)
      n             Notifications
      i             Card activity
      v             Compact view
      s             Project settings
      q             Quit

    --no-ui commands:
      show, add <col> <text>, edit <task> <text>, title <col> <text>,
      column, assign <task> <member|->, drag <task> <col>, drop <col>,
      release, rm-task <task> <col>, rm-column <col>, confirm, cancel,
      notifications, history <task>, json, quit

  config                  Show the effective configuration
    --write               Save it to the config file

  version                 Print version information
  help                    Show this help

GLOBAL FLAGS:

  --config                Config file path
  --locale                Board language: en, pt-BR (env FLUXO_LOCALE)
  --log-level             debug, info, warn, error (env FLUXO_LOG_LEVEL)
  --log-file              Log file (env FLUXO_LOG_FILE)

`)
}
