package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/fluxo/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// persistent flags
var (
	configPath string
	localeFlag string
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "fluxo",
	Short: "A kanban board for your terminal",
	Long: `fluxo is a kanban board that lives in your terminal.
Create a project, invite your team, and move cards across columns.
Boards live in memory and are gone when you quit.`,
	SilenceUsage: true,
}

// loadConfig reads the config file and applies environment and flag overrides
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	path := configPath
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return config.Config{}, "", err
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg = config.ApplyEnv(cfg)

	flags := cmd.Flags()
	if flags.Changed("locale") {
		cfg.Locale = localeFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	return cfg, path, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is <user config dir>/fluxo/config.json)")
	cmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "Board language: en, pt-BR")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
}

func init() {
	addGlobalFlags(rootCmd)

	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
