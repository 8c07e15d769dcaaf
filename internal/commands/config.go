package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/fluxo/internal/config"
	"github.com/balkashynov/fluxo/internal/locale"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration fluxo runs with, after applying the config file,
FLUXO_* environment variables and flags. Use --write to save it.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, path, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("# %s\n%s\n", path, data)
		fmt.Printf("# supported locales: %v (using %s)\n", locale.Supported(), locale.New(cfg.Locale).Tag())

		if write, _ := cmd.Flags().GetBool("write"); write {
			if err := config.Save(path, cfg); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("Saved %s\n", path)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fluxo %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	configCmd.Flags().Bool("write", false, "Save the effective configuration to the config file")
}
