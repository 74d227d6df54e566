// Root command and global flags for the rolodex CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/paths"
	"github.com/dukaforge/rolodex/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// cfg holds the effective configuration, resolved by PersistentPreRunE so
// every subcommand can use it.
var cfg types.Config

var rootCmd = &cobra.Command{
	Use:   "rolodex",
	Short: "Rolodex is a personal contact manager",
	Long: `Rolodex stores contacts in a flat delimited-text file (or a SQLite
database) and provides add, list, update, and delete operations plus an
interactive menu.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		v, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		dataDir, err := paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir))
		if err != nil {
			return err
		}

		cfg = types.Config{
			Backend:  v.GetString(cfgKeyBackend),
			DataDir:  dataDir,
			Table:    v.GetString(cfgKeyTable),
			PageSize: v.GetInt(cfgKeyPageSize),
		}.ApplyDefaults()
		return cfg.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.rolodex-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(menuCmd)
}
