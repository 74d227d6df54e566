// Init command: create configuration and storage.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize rolodex storage",
	Long: `Init creates the configuration directory with a default config.yaml
and the contact table in the data directory. Running init on an existing
setup is harmless; nothing is overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return err
	}
	if err := writeDefaultConfig(configDir); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Fprintln(cmd.OutOrStdout(), "Rolodex initialized successfully")
	return nil
}
