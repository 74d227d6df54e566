// Menu command: the interactive menu-driven interface.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu",
	Long: `Menu starts the interactive session: an options menu for adding,
listing, searching, editing, and deleting contacts, with paged listing.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	return menu.New(store, cfg.PageSize, os.Stdin, os.Stdout).Run()
}
