// Drop command: destroy the contact table.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var dropForce bool

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop the contact table",
	Long: `Drop deletes the physical contact table and everything in it. The
schema and all records are lost; a later command recreates an empty table.

Example:
  rolodex drop --force`,
	Args: cobra.NoArgs,
	RunE: runDrop,
}

func init() {
	dropCmd.Flags().BoolVar(&dropForce, "force", false, "confirm the irreversible drop")
}

func runDrop(cmd *cobra.Command, args []string) error {
	if !dropForce {
		return errors.New("drop is irreversible; pass --force to confirm")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DropTable(); err != nil {
		return fmt.Errorf("drop table: %w", err)
	}

	fmt.Println("Table dropped")
	return nil
}
