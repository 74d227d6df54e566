// Update command: edit fields of an existing contact.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/command"
)

var (
	updateID  string
	updateSet []string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update fields of a contact",
	Long: `Update replaces only the named fields of the contact with the given
id; all other fields are left untouched.

Example:
  rolodex update --id 3 --set work_phone=555-9999
  rolodex update --id 3 --set first_name=Janet --set middle_name=K`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateID, "id", "", "contact id (required)")
	updateCmd.Flags().StringArrayVar(&updateSet, "set", nil, "field=value to replace (repeatable, required)")
	_ = updateCmd.MarkFlagRequired("id")
	_ = updateCmd.MarkFlagRequired("set")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	fields, err := parsePairs(updateSet)
	if err != nil {
		return err
	}

	req := command.UpdateRequest{ID: updateID, Fields: fields}
	if _, err := command.NewUpdate(store).Execute(req); err != nil {
		return fmt.Errorf("update contact: %w", err)
	}

	fmt.Printf("Updated contact %s\n", updateID)
	return nil
}
