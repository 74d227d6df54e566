// Add command: create a new contact.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/command"
	"github.com/dukaforge/rolodex/pkg/types"
)

var (
	addLast     string
	addFirst    string
	addMiddle   string
	addWork     string
	addPersonal string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new contact",
	Long: `Add creates a new contact. The id and date_added fields are assigned
by the store.

Example:
  rolodex add --last Doe --first Jane --personal 555-1111
  rolodex add --last Smith --first Bob --work 555-2222 --json`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addLast, "last", "", "last name (required)")
	addCmd.Flags().StringVar(&addFirst, "first", "", "first name (required)")
	addCmd.Flags().StringVar(&addMiddle, "middle", "", "middle name")
	addCmd.Flags().StringVar(&addWork, "work", "", "work phone")
	addCmd.Flags().StringVar(&addPersonal, "personal", "", "personal phone (required)")
	_ = addCmd.MarkFlagRequired("last")
	_ = addCmd.MarkFlagRequired("first")
	_ = addCmd.MarkFlagRequired("personal")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	res, err := command.NewAdd(store).Execute(map[string]string{
		types.ColumnLastName:      addLast,
		types.ColumnFirstName:     addFirst,
		types.ColumnMiddleName:    addMiddle,
		types.ColumnWorkPhone:     addWork,
		types.ColumnPersonalPhone: addPersonal,
	})
	if err != nil {
		return fmt.Errorf("add contact: %w", err)
	}

	if flagJSON {
		return printRecords(res.Records, store.Columns())
	}
	fmt.Printf("Added contact %s\n", res.Records[0][types.ColumnID])
	return nil
}
