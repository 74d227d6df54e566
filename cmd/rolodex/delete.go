// Delete command: remove contacts by id or criteria.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/command"
	"github.com/dukaforge/rolodex/pkg/types"
)

var (
	deleteID    string
	deleteWhere []string
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete contacts",
	Long: `Delete removes every contact matching the given id or criteria.
Criteria match with exact-case equality; all pairs must match.

Example:
  rolodex delete --id 2
  rolodex delete --where last_name=Smith --where first_name=Bob`,
	Args: cobra.NoArgs,
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "contact id to delete")
	deleteCmd.Flags().StringArrayVar(&deleteWhere, "where", nil, "criteria as field=value (repeatable)")
}

func runDelete(cmd *cobra.Command, args []string) error {
	if deleteID == "" && len(deleteWhere) == 0 {
		return errors.New("either --id or --where is required")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	criteria, err := parsePairs(deleteWhere)
	if err != nil {
		return err
	}
	if deleteID != "" {
		criteria[types.ColumnID] = deleteID
	}

	if _, err := command.NewDelete(store).Execute(criteria); err != nil {
		return fmt.Errorf("delete contacts: %w", err)
	}

	fmt.Println("Contacts deleted")
	return nil
}
