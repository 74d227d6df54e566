// List command: query and page through contacts.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/command"
	"github.com/dukaforge/rolodex/pkg/types"
)

var (
	listWhere   []string
	listOrderBy string
	listPage    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Long: `List prints contacts, optionally filtered, ordered, and paged.

Filters use exact, case-insensitive equality per field; multiple --where
flags must all match.

Example:
  rolodex list
  rolodex list --where last_name=Smith
  rolodex list --order-by last_name --page 2
  rolodex list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringArrayVar(&listWhere, "where", nil, "filter as field=value (repeatable)")
	listCmd.Flags().StringVar(&listOrderBy, "order-by", "", "column to sort ascending by")
	listCmd.Flags().IntVar(&listPage, "page", 0, "page number, 1-based (0 = all records)")
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	criteria, err := parsePairs(listWhere)
	if err != nil {
		return err
	}

	var records []types.Record
	if listPage > 0 {
		list := command.NewList(store, listOrderBy, cfg.PageSize)
		list.Page = types.Page{
			Start: (listPage - 1) * cfg.PageSize,
			End:   listPage * cfg.PageSize,
		}
		res, err := list.Execute(criteria)
		if err != nil {
			return fmt.Errorf("list contacts: %w", err)
		}
		records = res.Records
	} else {
		records, err = store.List(types.Criteria(criteria), listOrderBy, nil)
		if err != nil {
			return fmt.Errorf("list contacts: %w", err)
		}
	}

	return printRecords(records, store.Columns())
}
