package command

import (
	"fmt"

	"github.com/dukaforge/rolodex/pkg/types"
)

// UpdateRequest names the record to edit and the fields to replace.
type UpdateRequest struct {
	ID     string
	Fields map[string]string
}

// Update replaces only the named fields of the record whose id matches,
// leaving every other field, including id, untouched.
type Update struct {
	Store types.Store
}

// NewUpdate returns an Update command bound to the store.
func NewUpdate(store types.Store) *Update {
	return &Update{Store: store}
}

// Execute applies the field replacements and persists the full set.
func (c *Update) Execute(data any) (Result, error) {
	req, ok := data.(UpdateRequest)
	if !ok {
		return Result{}, fmt.Errorf("update: want UpdateRequest payload, got %T", data)
	}

	criteria := types.Criteria{types.ColumnID: req.ID}
	if err := c.Store.Update(criteria, req.Fields); err != nil {
		return Result{}, err
	}
	return Result{}, nil
}
