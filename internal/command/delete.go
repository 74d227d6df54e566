package command

import (
	"fmt"

	"github.com/dukaforge/rolodex/pkg/types"
)

// Delete removes every contact fully matching the criteria payload
// (types.Criteria or map[string]string). Matching is exact-case, unlike
// List's case-insensitive criteria.
type Delete struct {
	Store types.Store
}

// NewDelete returns a Delete command bound to the store.
func NewDelete(store types.Store) *Delete {
	return &Delete{Store: store}
}

// Execute deletes the matching records and persists the survivors.
func (c *Delete) Execute(data any) (Result, error) {
	var criteria types.Criteria
	switch v := data.(type) {
	case types.Criteria:
		criteria = v
	case map[string]string:
		criteria = types.Criteria(v)
	default:
		return Result{}, fmt.Errorf("delete: want criteria payload, got %T", data)
	}

	if err := c.Store.Delete(criteria); err != nil {
		return Result{}, err
	}
	return Result{}, nil
}
