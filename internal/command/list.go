package command

import (
	"fmt"

	"github.com/dukaforge/rolodex/pkg/types"
)

// List queries contacts. The payload is an optional criteria mapping
// (types.Criteria or map[string]string; nil lists everything). The command
// carries its ordering and current page window as instance state, so
// repeated pagination calls reuse the same ordering.
type List struct {
	Store   types.Store
	OrderBy string
	Page    types.Page
}

// NewList returns a List command positioned on the first page.
func NewList(store types.Store, orderBy string, pageSize int) *List {
	return &List{
		Store:   store,
		OrderBy: orderBy,
		Page:    types.NewPage(pageSize),
	}
}

// Execute returns the current page of matching records.
func (c *List) Execute(data any) (Result, error) {
	var criteria types.Criteria
	switch v := data.(type) {
	case nil:
	case types.Criteria:
		criteria = v
	case map[string]string:
		criteria = types.Criteria(v)
	default:
		return Result{}, fmt.Errorf("list: want criteria payload, got %T", data)
	}

	page := c.Page
	records, err := c.Store.List(criteria, c.OrderBy, &page)
	if err != nil {
		return Result{}, err
	}
	return Result{Records: records}, nil
}

// Previous returns a copy of the command with its window shifted back one
// page. The receiver is not mutated.
func (c *List) Previous(pageSize int) *List {
	cp := *c
	cp.Page = types.PreviousPage(c.Page, pageSize)
	return &cp
}

// Next returns a copy of the command with its window shifted forward one
// page, recounting the table so the window clamps to the tail. The
// receiver is not mutated.
func (c *List) Next(pageSize int) (*List, error) {
	all, err := c.Store.List(nil, "", nil)
	if err != nil {
		return nil, err
	}
	cp := *c
	cp.Page = types.NextPage(c.Page, len(all), pageSize)
	return &cp, nil
}
