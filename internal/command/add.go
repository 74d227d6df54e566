package command

import (
	"fmt"
	"time"

	"github.com/dukaforge/rolodex/pkg/types"
)

// Add creates a new contact. The payload is a map[string]string of field
// values without an id; the store assigns the id, and Add fills in
// date_added with the current UTC time unless the caller supplied one.
type Add struct {
	Store types.Store

	// Now returns the timestamp for date_added. Defaults to time.Now;
	// injectable for tests.
	Now func() time.Time
}

// NewAdd returns an Add command bound to the store.
func NewAdd(store types.Store) *Add {
	return &Add{Store: store, Now: time.Now}
}

// Execute appends the contact and returns it (with its assigned id) as the
// single element of Result.Records.
func (c *Add) Execute(data any) (Result, error) {
	fields, ok := data.(map[string]string)
	if !ok {
		return Result{}, fmt.Errorf("add: want map[string]string payload, got %T", data)
	}

	rec := types.Record(fields).Clone()
	if rec[types.ColumnDateAdded] == "" {
		now := c.Now
		if now == nil {
			now = time.Now
		}
		rec[types.ColumnDateAdded] = now().UTC().Format(time.RFC3339)
	}

	if err := c.Store.Add(rec); err != nil {
		return Result{}, err
	}
	return Result{Records: []types.Record{rec}}, nil
}
