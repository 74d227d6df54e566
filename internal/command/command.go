// Package command implements the typed operations the menu and CLI layers
// drive the store through: Add, List, Delete, Update, and the Quit
// sentinel. Every command shares the same execute contract, so callers can
// dispatch on intent without knowing which store operation runs underneath.
package command

import (
	"github.com/dukaforge/rolodex/pkg/types"
)

// Result is the uniform outcome of a command execution. A nil error from
// Execute means success; Records carries list results, Quit signals
// end-of-interaction to the caller.
type Result struct {
	Records []types.Record
	Quit    bool
}

// Command is the capability interface every operation implements.
// The payload type depends on the command; each documents what it expects.
type Command interface {
	Execute(data any) (Result, error)
}

// The concrete commands all satisfy the interface.
var (
	_ Command = (*Add)(nil)
	_ Command = (*List)(nil)
	_ Command = (*Delete)(nil)
	_ Command = (*Update)(nil)
	_ Command = Quit{}
)

// Quit is the terminal no-op intent. It touches no storage and reports a
// stop outcome distinguishable from normal results.
type Quit struct{}

// Execute ignores its payload and returns the stop sentinel.
func (Quit) Execute(any) (Result, error) {
	return Result{Quit: true}, nil
}
