package types

import "errors"

// Criteria maps column names to expected values. Every pair must match for
// a record to be selected (logical AND). List matches case-insensitively;
// Delete matches exact case. The asymmetry is deliberate and observable.
type Criteria map[string]string

// Store provides uniform table operations over a single contact table.
// Implementations own the physical storage exclusively; no other component
// opens the underlying file or database directly.
type Store interface {
	// CreateTable creates the table with the given columns if it does not
	// already exist. Idempotent: an existing table is left untouched and
	// its stored schema wins. Sets the in-memory schema handle.
	CreateTable(columns []string) error

	// DropTable removes the physical table and clears the schema handle.
	// No-op if the table is already absent.
	DropTable() error

	// Columns returns a copy of the schema column list, in file order.
	// Returns nil if no table exists. Callers may read the schema to
	// prompt for field names but can never change it through this.
	Columns() []string

	// Add assigns the next id (max existing id + 1, or 1 for an empty
	// table) to the record and appends it. Returns ErrTableNotFound if
	// CreateTable has not succeeded.
	Add(rec Record) error

	// List returns the records matching criteria, stable-sorted ascending
	// by orderBy when non-empty, then sliced to page when non-nil. Page
	// bounds beyond the result length clamp silently. An unknown criteria
	// or orderBy column returns ErrFieldNotFound.
	List(criteria Criteria, orderBy string, page *Page) ([]Record, error)

	// Delete removes every record fully matching criteria with exact-case
	// equality, preserving the relative order of survivors.
	Delete(criteria Criteria) error

	// Update replaces only the named fields on every record matching
	// criteria (exact case), leaving all other fields untouched.
	Update(criteria Criteria, fields map[string]string) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Store operation errors.
var (
	// ErrTableNotFound reports an operation attempted before CreateTable
	// succeeded, or after the table vanished out from under the store.
	ErrTableNotFound = errors.New("table not found")

	// ErrFieldNotFound reports criteria, orderBy, or update fields that
	// reference a column absent from the schema.
	ErrFieldNotFound = errors.New("field not found in schema")

	// ErrSchemaMismatch reports a stored row whose field count disagrees
	// with the header. The store never attempts to repair the file.
	ErrSchemaMismatch = errors.New("row does not match table schema")
)
