// Package sqlite implements an alternative rolodex storage backend on
// SQLite, behind the same Store interface as the CSV file backend.
//
// Every column is stored as TEXT; insertion order is the implicit rowid.
// List criteria compare case-insensitively via lower(), Delete compares
// exact case, matching the CSV backend's observable behavior.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/rolodex/pkg/types"
)

// Store implements types.Store over a single-table SQLite database file.
type Store struct {
	db      *sql.DB
	table   string
	columns []string // in-memory schema handle; nil until CreateTable.
}

var _ types.Store = (*Store)(nil)

// New opens (or creates) the database file for the table named in cfg,
// rooted at cfg.DataDir. If the table already exists its column list is
// read back as the schema.
func New(cfg types.Config) (*Store, error) {
	cfg = cfg.ApplyDefaults()

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, cfg.Table+".db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, table: cfg.Table}
	columns, err := s.loadColumns()
	if err != nil {
		db.Close()
		return nil, err
	}
	s.columns = columns
	return s, nil
}

// Columns returns a copy of the schema, or nil if no table exists.
func (s *Store) Columns() []string {
	if s.columns == nil {
		return nil
	}
	cols := make([]string, len(s.columns))
	copy(cols, s.columns)
	return cols
}

// CreateTable creates the table with the given TEXT columns if it does not
// already exist. Idempotent: an existing table keeps its stored schema.
func (s *Store) CreateTable(columns []string) error {
	if s.columns != nil {
		return nil
	}

	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = quoteIdent(col) + " TEXT NOT NULL DEFAULT ''"
	}
	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		quoteIdent(s.table), strings.Join(defs, ", "))
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	s.columns = make([]string, len(columns))
	copy(s.columns, columns)
	return nil
}

// DropTable drops the table and clears the schema handle. No-op if the
// table is already absent.
func (s *Store) DropTable() error {
	stmt := "DROP TABLE IF EXISTS " + quoteIdent(s.table)
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("drop table: %w", err)
	}
	s.columns = nil
	return nil
}

// Add assigns the next id (max existing id + 1, numeric) to rec and
// inserts one row.
func (s *Store) Add(rec types.Record) error {
	if s.columns == nil {
		return types.ErrTableNotFound
	}

	var last int
	query := fmt.Sprintf("SELECT COALESCE(MAX(CAST(%s AS INTEGER)), 0) FROM %s",
		quoteIdent(types.ColumnID), quoteIdent(s.table))
	if err := s.db.QueryRow(query).Scan(&last); err != nil {
		return fmt.Errorf("scan last id: %w", err)
	}
	rec[types.ColumnID] = strconv.Itoa(last + 1)

	cols := make([]string, len(s.columns))
	marks := make([]string, len(s.columns))
	args := make([]any, len(s.columns))
	for i, col := range s.columns {
		cols[i] = quoteIdent(col)
		marks[i] = "?"
		args[i] = rec[col]
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(s.table), strings.Join(cols, ", "), strings.Join(marks, ", "))
	if _, err := s.db.Exec(stmt, args...); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// List returns the records matching criteria (case-insensitive AND),
// stable-sorted ascending by orderBy when non-empty, then sliced to page.
// A secondary rowid ordering keeps equal keys in insertion order.
func (s *Store) List(criteria types.Criteria, orderBy string, page *types.Page) ([]types.Record, error) {
	if err := s.checkFields(criteria); err != nil {
		return nil, err
	}
	if orderBy != "" && !s.hasColumn(orderBy) {
		return nil, fmt.Errorf("%w: %q", types.ErrFieldNotFound, orderBy)
	}

	selectCols := make([]string, len(s.columns))
	for i, col := range s.columns {
		selectCols[i] = quoteIdent(col)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s",
		strings.Join(selectCols, ", "), quoteIdent(s.table))

	var args []any
	if len(criteria) > 0 {
		conds := make([]string, 0, len(criteria))
		// Iterate the schema, not the map, for deterministic SQL.
		for _, col := range s.columns {
			want, ok := criteria[col]
			if !ok {
				continue
			}
			conds = append(conds, fmt.Sprintf("lower(%s) = lower(?)", quoteIdent(col)))
			args = append(args, want)
		}
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	if orderBy != "" {
		fmt.Fprintf(&sb, " ORDER BY %s ASC, rowid ASC", quoteIdent(orderBy))
	} else {
		sb.WriteString(" ORDER BY rowid ASC")
	}

	if page != nil {
		start := page.Start
		if start < 0 {
			start = 0
		}
		limit := page.End - start
		if limit < 0 {
			limit = 0
		}
		fmt.Fprintf(&sb, " LIMIT %d OFFSET %d", limit, start)
	}

	rows, err := s.db.Query(sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		values := make([]string, len(s.columns))
		dest := make([]any, len(s.columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec := make(types.Record, len(s.columns))
		for i, col := range s.columns {
			rec[col] = values[i]
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Delete removes every record fully matching criteria with exact-case
// equality. Remaining rows keep their rowids, preserving relative order.
func (s *Store) Delete(criteria types.Criteria) error {
	if err := s.checkFields(criteria); err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "DELETE FROM %s", quoteIdent(s.table))
	args := s.appendExactWhere(&sb, criteria)
	if _, err := s.db.Exec(sb.String(), args...); err != nil {
		return fmt.Errorf("delete records: %w", err)
	}
	return nil
}

// Update replaces only the named fields on every record matching criteria
// (exact case). Rows are updated in place, so id and untouched fields are
// preserved.
func (s *Store) Update(criteria types.Criteria, fields map[string]string) error {
	if err := s.checkFields(criteria); err != nil {
		return err
	}
	for col := range fields {
		if !s.hasColumn(col) {
			return fmt.Errorf("%w: %q", types.ErrFieldNotFound, col)
		}
	}
	if len(fields) == 0 {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "UPDATE %s SET ", quoteIdent(s.table))

	var args []any
	sets := make([]string, 0, len(fields))
	for _, col := range s.columns {
		val, ok := fields[col]
		if !ok {
			continue
		}
		sets = append(sets, quoteIdent(col)+" = ?")
		args = append(args, val)
	}
	sb.WriteString(strings.Join(sets, ", "))

	args = append(args, s.appendExactWhere(&sb, criteria)...)
	if _, err := s.db.Exec(sb.String(), args...); err != nil {
		return fmt.Errorf("update records: %w", err)
	}
	return nil
}

// Close releases the database connection. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// appendExactWhere appends an exact-case WHERE clause for criteria and
// returns the bound arguments. Empty criteria append nothing, matching
// every row.
func (s *Store) appendExactWhere(sb *strings.Builder, criteria types.Criteria) []any {
	if len(criteria) == 0 {
		return nil
	}
	var args []any
	conds := make([]string, 0, len(criteria))
	for _, col := range s.columns {
		want, ok := criteria[col]
		if !ok {
			continue
		}
		conds = append(conds, quoteIdent(col)+" = ?")
		args = append(args, want)
	}
	sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	return args
}

// checkFields verifies every criteria key against the schema.
func (s *Store) checkFields(criteria types.Criteria) error {
	if s.columns == nil {
		return types.ErrTableNotFound
	}
	for col := range criteria {
		if !s.hasColumn(col) {
			return fmt.Errorf("%w: %q", types.ErrFieldNotFound, col)
		}
	}
	return nil
}

func (s *Store) hasColumn(name string) bool {
	for _, col := range s.columns {
		if col == name {
			return true
		}
	}
	return false
}

// loadColumns reads the stored column list for the table, in declaration
// order. Returns nil if the table does not exist.
func (s *Store) loadColumns() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM pragma_table_info(?) ORDER BY cid", s.table)
	if err != nil {
		return nil, fmt.Errorf("read table info: %w", err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column name: %w", err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}
	return columns, nil
}

// quoteIdent quotes a SQL identifier, doubling embedded quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
