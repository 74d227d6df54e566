// Package csvstore implements the CSV file storage backend for rolodex.
//
// One table is one UTF-8 comma-delimited file: the first line is the header
// (the schema column names in fixed order), every following line is one
// record in schema order. Append is the only incremental write path; every
// other mutation reads the whole table, transforms it in memory, and
// rewrites the file through a temp-file/fsync/rename cycle. Concurrent
// writers are not supported: two processes rewriting the same file race and
// corrupt data. This is a known limitation of the single-user design.
package csvstore

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dukaforge/rolodex/pkg/types"
)

// Store implements types.Store over a single delimited text file.
type Store struct {
	path    string
	columns []string // in-memory schema handle; nil until CreateTable.
}

var _ types.Store = (*Store)(nil)

// New creates a store for the table named in cfg, rooted at cfg.DataDir.
// If the table file already exists its header is read back as the schema;
// the store is then usable without a CreateTable call.
func New(cfg types.Config) (*Store, error) {
	cfg = cfg.ApplyDefaults()

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{path: filepath.Join(dataDir, cfg.Table+".csv")}

	columns, err := s.readHeader()
	if err != nil {
		return nil, err
	}
	s.columns = columns
	return s, nil
}

// Path returns the location of the physical table file.
func (s *Store) Path() string {
	return s.path
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

// CreateTable writes the header line if the table does not already exist.
// Idempotent: an existing schema is never overwritten.
func (s *Store) CreateTable(columns []string) error {
	if s.columns != nil {
		return nil
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create table file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close table file: %w", err)
	}

	s.columns = make([]string, len(columns))
	copy(s.columns, columns)
	return nil
}

// DropTable deletes the physical file and clears the schema handle.
// No-op if the file is already absent.
func (s *Store) DropTable() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove table file: %w", err)
	}
	s.columns = nil
	return nil
}

// Add assigns the next id to rec and appends exactly one line to the file.
// Existing content is never rewritten on this path.
func (s *Store) Add(rec types.Record) error {
	if s.columns == nil {
		return types.ErrTableNotFound
	}

	lastID, err := s.lastID()
	if err != nil {
		return err
	}
	rec[types.ColumnID] = strconv.Itoa(lastID + 1)

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", types.ErrTableNotFound, s.path)
		}
		return fmt.Errorf("open table file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(encodeRow(s.columns, rec)); err != nil {
		f.Close()
		return fmt.Errorf("append record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("append record: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close table file: %w", err)
	}
	return nil
}

// ReadAll returns every record currently in the file, header excluded, in
// file order.
func (s *Store) ReadAll() ([]types.Record, error) {
	if s.columns == nil {
		return nil, types.ErrTableNotFound
	}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", types.ErrTableNotFound, s.path)
		}
		return nil, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// Skip the header line.
	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records []types.Record
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec, err := decodeRow(s.columns, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Close releases resources. The CSV store holds no open handles between
// operations, so Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// lastID scans the file for the maximum assigned id, or 0 when the table
// is empty.
func (s *Store) lastID() (int, error) {
	records, err := s.ReadAll()
	if err != nil {
		return 0, err
	}

	last := 0
	for _, rec := range records {
		id, err := strconv.Atoi(rec[types.ColumnID])
		if err != nil {
			return 0, fmt.Errorf("%w: non-numeric id %q",
				types.ErrSchemaMismatch, rec[types.ColumnID])
		}
		if id > last {
			last = id
		}
	}
	return last, nil
}

// overwriteAll replaces the file contents with header plus the given
// records, in order. The write goes to a temp file which is fsynced and
// renamed over the table, so readers never observe a half-written table.
func (s *Store) overwriteAll(records []types.Record) error {
	if s.columns == nil {
		return types.ErrTableNotFound
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".csv-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	bw := bufio.NewWriter(tmp)
	w := csv.NewWriter(bw)
	if err := w.Write(s.columns); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(encodeRow(s.columns, rec)); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing rows: %w", err)
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// readHeader returns the header columns of an existing table file, or nil
// if the file is missing or empty.
func (s *Store) readHeader() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	row, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	return row, nil
}
