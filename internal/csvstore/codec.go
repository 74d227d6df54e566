// Record codec: translates between types.Record and the physical CSV row,
// aligned to the header schema.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/dukaforge/rolodex/pkg/types"
)

// encodeRow flattens a record into a row of values in schema order.
// Columns absent from the record encode as empty strings.
func encodeRow(columns []string, rec types.Record) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = rec[col]
	}
	return row
}

// decodeRow maps a physical row back onto the schema columns.
// Returns ErrSchemaMismatch if the field count disagrees with the header.
func decodeRow(columns []string, row []string) (types.Record, error) {
	if len(row) != len(columns) {
		return nil, fmt.Errorf("%w: got %d fields, header has %d",
			types.ErrSchemaMismatch, len(row), len(columns))
	}
	rec := make(types.Record, len(columns))
	for i, col := range columns {
		rec[col] = row[i]
	}
	return rec, nil
}

// encodeLine serializes one record to a single CSV line, including the
// trailing newline. Fields containing the delimiter, quote character, or
// line breaks are quoted per RFC 4180; embedded quotes are doubled.
func encodeLine(columns []string, rec types.Record) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(encodeRow(columns, rec)); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// decodeLine parses a single CSV line into a record keyed by the schema
// columns, in file order.
func decodeLine(columns []string, line string) (types.Record, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	row, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("parse row: %w", err)
	}
	return decodeRow(columns, row)
}
