// Query engine: criteria matching, ordering, and slicing layered on a full
// scan, plus the rewrite-based Delete and Update paths.
package csvstore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dukaforge/rolodex/pkg/types"
)

// List returns the records matching criteria. Criteria pairs must all
// match (logical AND), compared case-insensitively with exact equality per
// field. When orderBy is non-empty the result is stable-sorted ascending
// by that column's string value; no numeric coercion, even for id. A
// non-nil page slices the filtered, sorted result, clamping silently.
func (s *Store) List(criteria types.Criteria, orderBy string, page *types.Page) ([]types.Record, error) {
	if err := s.checkFields(criteria); err != nil {
		return nil, err
	}
	if orderBy != "" && !s.hasColumn(orderBy) {
		return nil, fmt.Errorf("%w: %q", types.ErrFieldNotFound, orderBy)
	}

	records, err := s.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(criteria) > 0 {
		filtered := records[:0]
		for _, rec := range records {
			if matchFold(rec, criteria) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	if orderBy != "" {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i][orderBy] < records[j][orderBy]
		})
	}

	if page != nil {
		start, end := page.Clamp(len(records))
		records = records[start:end]
	}
	return records, nil
}

// Delete removes every record fully matching criteria and rewrites the
// file with the survivors in their original relative order. Matching is
// exact-case, unlike List.
func (s *Store) Delete(criteria types.Criteria) error {
	if err := s.checkFields(criteria); err != nil {
		return err
	}

	records, err := s.ReadAll()
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if !matchExact(rec, criteria) {
			kept = append(kept, rec)
		}
	}
	return s.overwriteAll(kept)
}

// Update replaces only the named fields on every record matching criteria
// (exact case) and rewrites the full set. Untouched fields, including id,
// are preserved byte for byte.
func (s *Store) Update(criteria types.Criteria, fields map[string]string) error {
	if err := s.checkFields(criteria); err != nil {
		return err
	}
	for col := range fields {
		if !s.hasColumn(col) {
			return fmt.Errorf("%w: %q", types.ErrFieldNotFound, col)
		}
	}

	records, err := s.ReadAll()
	if err != nil {
		return err
	}

	for _, rec := range records {
		if matchExact(rec, criteria) {
			for col, val := range fields {
				rec[col] = val
			}
		}
	}
	return s.overwriteAll(records)
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

// matchFold reports whether every criteria pair equals the record's value
// under case folding.
func matchFold(rec types.Record, criteria types.Criteria) bool {
	for col, want := range criteria {
		if !strings.EqualFold(rec[col], want) {
			return false
		}
	}
	return true
}

// matchExact reports whether every criteria pair equals the record's value
// exactly.
func matchExact(rec types.Record, criteria types.Criteria) bool {
	for col, want := range criteria {
		if rec[col] != want {
			return false
		}
	}
	return true
}
