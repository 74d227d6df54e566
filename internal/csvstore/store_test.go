package csvstore

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/rolodex/pkg/types"
)

// setupStore creates a CSV store with the contact schema in a temp dir.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(types.Config{
		Backend: types.BackendCSV,
		DataDir: t.TempDir(),
	})
	require.NoError(t, err)
	require.NoError(t, s.CreateTable(types.ContactColumns()))
	return s
}

// addContact appends a record with the given last name and returns it.
func addContact(t *testing.T, s *Store, lastName string) types.Record {
	t.Helper()
	rec := types.Record{
		types.ColumnLastName:      lastName,
		types.ColumnFirstName:     "Test",
		types.ColumnPersonalPhone: "555-0000",
		types.ColumnDateAdded:     "2024-01-02T03:04:05Z",
	}
	require.NoError(t, s.Add(rec))
	return rec
}

func TestCreateTableWritesHeader(t *testing.T) {
	s := setupStore(t)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "id,last_name,first_name,middle_name,work_phone,personal_phone,date_added\n",
		string(data))
	assert.Equal(t, types.ContactColumns(), s.Columns())
}

func TestCreateTableIdempotent(t *testing.T) {
	s := setupStore(t)
	addContact(t, s, "Doe")

	// A second CreateTable must not clobber existing data or schema.
	require.NoError(t, s.CreateTable([]string{"other", "schema"}))
	assert.Equal(t, types.ContactColumns(), s.Columns())

	records, err := s.ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestNewReadsExistingHeader(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendCSV, DataDir: dir}

	s1, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, s1.CreateTable(types.ContactColumns()))
	addContact(t, s1, "Doe")

	// A fresh store over the same file picks the schema up from the header.
	s2, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, types.ContactColumns(), s2.Columns())

	records, err := s2.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0][types.ColumnID])
}

func TestDropTable(t *testing.T) {
	s := setupStore(t)
	addContact(t, s, "Doe")

	require.NoError(t, s.DropTable())
	assert.Nil(t, s.Columns())
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))

	// Dropping again is a no-op.
	assert.NoError(t, s.DropTable())
}

func TestAddRequiresTable(t *testing.T) {
	s, err := New(types.Config{Backend: types.BackendCSV, DataDir: t.TempDir()})
	require.NoError(t, err)

	err = s.Add(types.Record{types.ColumnLastName: "Doe"})
	assert.ErrorIs(t, err, types.ErrTableNotFound)
}

func TestAddAssignsMonotonicIDs(t *testing.T) {
	s := setupStore(t)

	for i := 1; i <= 5; i++ {
		rec := addContact(t, s, "Doe")
		assert.Equal(t, strconv.Itoa(i), rec[types.ColumnID])
	}

	// The next id is always max existing + 1, computed from the current
	// file contents.
	require.NoError(t, s.Delete(types.Criteria{types.ColumnID: "5"}))
	rec := addContact(t, s, "Next")
	assert.Equal(t, "5", rec[types.ColumnID])

	// Deleting a middle record leaves the maximum intact.
	require.NoError(t, s.Delete(types.Criteria{types.ColumnID: "2"}))
	rec = addContact(t, s, "Last")
	assert.Equal(t, "6", rec[types.ColumnID])
}

func TestAddIsPureAppend(t *testing.T) {
	s := setupStore(t)
	addContact(t, s, "First")

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	addContact(t, s, "Second")

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after)[:len(before)],
		"existing content must be untouched by append")
}

func TestReadAllMissingFile(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, os.Remove(s.Path()))

	// Table file deleted out from under the store.
	_, err := s.ReadAll()
	assert.ErrorIs(t, err, types.ErrTableNotFound)
}

func TestReadAllSchemaMismatch(t *testing.T) {
	s := setupStore(t)

	f, err := os.OpenFile(s.Path(), os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("1,Doe\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = s.ReadAll()
	assert.ErrorIs(t, err, types.ErrSchemaMismatch)
}

func TestOverwritePreservesQuoting(t *testing.T) {
	s := setupStore(t)
	rec := types.Record{
		types.ColumnLastName:      `Doe, "Jr."`,
		types.ColumnFirstName:     "Jane",
		types.ColumnPersonalPhone: "555-1111",
		types.ColumnDateAdded:     "2024-01-02T03:04:05Z",
	}
	require.NoError(t, s.Add(rec))

	// Force a rewrite and confirm the awkward value survives.
	require.NoError(t, s.Update(types.Criteria{types.ColumnID: "1"},
		map[string]string{types.ColumnFirstName: "Janet"}))

	records, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, `Doe, "Jr."`, records[0][types.ColumnLastName])
	assert.Equal(t, "Janet", records[0][types.ColumnFirstName])
}

func TestNoStrayTempFilesAfterRewrite(t *testing.T) {
	s := setupStore(t)
	addContact(t, s, "Doe")
	require.NoError(t, s.Delete(types.Criteria{types.ColumnID: "1"}))

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(s.Path()), entries[0].Name())
}
