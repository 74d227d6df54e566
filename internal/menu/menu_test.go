package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/rolodex/internal/csvstore"
	"github.com/dukaforge/rolodex/pkg/types"
)

// setupStore creates a CSV-backed contact table in a temp dir.
func setupStore(t *testing.T) types.Store {
	t.Helper()
	s, err := csvstore.New(types.Config{
		Backend: types.BackendCSV,
		DataDir: t.TempDir(),
	})
	require.NoError(t, err)
	require.NoError(t, s.CreateTable(types.ContactColumns()))
	return s
}

// runMenu feeds the scripted input lines to a fresh menu and returns the
// produced output.
func runMenu(t *testing.T, store types.Store, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	m := New(store, 2, in, &out)
	require.NoError(t, m.Run())
	return out.String()
}

func TestQuitImmediately(t *testing.T) {
	store := setupStore(t)
	out := runMenu(t, store, "Q")
	assert.Contains(t, out, "(A) Add a contact")
}

func TestEOFEndsSession(t *testing.T) {
	store := setupStore(t)
	var out bytes.Buffer
	m := New(store, 2, strings.NewReader(""), &out)
	assert.NoError(t, m.Run())
}

func TestAddThenListContact(t *testing.T) {
	store := setupStore(t)

	out := runMenu(t, store,
		"A",        // add a contact
		"Doe",      // last name
		"Jane",     // first name
		"",         // middle name (optional)
		"",         // work phone (optional)
		"555-1111", // personal phone
		"L",        // list
		"Q",        // leave paging
		"Q",        // quit
	)

	assert.Contains(t, out, "Contact added!")
	assert.Contains(t, out, "Doe\tJane")

	records, err := store.List(nil, "", nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0][types.ColumnID])
}

func TestRequiredFieldReprompts(t *testing.T) {
	store := setupStore(t)

	runMenu(t, store,
		"A",
		"",    // last name missing, re-asked
		"Doe", // last name
		"Jane",
		"",
		"",
		"555-1111",
		"Q",
	)

	records, err := store.List(nil, "", nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Doe", records[0][types.ColumnLastName])
}

func TestInvalidChoiceReprompts(t *testing.T) {
	store := setupStore(t)
	out := runMenu(t, store, "X", "Q")
	assert.Contains(t, out, "Invalid choice")
}

func TestPagingThroughContacts(t *testing.T) {
	store := setupStore(t)
	for _, name := range []string{"A", "B", "C", "D"} {
		require.NoError(t, store.Add(types.Record{
			types.ColumnLastName:      name,
			types.ColumnPersonalPhone: "555-0000",
			types.ColumnDateAdded:     "2024-01-02T03:04:05Z",
		}))
	}

	out := runMenu(t, store,
		"L", // first page: A, B
		"N", // next page: C, D
		"P", // back: A, B
		"Q", // leave paging
		"Q", // quit
	)

	assert.Contains(t, out, "(P) Previous page")
	assert.Contains(t, out, "C\t")
	assert.Contains(t, out, "D\t")
}

func TestSearchContacts(t *testing.T) {
	store := setupStore(t)
	for _, name := range []string{"Smith", "Jones"} {
		require.NoError(t, store.Add(types.Record{
			types.ColumnLastName:      name,
			types.ColumnFirstName:     "Test",
			types.ColumnPersonalPhone: "555-0000",
			types.ColumnDateAdded:     "2024-01-02T03:04:05Z",
		}))
	}

	out := runMenu(t, store,
		"S",
		"last_name", // field
		`"SMITH"`,   // value, cleaned to smith
		"Q",
	)

	assert.Contains(t, out, "Smith\t")
	assert.NotContains(t, out, "Jones\t")
}

func TestDeleteContact(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Add(types.Record{
		types.ColumnLastName:      "Doe",
		types.ColumnPersonalPhone: "555-0000",
		types.ColumnDateAdded:     "2024-01-02T03:04:05Z",
	}))

	out := runMenu(t, store,
		"D",
		"1", // contact id
		"Q",
	)
	assert.Contains(t, out, "Contact deleted!")

	records, err := store.List(nil, "", nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestEditContact(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Add(types.Record{
		types.ColumnLastName:      "Doe",
		types.ColumnPersonalPhone: "555-0000",
		types.ColumnDateAdded:     "2024-01-02T03:04:05Z",
	}))

	out := runMenu(t, store,
		"E",
		"1",          // contact id
		"work_phone", // field
		"555-9999",   // new value
		"Q",
	)
	assert.Contains(t, out, "Contact updated!")

	records, err := store.List(nil, "", nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "555-9999", records[0][types.ColumnWorkPhone])
}

func TestFailedOperationKeepsSessionAlive(t *testing.T) {
	store := setupStore(t)

	out := runMenu(t, store,
		"E",
		"1",
		"no_such_field",
		"value",
		"Q",
	)
	assert.Contains(t, out, "Error:")
	// The main menu came back after the error.
	assert.Contains(t, out, "(A) Add a contact")
}

func TestCleanQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`  Smith  `, "smith"},
		{`"Smith"`, "smith"},
		{"Mary   Jane", "mary jane"},
		{"ALL CAPS", "all caps"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanQuery(tt.in))
	}
}
