package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactColumns(t *testing.T) {
	cols := ContactColumns()
	assert.Equal(t, []string{
		"id", "last_name", "first_name", "middle_name",
		"work_phone", "personal_phone", "date_added",
	}, cols)

	// Callers get an independent slice.
	cols[0] = "mutated"
	assert.Equal(t, "id", ContactColumns()[0])
}

func TestRecordClone(t *testing.T) {
	r := Record{ColumnID: "1", ColumnLastName: "Doe"}
	cp := r.Clone()

	cp[ColumnLastName] = "Smith"
	cp[ColumnFirstName] = "Jane"

	assert.Equal(t, "Doe", r[ColumnLastName])
	_, ok := r[ColumnFirstName]
	assert.False(t, ok, "clone must not alias the original")
}
