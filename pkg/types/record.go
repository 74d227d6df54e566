package types

// Contact table column names, in schema order. The schema is fixed at
// table-creation time; changing it requires dropping and recreating the
// table.
const (
	ColumnID            = "id"
	ColumnLastName      = "last_name"
	ColumnFirstName     = "first_name"
	ColumnMiddleName    = "middle_name"
	ColumnWorkPhone     = "work_phone"
	ColumnPersonalPhone = "personal_phone"
	ColumnDateAdded     = "date_added"
)

// ContactColumns returns the contact schema column list in file order.
func ContactColumns() []string {
	return []string{
		ColumnID,
		ColumnLastName,
		ColumnFirstName,
		ColumnMiddleName,
		ColumnWorkPhone,
		ColumnPersonalPhone,
		ColumnDateAdded,
	}
}

// Record is one row of the table: a mapping from schema column name to
// string value. All values are strings; empty means "not provided". The id
// is a decimal string assigned by the store, never by the caller.
type Record map[string]string

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	cp := make(Record, len(r))
	for k, v := range r {
		cp[k] = v
	}
	return cp
}
