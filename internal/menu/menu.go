// Package menu implements the interactive menu-driven interface over the
// command layer. Navigation is an explicit state machine with three
// states; quitting a paging loop returns to the main menu instead of
// re-entering it, so the call stack stays flat no matter how long the
// session runs.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dukaforge/rolodex/internal/command"
	"github.com/dukaforge/rolodex/pkg/types"
)

// state is a menu navigation state.
type state int

const (
	stateMain state = iota
	statePaging
	stateExit
)

// Menu drives the interactive session: it prompts on out, reads intents
// and field values from in, and executes commands against the store.
type Menu struct {
	store    types.Store
	pageSize int
	in       *bufio.Reader
	out      io.Writer

	// list is the active List command while paging; its window and
	// ordering persist across Previous/Next.
	list *command.List
}

// New returns a menu bound to the store and the given I/O streams.
func New(store types.Store, pageSize int, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store:    store,
		pageSize: pageSize,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run executes the menu loop until the user quits or input ends.
func (m *Menu) Run() error {
	s := stateMain
	for s != stateExit {
		var err error
		switch s {
		case stateMain:
			s, err = m.mainMenu()
		case statePaging:
			s, err = m.pagingMenu()
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			// Report and return to the main menu; the session survives
			// a failed operation.
			fmt.Fprintf(m.out, "Error: %s\n", err)
			s = stateMain
		}
	}
	return nil
}

// mainMenu shows the top-level options and dispatches one choice.
func (m *Menu) mainMenu() (state, error) {
	fmt.Fprintln(m.out, "(A) Add a contact")
	fmt.Fprintln(m.out, "(L) List contacts")
	fmt.Fprintln(m.out, "(S) Search contacts")
	fmt.Fprintln(m.out, "(E) Edit a contact")
	fmt.Fprintln(m.out, "(D) Delete a contact")
	fmt.Fprintln(m.out, "(Q) Quit")
	fmt.Fprintln(m.out)

	choice, err := m.choose("ALSEDQ")
	if err != nil {
		return stateExit, err
	}

	switch choice {
	case "A":
		return stateMain, m.addContact()
	case "L":
		m.list = command.NewList(m.store, "", m.pageSize)
		res, err := m.list.Execute(nil)
		if err != nil {
			return stateMain, err
		}
		m.printRecords(res.Records)
		return statePaging, nil
	case "S":
		return stateMain, m.searchContacts()
	case "E":
		return stateMain, m.editContact()
	case "D":
		return stateMain, m.deleteContact()
	default: // Q
		res, _ := command.Quit{}.Execute(nil)
		if res.Quit {
			return stateExit, nil
		}
		return stateMain, nil
	}
}

// pagingMenu shows the pagination options for the active listing.
func (m *Menu) pagingMenu() (state, error) {
	fmt.Fprintln(m.out, "(P) Previous page")
	fmt.Fprintln(m.out, "(N) Next page")
	fmt.Fprintln(m.out, "(Q) Back to menu")
	fmt.Fprintln(m.out)

	choice, err := m.choose("PNQ")
	if err != nil {
		return stateExit, err
	}

	switch choice {
	case "P":
		m.list = m.list.Previous(m.pageSize)
	case "N":
		next, err := m.list.Next(m.pageSize)
		if err != nil {
			return stateMain, err
		}
		m.list = next
	default: // Q
		return stateMain, nil
	}

	res, err := m.list.Execute(nil)
	if err != nil {
		return stateMain, err
	}
	m.printRecords(res.Records)
	return statePaging, nil
}

// addContact prompts for the new contact's fields and executes Add.
func (m *Menu) addContact() error {
	fields := map[string]string{}
	var err error
	if fields[types.ColumnLastName], err = m.prompt("Last name", true); err != nil {
		return err
	}
	if fields[types.ColumnFirstName], err = m.prompt("First name", true); err != nil {
		return err
	}
	if fields[types.ColumnMiddleName], err = m.prompt("Middle name", false); err != nil {
		return err
	}
	if fields[types.ColumnWorkPhone], err = m.prompt("Work phone", false); err != nil {
		return err
	}
	if fields[types.ColumnPersonalPhone], err = m.prompt("Personal phone", true); err != nil {
		return err
	}

	if _, err := command.NewAdd(m.store).Execute(fields); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Contact added!")
	return nil
}

// searchContacts prompts for criteria and lists the matches.
func (m *Menu) searchContacts() error {
	cols := strings.Join(m.store.Columns(), ", ")

	fieldInput, err := m.prompt(
		fmt.Sprintf("Choose fields for searching [%s], use \",\" for splitting", cols), true)
	if err != nil {
		return err
	}
	valueInput, err := m.prompt("Input values for searching, use \",\" for splitting fields", true)
	if err != nil {
		return err
	}

	fields := strings.Split(fieldInput, ",")
	values := strings.Split(valueInput, ",")

	criteria := types.Criteria{}
	for i, field := range fields {
		if i >= len(values) {
			break
		}
		criteria[strings.TrimSpace(field)] = cleanQuery(values[i])
	}

	res, err := command.NewList(m.store, "", m.pageSize).Execute(criteria)
	if err != nil {
		return err
	}
	m.printRecords(res.Records)
	return nil
}

// editContact prompts for an id, a field name, and its new value.
func (m *Menu) editContact() error {
	id, err := m.prompt("Enter a contact ID to edit", true)
	if err != nil {
		return err
	}
	field, err := m.prompt(
		fmt.Sprintf("Choose a field to edit [%s]", strings.Join(m.store.Columns(), ", ")), true)
	if err != nil {
		return err
	}
	value, err := m.prompt(fmt.Sprintf("Enter the new value for %s", field), true)
	if err != nil {
		return err
	}

	req := command.UpdateRequest{ID: id, Fields: map[string]string{field: value}}
	if _, err := command.NewUpdate(m.store).Execute(req); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Contact updated!")
	return nil
}

// deleteContact prompts for an id and deletes the matching record.
func (m *Menu) deleteContact() error {
	id, err := m.prompt("Enter a contact ID to delete", true)
	if err != nil {
		return err
	}

	criteria := types.Criteria{types.ColumnID: id}
	if _, err := command.NewDelete(m.store).Execute(criteria); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Contact deleted!")
	return nil
}

// choose reads input until the user enters one of the valid single-letter
// options, case-insensitively. Returns the upper-cased choice.
func (m *Menu) choose(valid string) (string, error) {
	for {
		fmt.Fprint(m.out, "Choose an option: ")
		line, err := m.readLine()
		if err != nil {
			return "", err
		}
		choice := strings.ToUpper(strings.TrimSpace(line))
		if len(choice) == 1 && strings.Contains(valid, choice) {
			return choice, nil
		}
		fmt.Fprintln(m.out, "Invalid choice")
	}
}

// prompt reads one field value, re-asking while a required value is empty.
func (m *Menu) prompt(label string, required bool) (string, error) {
	for {
		fmt.Fprintf(m.out, "%s: ", label)
		line, err := m.readLine()
		if err != nil {
			return "", err
		}
		value := strings.TrimSpace(line)
		if value != "" || !required {
			return value, nil
		}
	}
}

// readLine reads one line of input. A final unterminated line is still
// returned before EOF surfaces.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// printRecords writes one tab-separated line per record, values in schema
// order.
func (m *Menu) printRecords(records []types.Record) {
	if len(records) == 0 {
		fmt.Fprintln(m.out, "No contacts found.")
		return
	}
	columns := m.store.Columns()
	for _, rec := range records {
		values := make([]string, len(columns))
		for i, col := range columns {
			values[i] = rec[col]
		}
		fmt.Fprintln(m.out, strings.Join(values, "\t"))
	}
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// cleanQuery normalizes a search value: collapse runs of whitespace, strip
// quote characters, and lower-case.
func cleanQuery(query string) string {
	query = strings.TrimSpace(query)
	query = whitespaceRE.ReplaceAllString(query, " ")
	query = strings.ReplaceAll(query, `"`, "")
	return strings.ToLower(query)
}
