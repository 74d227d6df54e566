// Shared helpers for rolodex CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dukaforge/rolodex/internal/csvstore"
	"github.com/dukaforge/rolodex/internal/sqlite"
	"github.com/dukaforge/rolodex/pkg/types"
)

// openStore creates the configured backend and ensures the contact table
// exists. The caller must defer store.Close().
func openStore() (types.Store, error) {
	var (
		store types.Store
		err   error
	)
	switch cfg.Backend {
	case types.BackendCSV:
		store, err = csvstore.New(cfg)
	case types.BackendSQLite:
		store, err = sqlite.New(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}

	if err := store.CreateTable(types.ContactColumns()); err != nil {
		store.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}
	return store, nil
}

// parsePairs parses "field=value" arguments into criteria.
func parsePairs(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid pair %q, want field=value", pair)
		}
		out[strings.TrimSpace(field)] = value
	}
	return out, nil
}

// printRecords writes records as JSON when --json is set, or as a
// human-readable table otherwise.
func printRecords(records []types.Record, columns []string) error {
	if flagJSON {
		output, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal records: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if len(records) == 0 {
		fmt.Println("No contacts found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = strings.ToUpper(col)
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, rec := range records {
		values := make([]string, len(columns))
		for i, col := range columns {
			values[i] = rec[col]
		}
		fmt.Fprintln(w, strings.Join(values, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("Total: %d contact(s)\n", len(records))
	return nil
}
