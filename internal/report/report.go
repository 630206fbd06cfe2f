// Package report extracts structured rows from uv's tabular text output
// and renders them as styled terminal tables.
package report

import "strings"

// HeaderLines is the number of leading lines (column names plus separator
// rule) that uv's pip-style tabular output carries before data rows.
const HeaderLines = 2

// Row is one parsed, column-delimited record.
type Row []string

// Parse splits raw tabular output into rows with exactly columns fields.
// The first HeaderLines lines are skipped, remaining lines are split on
// whitespace runs, and lines with a different field count are dropped
// without failing the parse. An empty result is a valid outcome meaning
// "nothing found", distinct from an error.
func Parse(raw string, columns int) []Row {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) <= HeaderLines {
		return nil
	}

	var rows []Row
	for _, line := range lines[HeaderLines:] {
		fields := strings.Fields(line)
		if len(fields) != columns {
			continue
		}
		rows = append(rows, Row(fields))
	}
	return rows
}

// Lines splits raw output into trimmed non-empty lines. Used for outputs
// that are lists rather than tables (freeze, python find).
func Lines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
