// Package delimited parses the comma-separated seed files the content
// resolver consumes. The files are curated in-house, so the reader favors
// leniency over RFC 4180 completeness: short rows are tolerated, fields are
// whitespace-cleaned, and nothing here returns an error.
package delimited

import (
	"github.com/msc-superfriend/refgateway/internal/normalization"
)

// Records parses a delimited blob into header-keyed maps. The first row is
// the header; with fewer than two rows the result is empty. A row shorter
// than the header simply leaves the missing keys absent, which reads as
// empty downstream.
func Records(input string) []map[string]string {
	rows := rows(input)
	if len(rows) < 2 {
		return nil
	}

	headers := rows[0]
	for i, h := range headers {
		headers[i] = normalization.CleanText(h)
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		for i, value := range row {
			if i >= len(headers) {
				break
			}
			record[headers[i]] = normalization.CleanText(value)
		}
		records = append(records, record)
	}
	return records
}

// rows runs the character scan. A double quote toggles quoted mode, with
// "" inside quotes emitting one literal quote. Commas and line breaks only
// terminate fields/rows outside quotes; CRLF is consumed as one break.
func rows(input string) [][]string {
	var (
		out      [][]string
		row      []string
		field    []byte
		inQuotes bool
	)

	flushField := func() {
		row = append(row, string(field))
		field = field[:0]
	}
	flushRow := func() {
		if len(field) > 0 || len(row) > 0 {
			flushField()
			out = append(out, row)
			row = nil
		}
	}

	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(input) && input[i+1] == '"' {
				field = append(field, '"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			flushField()
		case (c == '\n' || c == '\r') && !inQuotes:
			if c == '\r' && i+1 < len(input) && input[i+1] == '\n' {
				i++
			}
			flushRow()
		default:
			field = append(field, c)
		}
	}
	flushRow()
	return out
}
