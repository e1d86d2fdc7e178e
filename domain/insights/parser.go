package insights

import "strings"

// Parse converts raw delimited text into a RawTable. It never fails: malformed
// quoting at worst absorbs trailing text into the last field.
//
// The scan is a single left-to-right pass. A double quote toggles quoted mode
// unless it is the first half of an escaped pair (""), which emits a literal
// quote. Commas and line terminators are literal while quoted. \r\n counts as
// one terminator; bare \r and bare \n also terminate.
func Parse(text string) RawTable {
	var (
		field    strings.Builder
		row      []string
		records  [][]string
		inQuotes bool
	)

	flushField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	flushRow := func() {
		flushField()
		// Suppress trailing blank lines: a single-empty-field row is dropped
		// unless it is the very first row.
		if len(row) == 1 && row[0] == "" && len(records) > 0 {
			row = nil
			return
		}
		records = append(records, row)
		row = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++ // consume the escape pair
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			flushField()
		case (c == '\n' || c == '\r') && !inQuotes:
			if c == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++ // CRLF is one terminator
			}
			flushRow()
		default:
			field.WriteRune(c)
		}
	}
	if field.Len() > 0 || len(row) > 0 {
		flushRow()
	}

	return materialize(records)
}

// materialize maps the raw records against the trimmed header row. Trimming
// happens only here, never during the scan.
func materialize(records [][]string) RawTable {
	if len(records) == 0 {
		return RawTable{}
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []map[string]string
	for _, record := range records[1:] {
		rowMap := make(map[string]string, len(headers))
		empty := true
		for i, header := range headers {
			value := ""
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			if value != "" {
				empty = false
			}
			rowMap[header] = value
		}
		if empty {
			continue
		}
		rows = append(rows, rowMap)
	}

	return RawTable{Headers: headers, Rows: rows}
}
