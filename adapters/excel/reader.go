// Package excel reads marketing exports shipped as Excel workbooks into the
// same table shape the delimited-text parser produces, so the aggregator is
// format-agnostic.
package excel

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"brandstudio/domain/insights"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads the first sheet of an xlsx workbook into a RawTable.
// Headers come from the first row trimmed; data rows are mapped positionally
// with trimmed cells, and all-empty rows are excluded, matching the text
// parser's materialization rules.
func ReadWorkbook(data []byte) (insights.RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return insights.RawTable{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return insights.RawTable{}, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return insights.RawTable{}, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	log.Printf("[ExcelReader] Sheet %s read (%d rows)", sheets[0], len(rows))

	return tableFromRows(rows), nil
}

// tableFromRows converts raw sheet rows into a RawTable
func tableFromRows(records [][]string) insights.RawTable {
	if len(records) == 0 {
		return insights.RawTable{}
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

	return insights.RawTable{Headers: headers, Rows: rows}
}
