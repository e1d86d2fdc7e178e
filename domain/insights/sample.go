package insights

import (
	"strconv"
	"strings"
)

// PromptSample re-serializes a parsed table into the bounded text handed to
// the AI collaborator: the header row plus up to cfg.SampleMaxRows data rows,
// each cell JSON-string-escaped and comma-joined, the whole output truncated
// to cfg.SampleMaxChars. Deterministic for a fixed table and config.
func PromptSample(table RawTable, cfg Config) string {
	var b strings.Builder
	b.WriteString(joinEscaped(table.Headers))

	rows := table.Rows
	if cfg.SampleMaxRows >= 0 && len(rows) > cfg.SampleMaxRows {
		rows = rows[:cfg.SampleMaxRows]
	}
	for _, row := range rows {
		cells := make([]string, len(table.Headers))
		for i, header := range table.Headers {
			cells[i] = row[header]
		}
		b.WriteString("\n")
		b.WriteString(joinEscaped(cells))
	}

	sample := b.String()
	if cfg.SampleMaxChars > 0 && len(sample) > cfg.SampleMaxChars {
		sample = sample[:cfg.SampleMaxChars]
	}
	return sample
}

// joinEscaped quotes each cell as a JSON string and joins with commas, so
// embedded commas, quotes and newlines survive the flat sample format.
func joinEscaped(cells []string) string {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		quoted[i] = strconv.Quote(cell)
	}
	return strings.Join(quoted, ",")
}
