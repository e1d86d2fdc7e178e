package insights

// UnknownLabel is the sentinel used when no label column resolves or a label
// cell is empty.
const UnknownLabel = "(unknown)"

// RawTable is the parser's output: ordered headers plus one map per data row.
// Headers are not deduplicated; when two headers collide the later column's
// value overwrites the earlier key in each row map.
type RawTable struct {
	Headers []string
	Rows    []map[string]string
}

// EnrichedRow is one data row annotated with its resolved metric values.
type EnrichedRow struct {
	Label       string  `json:"label"`
	Traffic     float64 `json:"traffic"`
	Conversions float64 `json:"conversions"`
	Rate        float64 `json:"rate"`
}

// DashboardSummary is the aggregator's final output, rebuilt from scratch on
// every upload.
type DashboardSummary struct {
	RowCount         int           `json:"row_count"`
	TotalTraffic     float64       `json:"total_traffic"`
	TotalConversions float64       `json:"total_conversions"`
	OverallRate      float64       `json:"overall_rate"`
	TopByVolume      []EnrichedRow `json:"top_by_volume"`
	TopByRate        []EnrichedRow `json:"top_by_rate"`
}

// Config holds the tunable engine policy values.
type Config struct {
	// TopN is the length of each ranked list.
	TopN int
	// RateFloor is the minimum traffic a row needs before its rate is
	// considered statistically meaningful for rate ranking.
	RateFloor float64
	// SampleMaxRows bounds the number of data rows in the AI prompt sample.
	SampleMaxRows int
	// SampleMaxChars bounds the total prompt sample size.
	SampleMaxChars int
	// MaxTextBytes is the caller-side ceiling on raw upload text. The parser
	// itself never truncates; the upload processor applies this before parsing.
	MaxTextBytes int
}

// DefaultConfig returns the engine policy used by the dashboard.
func DefaultConfig() Config {
	return Config{
		TopN:           6,
		RateFloor:      25,
		SampleMaxRows:  200,
		SampleMaxChars: 50000,
		MaxTextBytes:   2 * 1024 * 1024,
	}
}
