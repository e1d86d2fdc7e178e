package insights

import (
	"math"
	"strconv"
	"strings"
)

// numericCleaner strips the decorations marketing exports put on numbers:
// currency symbols, percent signs, thousands-separator commas.
var numericCleaner = strings.NewReplacer("$", "", "%", "", ",", "")

// ParseNumber parses a cell value as a finite number. Returns false for
// empty input, input that is empty after cleaning, and anything that does not
// convert to a finite value ("n/a", "Infinity", stray text).
func ParseNumber(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(numericCleaner.Replace(raw))
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
