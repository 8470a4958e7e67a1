package specs

import (
	"regexp"
	"strconv"
	"strings"
)

// Specification values like "128 GB" or "3,5 mm" start with a numeric
// prefix followed by optional unit text. Decimal commas are tolerated.
var numericPrefix = regexp.MustCompile(`^\s*(\d+(?:[.,]\d+)?)\s*(.*)$`)

// parseNumericPrefix extracts the leading number of a specification
// value. Values without a numeric prefix are free text and return
// ok=false; that is a classification fallback, never an error.
func parseNumericPrefix(value string) (num float64, unit string, ok bool) {
	m := numericPrefix.FindStringSubmatch(value)
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0, "", false
	}
	return n, strings.TrimSpace(m[2]), true
}
