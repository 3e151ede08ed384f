package reference

import (
	"regexp"
	"strconv"
	"strings"
)

// explicitOrdinalPatterns is an ordered rule table. "first"/"1st" are
// deliberately checked LAST: a message containing both "first" and "second"
// resolves to 2. This is an order-dependent contract, not an accident.
var explicitOrdinalPatterns = []struct {
	re    *regexp.Regexp
	value int
}{
	{regexp.MustCompile(`\bsecond\b`), 2},
	{regexp.MustCompile(`\b2nd\b`), 2},
	{regexp.MustCompile(`\bthird\b`), 3},
	{regexp.MustCompile(`\b3rd\b`), 3},
	{regexp.MustCompile(`\bfourth\b`), 4},
	{regexp.MustCompile(`\b4th\b`), 4},
	{regexp.MustCompile(`\bfifth\b`), 5},
	{regexp.MustCompile(`\b5th\b`), 5},
	{regexp.MustCompile(`\bfirst\b`), 1},
	{regexp.MustCompile(`\b1st\b`), 1},
}

// labelPatterns match "option N", "number N", "case N" and "# N" style
// references, tried in this order.
var labelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\boption\s*(\d+)`),
	regexp.MustCompile(`\bnumber\s*(\d+)`),
	regexp.MustCompile(`\bcase\s*(\d+)`),
	regexp.MustCompile(`#\s*(\d+)`),
}

// DetectExplicitReference recognizes unambiguous numeric, ordinal, or labeled
// references in a message, independent of any candidate list. The returned
// index is 1-based and NOT bounds-checked: "option 12" yields 12 even when
// only three candidates were shown. Callers own range validation.
func DetectExplicitReference(message string) (int, bool) {
	lowered := strings.ToLower(strings.TrimSpace(message))
	if lowered == "" {
		return 0, false
	}

	// 1. A bare number between 1 and 10 is always a selection.
	if digitsOnly.MatchString(lowered) {
		if n, err := strconv.Atoi(lowered); err == nil && n >= 1 && n <= 10 {
			return n, true
		}
	}

	// 2. Ordinal words and abbreviations, in declared order.
	for _, entry := range explicitOrdinalPatterns {
		if entry.re.MatchString(lowered) {
			return entry.value, true
		}
	}

	// 3. Labeled references.
	for _, re := range labelPatterns {
		if m := re.FindStringSubmatch(lowered); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n, true
			}
		}
	}

	return 0, false
}
