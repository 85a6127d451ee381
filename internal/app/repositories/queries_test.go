package repositories

import (
	"regexp"
	"testing"
)

// The select queries splice a shared column list into the statement text.
// A missing separator fuses the last column with the next keyword
// ("created_atFROM ...") and Postgres rejects the query, so every spliced
// statement must keep whitespace around its keywords.
func TestSelectQueriesKeepKeywordBoundaries(t *testing.T) {
	queries := map[string]string{
		"getRosterRow":    getRosterRowQuery,
		"getGraduate":     getGraduateQuery,
		"listGraduates":   listGraduatesQuery,
		"getStaffRequest": getStaffRequestQuery,
	}

	fused := regexp.MustCompile(`\S(FROM|WHERE|ORDER|OFFSET|LIMIT)\b`)
	hasFrom := regexp.MustCompile(`\sFROM\s`)

	for name, query := range queries {
		if m := fused.FindString(query); m != "" {
			t.Fatalf("%s: keyword fused with preceding token: %q", name, m)
		}
		if !hasFrom.MatchString(query) {
			t.Fatalf("%s: no FROM clause found in %q", name, query)
		}
	}
}
