package classify

import "strings"

// Final type values.
const (
	Primary   = "primary"
	Secondary = "secondary"
	Unknown   = "unknown"
)

// Keyword markers matched case-insensitively against the HMDB super class.
// The lists are intentionally verbatim from the documented heuristic; do not
// extend them for taxonomic coverage.
var (
	primaryMarkers   = []string{"lipid", "organic acid", "nucleoside"}
	secondaryMarkers = []string{"flavonoid", "alkaloid", "terpene"}
)

// Decide applies the final-type rule to a merged record, in precedence
// order:
//
//  1. An explicit KEGG type wins verbatim, regardless of what the HMDB
//     taxonomy suggests.
//  2. A super class containing any of {lipid, organic acid, nucleoside}
//     (case-insensitive substring) is primary.
//  3. A super class containing any of {flavonoid, alkaloid, terpene} is
//     secondary.
//  4. Everything else, including absent or "Unknown" super classes, is
//     unknown.
func Decide(r Record) string {
	if r.KEGG.Type != "" {
		return r.KEGG.Type
	}
	superClass := strings.ToLower(r.HMDB.SuperClass)
	if containsAny(superClass, primaryMarkers) {
		return Primary
	}
	if containsAny(superClass, secondaryMarkers) {
		return Secondary
	}
	return Unknown
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
