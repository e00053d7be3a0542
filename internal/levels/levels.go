// Package levels holds the single source of truth for the department-
// dependent academic level ladder. Upload validation and every filter or
// display surface must consume this package so the rule can never drift
// between call sites.
package levels

import "strings"

var base = []string{"Level 100", "Level 200", "Level 300", "Level 400"}

// Allowed returns the level ladder for a department. Matching is a
// case-insensitive substring check on the department name: pharmacy
// programmes run two levels past the base ladder, architecture one.
// Pharmacy wins when a name matches both.
func Allowed(department string) []string {
	ladder := make([]string, len(base), len(base)+2)
	copy(ladder, base)

	name := strings.ToLower(department)
	switch {
	case strings.Contains(name, "pharmacy"):
		ladder = append(ladder, "Level 500", "Level 600")
	case strings.Contains(name, "architecture"):
		ladder = append(ladder, "Level 500")
	}

	return ladder
}

// IsAllowed reports whether level is valid for the department's ladder.
// An empty level is always allowed: it simply means "unspecified".
func IsAllowed(department, level string) bool {
	if level == "" {
		return true
	}
	for _, l := range Allowed(department) {
		if l == level {
			return true
		}
	}
	return false
}
