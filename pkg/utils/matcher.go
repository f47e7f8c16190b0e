package utils

import "strings"

// Keyword matching shared by the scoring engine, filter engine, and
// preference booster so all three use identical case-normalization.

// ContainsFold reports whether s contains substr, case-insensitively.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// AnyContainsFold reports whether any of the values contains substr,
// case-insensitively.
func AnyContainsFold(values []string, substr string) bool {
	for _, v := range values {
		if ContainsFold(v, substr) {
			return true
		}
	}
	return false
}

// ContainsAnyFold reports whether s contains at least one of the keywords,
// case-insensitively.
func ContainsAnyFold(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if ContainsFold(s, kw) {
			return true
		}
	}
	return false
}

// MatchCount returns the number of keywords found in the searchable text,
// case-insensitively. Each keyword counts at most once.
func MatchCount(searchable string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if ContainsFold(searchable, kw) {
			count++
		}
	}
	return count
}
