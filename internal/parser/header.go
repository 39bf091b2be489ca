package parser

import (
	"strings"

	"github.com/insightdelivered/statement-parser/internal/bank"
)

// FindHeaderIndex scans the page's lines from the top and returns the index
// of the first line matching the profile's header pattern. The pattern is
// applied to the trimmed line and is not anchored to the line start.
// Returns (0, false) when no line matches.
func FindHeaderIndex(lines []string, profile *bank.Profile) (int, bool) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if profile.Header.MatchString(trimmed) {
			return i, true
		}
	}
	return 0, false
}
