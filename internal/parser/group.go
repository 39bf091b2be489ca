package parser

import (
	"strings"

	"github.com/insightdelivered/statement-parser/internal/bank"
)

// GroupTransactions reassembles multi-line logical transactions from the raw
// lines strictly after headerIndex. A line matching the profile's
// transaction-start pattern begins a new group; lines that don't match are
// continuations (wrapped remarks/narration) and are joined onto the current
// group with a single space.
//
// Continuation lines that arrive before any start-pattern line — page
// footers, carried-over narration from a previous page's last transaction
// that the header cut off — are dropped. The grouper never emits an empty
// group.
func GroupTransactions(lines []string, headerIndex int, profile *bank.Profile) []string {
	var groups []string
	var current []string

	for _, line := range lines[headerIndex+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if profile.TransactionStart.MatchString(trimmed) {
			if len(current) > 0 {
				groups = append(groups, strings.Join(current, " "))
			}
			current = []string{trimmed}
			continue
		}

		if len(current) > 0 {
			current = append(current, trimmed)
		}
	}

	if len(current) > 0 {
		groups = append(groups, strings.Join(current, " "))
	}

	return groups
}
