package parser

import (
	"log"
	"strings"

	"github.com/insightdelivered/statement-parser/internal/bank"
	"github.com/insightdelivered/statement-parser/internal/models"
)

// Extract applies the profile's transaction pattern to one grouped line and
// returns the field→value record, or nil when the line doesn't match.
// A nil return means the caller should skip the group and keep going; one
// malformed transaction never aborts the statement.
func Extract(group string, profile *bank.Profile) models.Record {
	m := profile.Transaction.FindStringSubmatch(group)
	if m == nil {
		return nil
	}

	names := profile.Transaction.SubexpNames()
	record := make(models.Record, len(profile.Fields))
	for i, name := range names {
		if name == "" || i >= len(m) {
			continue
		}
		record[name] = strings.TrimSpace(m[i])
	}

	if profile.CleanupField != "" {
		if raw, ok := record[profile.CleanupField]; ok {
			record[profile.CleanupField] = CleanBalance(raw, profile)
		}
	}

	return record
}

// CleanBalance strips the bank-specific trailing tag (e.g. "(Cr)") from a
// balance-like value, keeping only the leading numeric portion the cleanup
// pattern captures. A value the pattern doesn't match is returned unchanged;
// cleanup never fails a record.
func CleanBalance(value string, profile *bank.Profile) string {
	if profile.BalanceCleanup == nil {
		return value
	}
	m := profile.BalanceCleanup.FindStringSubmatch(value)
	if m == nil || len(m) < 2 {
		return value
	}
	return strings.TrimSpace(m[1])
}

// Assemble extracts a record from each line group and accumulates the
// successes into a table keyed by the profile's display column names.
// Unparsed groups are logged and skipped. Zero parsable groups yield an
// empty table, not an error.
func Assemble(groups []string, profile *bank.Profile) models.Table {
	table := models.Table{Columns: profile.ColumnNames()}

	for _, group := range groups {
		record := Extract(group, profile)
		if record == nil {
			log.Printf("parser: unparsed transaction line: %.100q", group)
			continue
		}

		row := make(models.Row, len(record))
		for field, value := range record {
			row[profile.Columns[field]] = value
		}
		table.Append(row)
	}

	return table
}

// FilterDebits returns a view of the table keeping only rows whose debit
// field contains the profile's debit indicator. Profiles without an
// indicator (e.g. banks with separate withdrawal/deposit columns) return
// the table unchanged.
func FilterDebits(table models.Table, profile *bank.Profile) models.Table {
	if profile.DebitIndicator == "" {
		return table
	}

	column := profile.Columns[profile.DebitField]
	filtered := models.Table{Columns: table.Columns}
	for _, row := range table.Rows {
		if strings.Contains(row[column], profile.DebitIndicator) {
			filtered.Append(row)
		}
	}
	return filtered
}
