package bank

import (
	"fmt"
	"regexp"
)

// Profile is the configuration bundle driving all parsing decisions for one
// bank. Adding support for a new bank means adding one Profile to the
// registry; none of the parsing components change.
type Profile struct {
	// Key is the short identifier used in CLI flags and API parameters,
	// e.g. "SBI".
	Key string

	// Name is the bank's display name as printed on statements. Detection
	// checks for it as a case-insensitive substring of the page text.
	Name string

	// Header matches the column-header line of the transaction table.
	// Compiled case-insensitive; matched unanchored against each line.
	Header *regexp.Regexp

	// Transaction matches one complete (possibly re-joined) transaction
	// line. Every field in Fields must appear as a named capture group.
	Transaction *regexp.Regexp

	// TransactionStart matches the leading content of a line that begins a
	// new logical transaction, distinguishing it from wrapped continuation
	// text.
	TransactionStart *regexp.Regexp

	// Fields lists the capture-group names in output column order.
	Fields []string

	// Columns maps each field name to its human-readable output column.
	Columns map[string]string

	// BalanceCleanup, when set together with CleanupField, strips a
	// trailing bank-specific tag (e.g. "(Cr)") from that field's value.
	// Its first capture group is the portion to keep.
	BalanceCleanup *regexp.Regexp

	// CleanupField names the field BalanceCleanup applies to. Empty means
	// cleanup is never applied even if the pattern is defined.
	CleanupField string

	// DebitIndicator is a marker substring (e.g. "(Dr)") denoting a
	// withdrawal. Empty means debit-only filtering is unavailable.
	DebitIndicator string

	// DebitField names the field checked for DebitIndicator when
	// filtering. Must be set whenever DebitIndicator is.
	DebitField string
}

// ColumnNames returns the display column names in field order.
func (p *Profile) ColumnNames() []string {
	names := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		names[i] = p.Columns[f]
	}
	return names
}

// validate checks that the profile's field list, column mapping and capture
// groups agree. Configuration-authoring mistakes fail here, at registry
// construction, rather than silently dropping fields at parse time.
func (p *Profile) validate() error {
	if p.Key == "" || p.Name == "" {
		return fmt.Errorf("profile must have a key and a name")
	}
	if p.Header == nil || p.Transaction == nil || p.TransactionStart == nil {
		return fmt.Errorf("profile %s: header, transaction and transaction-start patterns are required", p.Key)
	}
	if len(p.Fields) == 0 {
		return fmt.Errorf("profile %s: no fields declared", p.Key)
	}

	groups := make(map[string]bool)
	for _, name := range p.Transaction.SubexpNames() {
		if name != "" {
			groups[name] = true
		}
	}

	for _, f := range p.Fields {
		if !groups[f] {
			return fmt.Errorf("profile %s: field %q has no matching capture group (?P<%s>...) in the transaction pattern", p.Key, f, f)
		}
		if _, ok := p.Columns[f]; !ok {
			return fmt.Errorf("profile %s: field %q has no output column name", p.Key, f)
		}
	}
	for name := range groups {
		if !contains(p.Fields, name) {
			return fmt.Errorf("profile %s: capture group %q is not declared as a field", p.Key, name)
		}
	}

	if p.CleanupField != "" {
		if p.BalanceCleanup == nil {
			return fmt.Errorf("profile %s: cleanup field %q set without a balance-cleanup pattern", p.Key, p.CleanupField)
		}
		if !contains(p.Fields, p.CleanupField) {
			return fmt.Errorf("profile %s: cleanup field %q is not a declared field", p.Key, p.CleanupField)
		}
	}
	if p.BalanceCleanup != nil && p.BalanceCleanup.NumSubexp() < 1 {
		return fmt.Errorf("profile %s: balance-cleanup pattern needs one capture group", p.Key)
	}

	if (p.DebitIndicator == "") != (p.DebitField == "") {
		return fmt.Errorf("profile %s: debit indicator and debit field must be set together", p.Key)
	}
	if p.DebitField != "" && !contains(p.Fields, p.DebitField) {
		return fmt.Errorf("profile %s: debit field %q is not a declared field", p.Key, p.DebitField)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
