package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/insightdelivered/statement-parser/internal/bank"
	"github.com/insightdelivered/statement-parser/internal/models"
)

// Sentinel errors for document-level failures. Callers can test for them
// with errors.Is and surface an actionable message (e.g. suggest passing
// the bank explicitly).
var (
	ErrUnknownBank    = errors.New("could not identify the bank from statement content")
	ErrHeaderNotFound = errors.New("transaction table header not found")
)

// Parser drives profile-driven parsing of extracted statement pages.
// It is stateless across calls; the registry is read-only configuration.
type Parser struct {
	registry *bank.Registry
	profile  *bank.Profile // nil means auto-detect per statement
}

// New returns a parser that auto-detects the bank from page content.
func New(registry *bank.Registry) *Parser {
	return &Parser{registry: registry}
}

// NewForBank returns a parser pinned to the profile with the given key.
func NewForBank(registry *bank.Registry, key string) (*Parser, error) {
	profile, ok := registry.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("unsupported bank %q (supported: %s)", key, strings.Join(registry.Keys(), ", "))
	}
	return &Parser{registry: registry, profile: profile}, nil
}

// Parse takes per-page plain text extracted from a statement PDF and returns
// the assembled transaction table.
//
// The header is demanded on the first page (or the second, since some banks
// put a summary page first). Once found, later pages are parsed from the top:
// continuation pages usually repeat no header, and lines that fit neither the
// start pattern nor an open transaction are dropped anyway. A page that
// yields no parsable rows contributes nothing but does not fail the document.
func (p *Parser) Parse(pages []string) (*models.Result, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("statement has no pages")
	}

	profile := p.profile
	if profile == nil {
		profile = p.registry.Detect(pages[0])
		if profile == nil && len(pages) > 1 {
			profile = p.registry.Detect(pages[1])
		}
		if profile == nil {
			return nil, fmt.Errorf("%w; specify the bank explicitly (supported: %s)",
				ErrUnknownBank, strings.Join(p.registry.Keys(), ", "))
		}
	}

	// Locate the page carrying the table header. Without it we cannot
	// confirm the column layout, so the whole document fails.
	headerPage := -1
	for i := 0; i < len(pages) && i < 2; i++ {
		if _, ok := FindHeaderIndex(splitLines(pages[i]), profile); ok {
			headerPage = i
			break
		}
	}
	if headerPage == -1 {
		return nil, fmt.Errorf("%w for %s in the first pages of the statement",
			ErrHeaderNotFound, profile.Name)
	}

	result := &models.Result{
		BankKey:  profile.Key,
		BankName: profile.Name,
		Table:    models.Table{Columns: profile.ColumnNames()},
	}

	expectHeader := true
	for i := headerPage; i < len(pages); i++ {
		lines := splitLines(pages[i])

		headerIndex := -1
		if expectHeader {
			if idx, ok := FindHeaderIndex(lines, profile); ok {
				headerIndex = idx
			}
			expectHeader = false
		}

		groups := GroupTransactions(lines, headerIndex, profile)
		page := Assemble(groups, profile)
		result.Table.Rows = append(result.Table.Rows, page.Rows...)
	}

	return result, nil
}

// BankName returns the pinned profile's display name, or "" when
// auto-detecting.
func (p *Parser) BankName() string {
	if p.profile == nil {
		return ""
	}
	return p.profile.Name
}

func splitLines(pageText string) []string {
	return strings.Split(pageText, "\n")
}
