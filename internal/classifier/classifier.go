// Package classifier assigns spending categories to parsed transactions
// based on keywords in the remarks/narration text.
package classifier

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/statement-parser/internal/models"
)

// CategoryColumn is the name of the column Categorize appends.
const CategoryColumn = "Category"

// Uncategorized is assigned when no rule matches.
const Uncategorized = "Uncategorized"

// rule maps a category to the keyword patterns that select it. Rules are
// checked in order; the first matching keyword wins.
type rule struct {
	category string
	keywords []string
}

var rules = []rule{
	{"Food & Dining", []string{"ZOMATO", "SWIGGY", "RESTAURANT", "CAFE", "FOOD", "HOTEL", "EATCLUB", "MCDONALD"}},
	{"Travel", []string{"UBER", "OLA", "IRCTC", "RAILWAY", "FLIGHT", "TICKET", "RAPIDO"}},
	{"Groceries", []string{"ZEPTO", "BLINKIT", "GROCERY", "MART", "SUPERMARKET", "BIGBASKET", "DMART"}},
	{"Shopping", []string{"MYNTRA", "AMAZON", "FLIPKART", "AJIO", "SHOP", "CLOTHING", "MALL", "NYKAA"}},
	{"Utilities", []string{"BILLPAY", "ELECTRICITY", "MOBILE", "RECHARGE", "AIRTEL", "VODAFONE", "JIO", "BROADBAND", "DTH"}},
	{"Salary/Income", []string{"SALARY", "INCOME", "STIPEND", "COMMISSION", "DIVIDEND"}},
	{"Transfers", []string{"NEFT", "RTGS", "IMPS", "TRANSFER", "FUND TRANSFER"}},
	{"Fees/Charges", []string{"SMS CHARGES", "FEE", "CHARGE", "ANNUAL MAINT", "AMC", "BANK CHARGE"}},
	{"Entertainment", []string{"BOOKMYSHOW", "PVR", "NETFLIX", "SPOTIFY", "YOUTUBE", "PRIME VIDEO", "HOTSTAR", "INOX"}},
	{"Rent", []string{"RENT", "HOUSING SOCIETY", "MAINTENANCE", "NOBROKER"}},
	{"Investment", []string{"ZERODHA", "UPSTOX", "GROWW", "MUTUAL FUND", "SIP", "SHARES", "STOCKS"}},
	{"Health/Medical", []string{"PHARMACY", "HOSPITAL", "DOCTOR", "MEDICAL", "APOLLO", "MEDPLUS", "NETMEDS"}},
	{"Fuel", []string{"PETROL", "DIESEL", "FUEL", "INDIAN OIL", "IOCL", "BPCL", "SHELL"}},
}

// compiled holds one word-boundary pattern per rule, built once at init.
var compiled []struct {
	category string
	pattern  *regexp.Regexp
}

func init() {
	for _, r := range rules {
		parts := make([]string, len(r.keywords))
		for i, kw := range r.keywords {
			parts[i] = regexp.QuoteMeta(strings.ToLower(kw))
		}
		p := regexp.MustCompile(`\b(?:` + strings.Join(parts, "|") + `)\b`)
		compiled = append(compiled, struct {
			category string
			pattern  *regexp.Regexp
		}{r.category, p})
	}
}

// Classify returns the category for a transaction description, or
// Uncategorized when no keyword matches.
func Classify(description string) string {
	lower := strings.ToLower(description)
	for _, c := range compiled {
		if c.pattern.MatchString(lower) {
			return c.category
		}
	}
	return Uncategorized
}

// descriptionColumns are tried in order when locating the text to classify.
// "Remarks" covers the SBI/Union layout, "Narration" the HDFC one.
var descriptionColumns = []string{"Remarks", "Narration"}

// Categorize appends a Category column to the table, classifying each row by
// its remarks/narration text. Tables without a recognizable description
// column are returned unchanged.
func Categorize(table models.Table) models.Table {
	var column string
	for _, candidate := range descriptionColumns {
		for _, col := range table.Columns {
			if strings.EqualFold(col, candidate) {
				column = col
				break
			}
		}
		if column != "" {
			break
		}
	}
	if column == "" {
		return table
	}

	out := models.Table{Columns: append(append([]string{}, table.Columns...), CategoryColumn)}
	for _, row := range table.Rows {
		tagged := make(models.Row, len(row)+1)
		for k, v := range row {
			tagged[k] = v
		}
		tagged[CategoryColumn] = Classify(row[column])
		out.Append(tagged)
	}
	return out
}
