package bank

import "regexp"

// Built-in profiles for the supported Indian banks.
//
// SBI and Union Bank statements share a layout:
//
//	S.No | Date | Transaction Id | Remarks | Amount | Balance
//
// with amounts tagged "(Cr)"/"(Dr)", e.g. "1,000.00(Cr)". HDFC statements use:
//
//	Date | Narration | Chq./Ref.No. | Value Dt | Withdrawal Amt | Deposit Amt | Closing Balance
//
// with dates as DD/MM/YY and untagged amounts.

var sbiStyleTxn = regexp.MustCompile(
	`^\s*(?P<sr_no>\d+)\s+(?P<date>\d{2}/\d{2}/\d{4})\s+(?P<transaction_id>S\d+)` +
		`\s+(?P<remarks>.*?)\s+(?P<amount>[\d,]+\.\d+\s*\(\w+\))` +
		`\s+(?P<balance>[\d,]+\.\d+\s*\(\w+\))(?:\s+.*)?$`,
)

var sbiStyleColumns = map[string]string{
	"sr_no":          "S.No",
	"date":           "Date",
	"transaction_id": "Transaction Id",
	"remarks":        "Remarks",
	"amount":         "Amount(Rs.)",
	"balance":        "Balance",
}

var sbiStyleFields = []string{"sr_no", "date", "transaction_id", "remarks", "amount", "balance"}

// sbiStyleProfile builds a profile for the shared SBI/Union layout.
func sbiStyleProfile(key, name string) *Profile {
	return &Profile{
		Key:              key,
		Name:             name,
		Header:           regexp.MustCompile(`(?i)S\.?\s*No.*Date.*Transaction\s+Id.*Remarks.*Amount.*Balance`),
		Transaction:      sbiStyleTxn,
		TransactionStart: regexp.MustCompile(`^\d+`),
		Fields:           sbiStyleFields,
		Columns:          sbiStyleColumns,
		BalanceCleanup:   regexp.MustCompile(`^([\d,]+\.\d+)`),
		DebitIndicator:   "(Dr)",
		DebitField:       "amount",
	}
}

func hdfcProfile() *Profile {
	return &Profile{
		Key:  "HDFC",
		Name: "HDFC Bank",
		Header: regexp.MustCompile(
			`(?i)^\s*Date\s+Narration\s+Chq\.\s*/\s*Ref\.\s*No\.?\s+Value\s+Dt` +
				`\s+Withdrawal\s+Amt\s+Deposit\s+Amt\s+Closing\s+Balance`,
		),
		Transaction: regexp.MustCompile(
			`^\s*(?P<date>\d{2}/\d{2}/\d{2})\s+(?P<narration>.*?)\s+(?P<chq_ref_no>\S+)` +
				`\s+(?P<value_date>\d{2}/\d{2}/\d{2})\s+(?P<withdrawal_amt>[\d,]+\.\d{2})` +
				`\s+(?P<deposit_amt>[\d,]+\.\d{2})\s+(?P<closing_balance>[\d,]+\.\d{2})(?:\s+.*)?$`,
		),
		TransactionStart: regexp.MustCompile(`^\d{2}/\d{2}/\d{2}`),
		Fields: []string{
			"date", "narration", "chq_ref_no", "value_date",
			"withdrawal_amt", "deposit_amt", "closing_balance",
		},
		Columns: map[string]string{
			"date":            "Date",
			"narration":       "Narration",
			"chq_ref_no":      "Chq/Ref.No.",
			"value_date":      "Value Date",
			"withdrawal_amt":  "Withdrawal Amt.",
			"deposit_amt":     "Deposit Amt.",
			"closing_balance": "Closing Balance",
		},
	}
}

var builtin = mustRegistry(
	sbiStyleProfile("SBI", "State Bank of India"),
	hdfcProfile(),
	sbiStyleProfile("UNION", "Union Bank of India"),
)

// Builtin returns the registry of compiled-in bank profiles. The registry is
// shared and must not be mutated.
func Builtin() *Registry {
	return builtin
}

func mustRegistry(profiles ...*Profile) *Registry {
	r, err := NewRegistry(profiles...)
	if err != nil {
		panic(err)
	}
	return r
}
