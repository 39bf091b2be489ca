package classifier

import (
	"testing"

	"github.com/insightdelivered/statement-parser/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"UPI-SWIGGY-ORDER-12345", "Food & Dining"},
		{"ZOMATO ONLINE payment", "Food & Dining"},
		{"IRCTC ticket booking", "Travel"},
		{"AMAZON retail purchase", "Shopping"},
		{"JIO mobile recharge", "Utilities"},
		{"SALARY CREDIT FOR MARCH", "Salary/Income"},
		{"NEFT-HDFC0000001-JOHN", "Transfers"},
		{"SMS CHARGES Q4", "Fees/Charges"},
		{"NETFLIX subscription", "Entertainment"},
		{"monthly RENT to landlord", "Rent"},
		{"ZERODHA funds added", "Investment"},
		{"APOLLO pharmacy bill", "Health/Medical"},
		{"BPCL petrol pump", "Fuel"},
		{"something entirely different", "Uncategorized"},
		{"", "Uncategorized"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if got := Classify(tt.description); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

// Keywords match whole words: "SHELL" must not fire inside "SEASHELLS".
func TestClassifyWordBoundaries(t *testing.T) {
	if got := Classify("SEASHELLS GIFT STORE PAYMENT"); got == "Fuel" {
		t.Errorf("substring match leaked through word boundary: got %q", got)
	}
}

func TestCategorize(t *testing.T) {
	table := models.Table{
		Columns: []string{"Date", "Remarks", "Balance"},
		Rows: []models.Row{
			{"Date": "01/01/2023", "Remarks": "UPI-SWIGGY-ORDER", "Balance": "5,000.00(Cr)"},
			{"Date": "02/01/2023", "Remarks": "misc payment", "Balance": "4,500.00(Cr)"},
		},
	}

	got := Categorize(table)
	wantColumns := []string{"Date", "Remarks", "Balance", "Category"}
	if len(got.Columns) != len(wantColumns) || got.Columns[3] != CategoryColumn {
		t.Fatalf("columns %v, want %v", got.Columns, wantColumns)
	}
	if got.Rows[0][CategoryColumn] != "Food & Dining" {
		t.Errorf("row 0 category %q, want Food & Dining", got.Rows[0][CategoryColumn])
	}
	if got.Rows[1][CategoryColumn] != Uncategorized {
		t.Errorf("row 1 category %q, want %q", got.Rows[1][CategoryColumn], Uncategorized)
	}
}

func TestCategorizeUsesNarration(t *testing.T) {
	table := models.Table{
		Columns: []string{"Date", "Narration", "Closing Balance"},
		Rows: []models.Row{
			{"Date": "01/04/23", "Narration": "NETFLIX ENTERTAINMENT", "Closing Balance": "10,250.00"},
		},
	}

	got := Categorize(table)
	if got.Rows[0][CategoryColumn] != "Entertainment" {
		t.Errorf("category %q, want Entertainment", got.Rows[0][CategoryColumn])
	}
}

func TestCategorizeWithoutDescriptionColumn(t *testing.T) {
	table := models.Table{
		Columns: []string{"Date", "Amount"},
		Rows:    []models.Row{{"Date": "01/01/2023", "Amount": "1.00"}},
	}

	got := Categorize(table)
	if len(got.Columns) != 2 {
		t.Errorf("table without remarks/narration should be unchanged, got columns %v", got.Columns)
	}
}
