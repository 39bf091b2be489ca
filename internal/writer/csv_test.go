package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/insightdelivered/statement-parser/internal/models"
)

func sampleResult() *models.Result {
	return &models.Result{
		BankKey:  "SBI",
		BankName: "State Bank of India",
		Table: models.Table{
			Columns: []string{"S.No", "Date", "Remarks", "Balance"},
			Rows: []models.Row{
				{"S.No": "1", "Date": "01/01/2023", "Remarks": "Salary, monthly", "Balance": "5,000.00(Cr)"},
				{"S.No": "2", "Date": "02/01/2023", "Remarks": "Rent", "Balance": "4,500.00(Cr)"},
			},
		},
	}
}

func TestCSVWrite(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	if err := w.Write(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "S.No,Date,Remarks,Balance" {
		t.Errorf("header line %q", lines[0])
	}
	// Comma inside a cell must be quoted
	if !strings.Contains(lines[1], `"Salary, monthly"`) {
		t.Errorf("expected quoted cell in %q", lines[1])
	}
}

func TestCSVWriteBankRow(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeBankRow: true}
	if err := w.Write(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "# Bank,State Bank of India" {
		t.Errorf("bank row %q", lines[0])
	}
}

func TestCSVWriteEmptyTable(t *testing.T) {
	res := &models.Result{
		BankKey:  "SBI",
		BankName: "State Bank of India",
		Table:    models.Table{Columns: []string{"S.No", "Date"}},
	}

	var buf bytes.Buffer
	w := &CSVWriter{}
	if err := w.Write(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("empty table should emit only the header, got %d lines", len(lines))
	}
}

func TestCSVMissingCellsAreBlank(t *testing.T) {
	res := &models.Result{
		Table: models.Table{
			Columns: []string{"S.No", "Date", "Remarks"},
			Rows:    []models.Row{{"S.No": "1", "Remarks": "no date extracted"}},
		},
	}

	var buf bytes.Buffer
	w := &CSVWriter{}
	if err := w.Write(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[1] != "1,,no date extracted" {
		t.Errorf("row line %q, want %q", lines[1], "1,,no date extracted")
	}
}
