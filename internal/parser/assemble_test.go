package parser

import (
	"reflect"
	"testing"

	"github.com/insightdelivered/statement-parser/internal/models"
)

func TestAssemble(t *testing.T) {
	profile := sbiProfile(t)

	t.Run("rows keyed by display column names in order", func(t *testing.T) {
		groups := []string{
			"1 01/01/2023 S100 Salary 1,000.00(Cr) 5,000.00(Cr)",
		}
		table := Assemble(groups, profile)

		wantColumns := []string{"S.No", "Date", "Transaction Id", "Remarks", "Amount(Rs.)", "Balance"}
		if !reflect.DeepEqual(table.Columns, wantColumns) {
			t.Fatalf("columns %v, want %v", table.Columns, wantColumns)
		}
		if len(table.Rows) != 1 {
			t.Fatalf("got %d rows, want 1", len(table.Rows))
		}

		want := models.Row{
			"S.No":           "1",
			"Date":           "01/01/2023",
			"Transaction Id": "S100",
			"Remarks":        "Salary",
			"Amount(Rs.)":    "1,000.00(Cr)",
			"Balance":        "5,000.00(Cr)",
		}
		if !reflect.DeepEqual(table.Rows[0], want) {
			t.Errorf("row %v, want %v", table.Rows[0], want)
		}
	})

	t.Run("unparsed group between two valid ones is dropped", func(t *testing.T) {
		groups := []string{
			"1 01/01/2023 S100 Salary 1,000.00(Cr) 5,000.00(Cr)",
			"garbage that matches no pattern",
			"2 02/01/2023 S101 Rent 500.00(Dr) 4,500.00(Cr)",
		}
		table := Assemble(groups, profile)
		if len(table.Rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(table.Rows))
		}
		if table.Rows[0]["Transaction Id"] != "S100" || table.Rows[1]["Transaction Id"] != "S101" {
			t.Errorf("rows out of order: %v", table.Rows)
		}
	})

	t.Run("no groups yields empty table not error", func(t *testing.T) {
		table := Assemble(nil, profile)
		if !table.Empty() {
			t.Errorf("expected empty table, got %d rows", len(table.Rows))
		}
		if len(table.Columns) == 0 {
			t.Error("empty table should still carry column names")
		}
	})

	t.Run("duplicate transactions are preserved", func(t *testing.T) {
		line := "1 01/01/2023 S100 Salary 1,000.00(Cr) 5,000.00(Cr)"
		table := Assemble([]string{line, line}, profile)
		if len(table.Rows) != 2 {
			t.Errorf("got %d rows, want 2", len(table.Rows))
		}
	})
}

// Round-trip: a hand-built line matching the pattern verbatim must reproduce
// every mapped field's original substring unchanged after rendering as a row.
func TestAssembleRoundTrip(t *testing.T) {
	profile := sbiProfile(t)

	fields := map[string]string{
		"sr_no":          "42",
		"date":           "31/12/2023",
		"transaction_id": "S987654",
		"remarks":        "NEFT HDFC0000001 JOHN DOE monthly settlement",
		"amount":         "12,345.00(Dr)",
		"balance":        "1,00,000.00(Cr)",
	}
	line := fields["sr_no"] + " " + fields["date"] + " " + fields["transaction_id"] + " " +
		fields["remarks"] + " " + fields["amount"] + " " + fields["balance"]

	table := Assemble([]string{line}, profile)
	if len(table.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(table.Rows))
	}

	row := table.Rows[0]
	for field, original := range fields {
		column := profile.Columns[field]
		if row[column] != original {
			t.Errorf("%s: got %q, want %q", column, row[column], original)
		}
	}
}

func TestFilterDebits(t *testing.T) {
	profile := sbiProfile(t)

	table := Assemble([]string{
		"1 01/01/2023 S100 Salary 1,000.00(Cr) 5,000.00(Cr)",
		"2 02/01/2023 S101 Rent 500.00(Dr) 4,500.00(Cr)",
		"3 03/01/2023 S102 Groceries 300.00(Dr) 4,200.00(Cr)",
	}, profile)

	filtered := FilterDebits(table, profile)
	if len(filtered.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(filtered.Rows))
	}
	for _, row := range filtered.Rows {
		if row["Remarks"] == "Salary" {
			t.Error("credit row survived the debit filter")
		}
	}

	// HDFC has no debit indicator; the filter is a no-op.
	hdfc := hdfcTestProfile(t)
	hdfcTable := Assemble([]string{
		"01/04/23 UPI-SWIGGY-ORDER 0000308899123456 01/04/23 250.00 0.00 10,250.00",
	}, hdfc)
	if got := FilterDebits(hdfcTable, hdfc); len(got.Rows) != 1 {
		t.Errorf("got %d rows, want 1 (filter unavailable)", len(got.Rows))
	}
}
