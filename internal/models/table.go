package models

// Record maps a profile field name (e.g. "remarks") to the raw string
// extracted for it. Values are never type-coerced; amounts and dates
// stay exactly as they appeared in the statement text.
type Record map[string]string

// Row maps a display column name (e.g. "Remarks") to a cell value.
// Fields that failed extraction are simply absent.
type Row map[string]string

// Table is an ordered collection of transaction rows under named columns.
// Rows preserve statement order; duplicates are possible and preserved.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Append adds a row at the end of the table.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Empty reports whether the table holds no rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Cells returns the row's values in column order, with "" for absent cells.
func (t *Table) Cells(row Row) []string {
	cells := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		cells[i] = row[col]
	}
	return cells
}

// Result holds everything parsed from one statement.
type Result struct {
	BankKey  string `json:"bank"`
	BankName string `json:"bankName"`
	Table    Table  `json:"table"`
}
