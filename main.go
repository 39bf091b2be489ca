package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/insightdelivered/statement-parser/internal/api"
	"github.com/insightdelivered/statement-parser/internal/bank"
	"github.com/insightdelivered/statement-parser/internal/classifier"
	"github.com/insightdelivered/statement-parser/internal/extractor"
	"github.com/insightdelivered/statement-parser/internal/parser"
	"github.com/insightdelivered/statement-parser/internal/writer"
)

const version = "2.0.0"

func main() {
	// CLI flags
	bankFlag := flag.String("bank", "", "Bank key: SBI, HDFC, UNION (auto-detected if omitted)")
	outputFlag := flag.String("output", "", "Output file path, .xlsx or .csv (defaults to input filename with .xlsx extension)")
	debitFlag := flag.Bool("debit-only", false, "Keep only debit/withdrawal rows")
	classifyFlag := flag.Bool("classify", false, "Append a spending Category column")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of converting files")
	portFlag := flag.Int("port", 8080, "Port for -serve mode")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Bank Statement PDF Parser
by Insight Delivered

Extracts transactions from Indian bank statement PDFs (SBI, HDFC,
Union Bank) into Excel or CSV files.

Usage:
  statement-parser [flags] <input.pdf> [input2.pdf ...]
  statement-parser -serve [-port 8080]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Auto-detect bank and convert
  statement-parser statement.pdf

  # Specify bank explicitly
  statement-parser -bank=HDFC statement.pdf

  # Debit rows only, categorized, to CSV
  statement-parser -bank=SBI -debit-only -classify -output=spends.csv statement.pdf

  # Run the upload API
  statement-parser -serve -port 9000

Supported Banks:
  SBI    - State Bank of India (S.No/Date/Transaction Id layout)
  HDFC   - HDFC Bank (Narration/Withdrawal/Deposit layout)
  UNION  - Union Bank of India (same layout as SBI)
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("statement-parser v%s\n", version)
		os.Exit(0)
	}

	if *serveFlag {
		app := api.NewApp()
		fmt.Printf("Listening on :%d\n", *portFlag)
		if err := app.Listen(fmt.Sprintf(":%d", *portFlag)); err != nil {
			fatalf("server failed: %v\n", err)
		}
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	registry := bank.Builtin()

	// Validate bank flag if provided
	if *bankFlag != "" {
		if _, ok := registry.Lookup(*bankFlag); !ok {
			fatalf("Unknown bank %q. Supported: %s\n", *bankFlag, strings.Join(registry.Keys(), ", "))
		}
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(inputPath, registry, *bankFlag, *outputFlag, *debitFlag, *classifyFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(inputPath string, registry *bank.Registry, bankKey, outputPath string, debitOnly, classify bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	pages, err := extractor.ExtractText(inputPath)
	if err != nil {
		return fmt.Errorf("PDF extraction failed: %w", err)
	}

	fmt.Printf("  Extracted text from %d page(s)\n", len(pages))

	var p *parser.Parser
	if bankKey != "" {
		p, err = parser.NewForBank(registry, bankKey)
		if err != nil {
			return err
		}
	} else {
		p = parser.New(registry)
	}

	res, err := p.Parse(pages)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	fmt.Printf("  Bank: %s\n", res.BankName)
	fmt.Printf("  Found %d transaction(s)\n", len(res.Table.Rows))

	if res.Table.Empty() {
		fmt.Println("  Warning: No transactions found. The PDF text may not match the expected layout.")
		fmt.Println("  Try specifying the bank explicitly with -bank if auto-detection was used.")
	}

	if debitOnly {
		if profile, ok := registry.Lookup(res.BankKey); ok {
			before := len(res.Table.Rows)
			res.Table = parser.FilterDebits(res.Table, profile)
			fmt.Printf("  Debit filter: kept %d of %d row(s)\n", len(res.Table.Rows), before)
		}
	}

	if classify {
		res.Table = classifier.Categorize(res.Table)
	}

	outPath := outputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".xlsx"
	}

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".csv":
		w := &writer.CSVWriter{IncludeBankRow: true}
		if err := w.WriteToFile(outPath, res); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
	default:
		w := &writer.ExcelWriter{}
		if err := w.WriteToFile(outPath, res); err != nil {
			return fmt.Errorf("Excel write failed: %w", err)
		}
	}

	fmt.Printf("  Output: %s\n", outPath)
	fmt.Println("  Done.")
	return nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
