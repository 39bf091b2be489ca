package api

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/insightdelivered/statement-parser/internal/bank"
	"github.com/insightdelivered/statement-parser/internal/classifier"
	"github.com/insightdelivered/statement-parser/internal/extractor"
	"github.com/insightdelivered/statement-parser/internal/models"
	"github.com/insightdelivered/statement-parser/internal/parser"
	"github.com/insightdelivered/statement-parser/internal/writer"
)

// Version reported by the health endpoint.
const Version = "2.0.0"

// ParseResponse is the JSON body of /api/parse.
type ParseResponse struct {
	Success  bool         `json:"success"`
	Error    string       `json:"error,omitempty"`
	Bank     string       `json:"bank,omitempty"`
	BankName string       `json:"bankName,omitempty"`
	Columns  []string     `json:"columns,omitempty"`
	Rows     []models.Row `json:"rows"`
	Count    int          `json:"count"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 32 << 20, // statement PDFs are small; 32MB is generous
	})
	app.Get("/api/health", HandleHealth)
	app.Post("/api/parse", HandleParse)
	app.Post("/api/convert", HandleConvert)
	return app
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": Version,
	})
}

// HandleParse accepts a multipart PDF upload and returns the parsed
// transaction table as JSON.
//
// Form fields: "file" (the PDF, required), "bank" (profile key, optional —
// auto-detected when absent), "debitOnly" ("true" keeps only debit rows),
// "classify" ("true" appends a Category column).
func HandleParse(c *fiber.Ctx) error {
	res, status, err := parseUpload(c)
	if err != nil {
		return writeError(c, status, err.Error())
	}

	rows := res.Table.Rows
	if rows == nil {
		rows = []models.Row{}
	}
	return c.JSON(ParseResponse{
		Success:  true,
		Bank:     res.BankKey,
		BankName: res.BankName,
		Columns:  res.Table.Columns,
		Rows:     rows,
		Count:    len(rows),
	})
}

// HandleConvert accepts the same form as HandleParse and responds with an
// .xlsx workbook attachment.
func HandleConvert(c *fiber.Ctx) error {
	res, status, err := parseUpload(c)
	if err != nil {
		return writeError(c, status, err.Error())
	}

	var buf bytes.Buffer
	w := &writer.ExcelWriter{}
	if err := w.Write(&buf, res); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("workbook generation failed: %v", err))
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.xlsx"`)
	return c.Send(buf.Bytes())
}

// parseUpload runs the shared upload → extract → parse → filter pipeline.
// On failure it returns the HTTP status the handler should respond with.
func parseUpload(c *fiber.Ctx) (*models.Result, int, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, fiber.StatusBadRequest, fmt.Errorf("no file uploaded; use form field 'file'")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return nil, fiber.StatusBadRequest, fmt.Errorf("only PDF files are supported")
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return nil, fiber.StatusInternalServerError, fmt.Errorf("failed to create temp file")
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpName)

	if err := c.SaveFile(fileHeader, tmpName); err != nil {
		return nil, fiber.StatusInternalServerError, fmt.Errorf("failed to save uploaded file")
	}

	pages, err := extractor.ExtractText(tmpName)
	if err != nil {
		return nil, fiber.StatusUnprocessableEntity, fmt.Errorf("PDF extraction failed: %v", err)
	}

	registry := bank.Builtin()
	var p *parser.Parser
	if key := c.FormValue("bank"); key != "" {
		p, err = parser.NewForBank(registry, key)
		if err != nil {
			return nil, fiber.StatusBadRequest, err
		}
	} else {
		p = parser.New(registry)
	}

	res, err := p.Parse(pages)
	if err != nil {
		return nil, fiber.StatusUnprocessableEntity, err
	}

	if c.FormValue("debitOnly") == "true" {
		if profile, ok := registry.Lookup(res.BankKey); ok {
			res.Table = parser.FilterDebits(res.Table, profile)
		}
	}
	if c.FormValue("classify") == "true" {
		res.Table = classifier.Categorize(res.Table)
	}

	return res, fiber.StatusOK, nil
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ParseResponse{
		Success: false,
		Error:   msg,
		Rows:    []models.Row{},
	})
}
