package export

// Printable snapshot of the admin panel table using go-pdf/fpdf.
// Landscape A4 with a stats summary line, a header row, and one row per
// employee. The terminal client's stand-in for the browser's Print action.

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// PDFFilename returns employees_export_YYYY-MM-DD.pdf for the given date.
func PDFFilename(now time.Time) string {
	return "employees_export_" + now.Format(fileDateLayout) + ".pdf"
}

// WritePDFFile renders the record set and the current aggregates into dir
// and returns the full path.
func WritePDFFile(dir string, employees []model.Employee, stats model.DashboardStats, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir: %w", err)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Adarsh Contractor - Employee Records", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, now.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Stats line ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	summary := fmt.Sprintf(
		"Total: %d   Pending: %d   Salary: Rs %s   Advances: Rs %s",
		stats.TotalEmployees, stats.PendingApprovals,
		stats.TotalSalary.StringFixed(2), stats.TotalAdvances.StringFixed(2),
	)
	pdf.CellFormat(contentW, 6, summary, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Table ─────────────────────────────────────────────────────────────────
	cols := []struct {
		title string
		width float64 // fraction of content width
	}{
		{"Name", 0.16}, {"Age", 0.05}, {"Mobile", 0.11},
		{"UAN", 0.11}, {"Aadhaar", 0.12}, {"Bank", 0.15},
		{"Salary", 0.10}, {"Advance", 0.10}, {"Status", 0.10},
	}

	pdf.SetFont("Helvetica", "B", 8)
	for _, col := range cols {
		pdf.CellFormat(contentW*col.width, 6, col.title, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, emp := range employees {
		cells := []string{
			truncate(emp.Name, 26),
			strconv.Itoa(emp.Age),
			emp.MobileNumber,
			emp.UANNumber,
			emp.AadhaarNumber,
			truncate(emp.BankName, 24),
			emp.SalaryAmount.StringFixed(2),
			emp.AdvanceAmount.StringFixed(2),
			string(emp.Status),
		}
		for i, col := range cols {
			pdf.CellFormat(contentW*col.width, 5.5, cells[i], "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	path := filepath.Join(dir, PDFFilename(now))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("export: save pdf: %w", err)
	}
	return path, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "..."
}
