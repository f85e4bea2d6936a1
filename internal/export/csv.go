// Package export turns an already-fetched record set into downloadable
// files. Pure, synchronous transformations; the single export fetch happens
// upstream in the admin service.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// fileDateLayout embeds the current date in export filenames.
const fileDateLayout = "2006-01-02"

// createdAtLayout is how the audit timestamp renders in exports.
const createdAtLayout = "2006-01-02"

// header is the fixed export column order.
var header = []string{
	"ID", "Name", "Age", "Mobile", "UAN", "Aadhaar",
	"Bank Account", "IFSC", "Bank Name", "Salary", "Advance",
	"Status", "Created At",
}

// CSVFilename returns employees_export_YYYY-MM-DD.csv for the given date.
func CSVFilename(now time.Time) string {
	return "employees_export_" + now.Format(fileDateLayout) + ".csv"
}

// WriteCSV writes the record set as CSV, preserving input order. Name and
// bank name are always quoted since they may contain the field delimiter.
func WriteCSV(w io.Writer, employees []model.Employee) error {
	rows := make([]string, 0, len(employees)+1)
	rows = append(rows, strings.Join(header, ","))
	for _, emp := range employees {
		rows = append(rows, strings.Join(csvRow(emp), ","))
	}
	_, err := io.WriteString(w, strings.Join(rows, "\n")+"\n")
	if err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	return nil
}

// WriteCSVFile writes the CSV into dir and returns the full path.
func WriteCSVFile(dir string, employees []model.Employee, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir: %w", err)
	}
	path := filepath.Join(dir, CSVFilename(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create csv: %w", err)
	}
	defer f.Close()
	if err := WriteCSV(f, employees); err != nil {
		return "", err
	}
	return path, nil
}

func csvRow(emp model.Employee) []string {
	return []string{
		emp.ID,
		quote(emp.Name),
		strconv.Itoa(emp.Age),
		emp.MobileNumber,
		emp.UANNumber,
		emp.AadhaarNumber,
		emp.BankAccountNumber,
		emp.BankIFSC,
		quote(emp.BankName),
		emp.SalaryAmount.String(),
		emp.AdvanceAmount.String(),
		string(emp.Status),
		emp.CreatedAt.Format(createdAtLayout),
	}
}

// quote always wraps the value; inner quotes double per RFC 4180.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
