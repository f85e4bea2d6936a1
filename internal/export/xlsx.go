package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

const sheetName = "Employees"

// XLSXFilename returns employees_export_YYYY-MM-DD.xlsx for the given date.
func XLSXFilename(now time.Time) string {
	return "employees_export_" + now.Format(fileDateLayout) + ".xlsx"
}

// WriteXLSXFile writes the record set as a spreadsheet, same columns and row
// order as the CSV, and returns the full path.
func WriteXLSXFile(dir string, employees []model.Employee, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir: %w", err)
	}

	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("export: create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	_ = file.DeleteSheet("Sheet1")

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := file.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return "", fmt.Errorf("export: write header: %w", err)
	}

	for i, emp := range employees {
		salary, _ := emp.SalaryAmount.Float64()
		advance, _ := emp.AdvanceAmount.Float64()
		row := []interface{}{
			emp.ID, emp.Name, emp.Age, emp.MobileNumber,
			emp.UANNumber, emp.AadhaarNumber,
			emp.BankAccountNumber, emp.BankIFSC, emp.BankName,
			salary, advance,
			string(emp.Status), emp.CreatedAt.Format(createdAtLayout),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("export: cell name: %w", err)
		}
		if err := file.SetSheetRow(sheetName, cell, &row); err != nil {
			return "", fmt.Errorf("export: write row: %w", err)
		}
	}

	path := filepath.Join(dir, XLSXFilename(now))
	if err := file.SaveAs(path); err != nil {
		return "", fmt.Errorf("export: save xlsx: %w", err)
	}
	return path, nil
}
