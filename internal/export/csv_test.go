package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

func sampleEmployees() []model.Employee {
	return []model.Employee{
		{
			ID:            "1",
			Name:          "A,B",
			Age:           30,
			MobileNumber:  "9876543210",
			UANNumber:     "100200300400",
			AadhaarNumber: "123412341234",
			SalaryAmount:  decimal.NewFromInt(1000),
			Status:        model.StatusApproved,
			CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "2",
			Name:          "Chetan",
			Age:           41,
			MobileNumber:  "9000000001",
			UANNumber:     "100200300401",
			AadhaarNumber: "123412341235",
			BankName:      "State Bank, Pune",
			SalaryAmount:  decimal.NewFromFloat(22500.50),
			AdvanceAmount: decimal.NewFromInt(500),
			Status:        model.StatusPending,
			CreatedAt:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, sampleEmployees()))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t,
		"ID,Name,Age,Mobile,UAN,Aadhaar,Bank Account,IFSC,Bank Name,Salary,Advance,Status,Created At",
		lines[0])

	// Name containing the delimiter stays quoted; absent amounts render 0;
	// row order matches input order.
	assert.Equal(t,
		`1,"A,B",30,9876543210,100200300400,123412341234,,,"",1000,0,approved,2024-01-01`,
		lines[1])
	assert.Equal(t,
		`2,"Chetan",41,9000000001,100200300401,123412341235,,,"State Bank, Pune",22500.5,500,pending,2024-03-15`,
		lines[2])
}

func TestWriteCSVEmptySet(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, nil))
	assert.Equal(t,
		"ID,Name,Age,Mobile,UAN,Aadhaar,Bank Account,IFSC,Bank Name,Salary,Advance,Status,Created At\n",
		sb.String())
}

func TestCSVFilenameEmbedsDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 17, 45, 0, 0, time.UTC)
	assert.Equal(t, "employees_export_2026-08-29.csv", CSVFilename(now))
}

func TestWriteCSVFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	path, err := WriteCSVFile(dir, sampleEmployees(), now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "employees_export_2024-06-02.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"A,B"`)
}

func TestQuoteEscapesInnerQuotes(t *testing.T) {
	assert.Equal(t, `"say ""hi"""`, quote(`say "hi"`))
}
