package export

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

func TestWriteXLSXFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	path, err := WriteXLSXFile(dir, sampleEmployees(), now)
	require.NoError(t, err)
	assert.Contains(t, path, "employees_export_2024-06-02.xlsx")

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "A,B", rows[1][1])
	assert.Equal(t, "approved", rows[1][11])
}

func TestWritePDFFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	stats := model.DashboardStats{TotalEmployees: 2, PendingApprovals: 1}

	path, err := WritePDFFile(dir, sampleEmployees(), stats, now)
	require.NoError(t, err)
	assert.Contains(t, path, "employees_export_2024-06-02.pdf")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
