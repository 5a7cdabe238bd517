package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		SheetName: "Attendance",
		Headers:   []string{"Date", "EmployeeID", "Name"},
		Rows: [][]string{
			{"2024-01-10", "E1", "Alice"},
			{"2024-01-10", "E2", "Bob, Jr."},
		},
	}
}

func TestRender_XLSX(t *testing.T) {
	file, err := Render(sampleTable(), FormatXLSX, "Attendance_All")
	require.NoError(t, err)

	assert.Equal(t, "Attendance_All.xlsx", file.Name)
	assert.Equal(t, FormatXLSX.ContentType(), file.ContentType)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "EmployeeID", "Name"}, rows[0])
	assert.Equal(t, []string{"2024-01-10", "E2", "Bob, Jr."}, rows[2])
}

func TestRender_CSV(t *testing.T) {
	file, err := Render(sampleTable(), FormatCSV, "employees_2024-01-10")
	require.NoError(t, err)

	assert.Equal(t, "employees_2024-01-10.csv", file.Name)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Bob, Jr.", records[2][2])
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, err := Render(sampleTable(), Format("pdf"), "x")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteXLSX_DefaultSheet(t *testing.T) {
	var buf bytes.Buffer
	tbl := sampleTable()
	tbl.SheetName = ""
	require.NoError(t, WriteXLSX(&buf, tbl))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Sheet1"}, wb.GetSheetList())
}

func TestFormat_Valid(t *testing.T) {
	assert.True(t, FormatXLSX.Valid())
	assert.True(t, FormatCSV.Valid())
	assert.False(t, Format("").Valid())
	assert.False(t, Format("XLSX").Valid())
}
