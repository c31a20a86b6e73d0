package fileio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGrid_CSV(t *testing.T) {
	src := "رقم الحساب,اسم الحساب,مدين,دائن\n" +
		"1101,نقدية بالصندوق,1000,0\n" +
		"2101,موردون,0,1000\n"

	grid, err := ReadGrid(strings.NewReader(src), "tb.csv")
	require.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Equal(t, []string{"رقم الحساب", "اسم الحساب", "مدين", "دائن"}, grid[0])
	assert.Equal(t, "1101", grid[1][0])
	assert.Equal(t, "نقدية بالصندوق", grid[1][1])
}

func TestReadGrid_CSVQuotedCells(t *testing.T) {
	src := "Code,Name,Debit,Credit\n" +
		"1101,\"Cash, on hand\",1000,0\n"

	grid, err := ReadGrid(strings.NewReader(src), "tb.csv")
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, "Cash, on hand", grid[1][1])
}

func TestReadGrid_RaggedRows(t *testing.T) {
	src := "Code,Name,Debit,Credit\n" +
		"1101,Cash,1000\n" +
		"2101,Suppliers,0,600,extra\n"

	grid, err := ReadGrid(strings.NewReader(src), "tb.csv")
	require.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Len(t, grid[1], 3)
	assert.Len(t, grid[2], 5)
}

func TestReadGrid_UnsupportedExtension(t *testing.T) {
	_, err := ReadGrid(strings.NewReader("x"), "report.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestPreferredSheet(t *testing.T) {
	assert.Equal(t, 1, preferredSheet([]string{"Sheet1", "ميزان المراجعة", "الرواتب"}))
	assert.Equal(t, 2, preferredSheet([]string{"Summary", "Payroll", "Trial Balance 2026"}))
	assert.Equal(t, 0, preferredSheet([]string{"Sheet1", "Sheet2"}))
}
