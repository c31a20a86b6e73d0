package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trialbalance-service/internal/trialbalance/model"
)

// End-to-end over the engine: detect, extract, classify, validate, generate.
func TestImport_RoundTrip(t *testing.T) {
	grid := [][]string{
		{"Code", "Name", "Debit", "Credit"},
		{"1101", "Cash", "1000", "0"},
		{"2101", "Suppliers", "0", "600"},
		{"3101", "Capital", "0", "400"},
		{"4101", "Sales", "0", "0"},
	}

	imported, err := Import(grid, "tb.xlsx")
	require.NoError(t, err)
	require.Len(t, imported.Rows, 4)
	assert.Equal(t, "tb.xlsx", imported.FileName)
	assert.False(t, imported.ImportDate.IsZero())

	wantCats := []model.Category{
		model.CategoryCurrentAssets,
		model.CategoryCurrentLiabilities,
		model.CategoryEquity,
		model.CategoryRevenue,
	}
	for i, want := range wantCats {
		assert.Equal(t, want, imported.Rows[i].MappedCategory, "row %d", i)
	}

	assert.True(t, imported.Validation.IsBalanced)
	assert.Equal(t, "1000.00", imported.Validation.TotalDebit.StringFixed(2))
	assert.Equal(t, "1000.00", imported.Validation.TotalCredit.StringFixed(2))

	stmts := GenerateStatements(imported.Rows, "Test Co", "2026-12-31")
	assert.Equal(t, "1000.00", stmts.BalanceSheet.TotalAssets.StringFixed(2))
	assert.Equal(t, "1000.00", stmts.BalanceSheet.TotalLiabilitiesAndEquity.StringFixed(2))
}

func TestImport_ImbalancedStillImports(t *testing.T) {
	grid := [][]string{
		{"Code", "Name", "Debit", "Credit"},
		{"1101", "Cash", "1000", "0"},
		{"2101", "Suppliers", "0", "600"},
		{"3101", "Capital", "0", "300"},
	}

	imported, err := Import(grid, "tb.xlsx")
	require.NoError(t, err)
	assert.False(t, imported.Validation.IsBalanced)
	assert.Equal(t, "100.00", imported.Validation.Difference.StringFixed(2))
	require.NotEmpty(t, imported.Validation.Errors)
}

func TestImport_UnmappedRowWarns(t *testing.T) {
	grid := [][]string{
		{"Code", "Name", "Debit", "Credit"},
		{"1101", "Cash", "500", "0"},
		{"3101", "Capital", "0", "400"},
		{"ZZZ", "Northwind Holdings", "0", "100"},
	}

	imported, err := Import(grid, "tb.csv")
	require.NoError(t, err)
	require.Len(t, imported.Rows, 3)

	last := imported.Rows[2]
	assert.Equal(t, model.CategoryUnmapped, last.MappedCategory)
	assert.False(t, last.IsAutoMapped)
	require.NotEmpty(t, imported.Validation.Warnings)

	// unmapped rows land in no statement bucket
	stmts := GenerateStatements(imported.Rows, "", "")
	assert.Equal(t, "500.00", stmts.BalanceSheet.TotalAssets.StringFixed(2))
	assert.Equal(t, "400.00", stmts.BalanceSheet.TotalLiabilitiesAndEquity.StringFixed(2))
}

func TestImport_StructureNotDetected(t *testing.T) {
	_, err := Import([][]string{
		{"تقرير الإدارة السنوي"},
		{"جميع الحقوق محفوظة"},
	}, "notes.csv")
	require.ErrorIs(t, err, ErrStructureNotDetected)
}

func TestImport_NoDataRows(t *testing.T) {
	grid := [][]string{
		{"Code", "Name", "Debit", "Credit"},
		{"", "Total", "0", "0"},
	}
	_, err := Import(grid, "empty.csv")
	require.ErrorIs(t, err, ErrNoDataRows)
}
