package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trialbalance-service/internal/trialbalance/model"
)

func cleanRows() []model.TrialBalanceRow {
	return []model.TrialBalanceRow{
		row("1101", "Cash", 1000, 0, model.CategoryCurrentAssets),
		row("2101", "Suppliers", 0, 600, model.CategoryCurrentLiabilities),
		row("3101", "Capital", 0, 400, model.CategoryEquity),
		row("4101", "Sales", 0, 0, model.CategoryRevenue),
	}
}

func TestAudit_CleanSetScores100(t *testing.T) {
	summary := Audit(cleanRows())
	assert.Empty(t, summary.Results)
	assert.Equal(t, 100, summary.OverallScore)
}

// Adding findings can only lower the score.
func TestAudit_ScoreMonotonic(t *testing.T) {
	clean := Audit(cleanRows()).OverallScore

	withDup := append(cleanRows(),
		row("1101", "Cash branch", 50, 0, model.CategoryCurrentAssets))
	dupScore := Audit(withDup).OverallScore
	assert.Less(t, dupScore, clean)

	withMore := append(withDup,
		row("N/A", "Northwind Holdings", 0, 50, model.CategoryUnmapped))
	assert.LessOrEqual(t, Audit(withMore).OverallScore, dupScore)
}

func TestAudit_MappingCoverage(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row("1101", "Cash", 1000, 0, model.CategoryCurrentAssets),
		row("4101", "Sales", 0, 1000, model.CategoryRevenue),
	}
	summary := Audit(rows)

	var equityFinding *model.ScenarioResult
	for i := range summary.Results {
		if summary.Results[i].Category == "mapping_coverage" {
			equityFinding = &summary.Results[i]
		}
	}
	require.NotNil(t, equityFinding)
	// a balance sheet without equity is degenerate
	assert.Equal(t, model.SeverityError, equityFinding.Severity)
}

func TestAudit_ClassificationConflictAndFix(t *testing.T) {
	rows := cleanRows()
	// name says suppliers, assigned says current assets
	rows = append(rows, row("1105", "موردون خارجيون", 0, 200, model.CategoryCurrentAssets))

	summary := Audit(rows)
	var conflict *model.ScenarioResult
	for i := range summary.Results {
		if summary.Results[i].Category == "classification_conflict" {
			conflict = &summary.Results[i]
		}
	}
	require.NotNil(t, conflict)
	assert.Equal(t, model.SeverityWarning, conflict.Severity)
	assert.True(t, conflict.AutoFixAvailable)
	assert.Equal(t, []string{"1105"}, conflict.AffectedAccounts)

	fixed := ApplyFixes(rows, summary, []string{conflict.ID})
	assert.Equal(t, model.CategoryCurrentLiabilities, fixed[4].MappedCategory)
	// the input set stays untouched
	assert.Equal(t, model.CategoryCurrentAssets, rows[4].MappedCategory)
}

func TestAudit_DuplicateCodes(t *testing.T) {
	rows := append(cleanRows(),
		row("1101", "Cash petty", 20, 0, model.CategoryCurrentAssets))
	summary := Audit(rows)

	found := false
	for _, res := range summary.Results {
		if res.Category == "duplicate_detection" {
			found = true
			assert.Contains(t, res.AffectedAccounts, "1101")
		}
	}
	assert.True(t, found)
}

// Synthetic placeholder codes never count as duplicates.
func TestAudit_PlaceholderCodesNotDuplicates(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row("AUTO-3", "Cash", 500, 0, model.CategoryCurrentAssets),
		row("AUTO-4", "Capital", 0, 400, model.CategoryEquity),
		row("AUTO-5", "Sales", 0, 100, model.CategoryRevenue),
	}
	for _, res := range Audit(rows).Results {
		assert.NotEqual(t, "duplicate_detection", res.Category)
	}
}

func TestAudit_AmountAnomaly(t *testing.T) {
	rows := []model.TrialBalanceRow{
		row("1101", "Cash", 100, 0, model.CategoryCurrentAssets),
		row("1102", "Bank", 120, 0, model.CategoryCurrentAssets),
		row("2101", "Suppliers", 0, 130, model.CategoryCurrentLiabilities),
		row("3101", "Capital", 0, 500000, model.CategoryEquity),
		row("4101", "Sales", 0, 90, model.CategoryRevenue),
	}
	summary := Audit(rows)

	var anomaly *model.ScenarioResult
	for i := range summary.Results {
		if summary.Results[i].Category == "amount_anomaly" {
			anomaly = &summary.Results[i]
		}
	}
	require.NotNil(t, anomaly)
	assert.Equal(t, model.SeverityInfo, anomaly.Severity)
	assert.Equal(t, []string{"3101"}, anomaly.AffectedAccounts)
}

func TestAudit_LiteralFallbackFlagged(t *testing.T) {
	rows := append(cleanRows(),
		model.TrialBalanceRow{
			Code: "N/A", Name: "الأصول",
			MappedCategory: model.CategoryCurrentAssets,
			IsAutoMapped:   false,
		})
	summary := Audit(rows)

	found := false
	for _, res := range summary.Results {
		if res.Category == "classification_confidence" {
			found = true
			assert.Equal(t, model.SeverityInfo, res.Severity)
		}
	}
	assert.True(t, found)
}
