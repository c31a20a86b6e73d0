package service

import (
	"fmt"
	"strings"

	"trialbalance-service/internal/trialbalance/model"
)

// ExtractRows walks the data rows under a detected mapping and emits one
// classified TrialBalanceRow per surviving account line.
func ExtractRows(grid [][]string, mapping model.ColumnMapping) []model.TrialBalanceRow {
	var rows []model.TrialBalanceRow
	for r := mapping.FirstDataRow; r < len(grid); r++ {
		row := grid[r]
		if populatedCells(row) < 2 {
			continue
		}

		name := strings.TrimSpace(cellAt(row, mapping.NameCol))
		code := recoverCode(row, mapping)
		if isTotalsRow(code, name) {
			continue
		}

		debit := ParseAmount(cellAt(row, mapping.DebitCol))
		credit := ParseAmount(cellAt(row, mapping.CreditCol))

		validCode := LooksLikeAccountCode(code)
		validName := LooksLikeAccountName(name)
		if !validCode && !validName && debit.IsZero() && credit.IsZero() {
			continue
		}
		if code == "" {
			// synthetic placeholder keeps the row traceable to its source line
			code = fmt.Sprintf("AUTO-%d", r)
		}

		cat := Classify(code, name)
		rows = append(rows, model.TrialBalanceRow{
			Code:           code,
			Name:           name,
			Debit:          debit,
			Credit:         credit,
			MappedCategory: cat,
			IsAutoMapped:   cat != model.CategoryUnmapped && !IsLiteralFallback(code, name),
		})
	}
	return rows
}

// recoverCode reads the mapped code column, or scans every column except
// name/debit/credit for the first code-shaped value when no code column was
// detected (or the mapped cell does not validate).
func recoverCode(row []string, mapping model.ColumnMapping) string {
	if mapping.CodeCol >= 0 {
		if v := strings.TrimSpace(cellAt(row, mapping.CodeCol)); v != "" {
			return v
		}
	}
	for c, cell := range row {
		if c == mapping.NameCol || c == mapping.DebitCol || c == mapping.CreditCol {
			continue
		}
		if LooksLikeAccountCode(cell) {
			return strings.TrimSpace(cell)
		}
	}
	return ""
}

// isTotalsRow filters aggregate lines ("total", "الإجمالي", ...) that would
// otherwise double-count against the account detail.
func isTotalsRow(code, name string) bool {
	c := strings.ToLower(strings.TrimSpace(code))
	n := strings.ToLower(strings.TrimSpace(name))
	for _, kw := range totalsVocab {
		if strings.Contains(n, kw) || strings.Contains(c, kw) {
			return true
		}
	}
	return false
}

func populatedCells(row []string) int {
	count := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			count++
		}
	}
	return count
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
