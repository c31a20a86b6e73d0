package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"trialbalance-service/internal/trialbalance/model"
)

// balanceTolerance is the accepted rounding slack between total debits and
// credits. A design constant, not a derived value.
var balanceTolerance = decimal.NewFromFloat(0.01)

// Validate sums debits and credits across all rows and reports the imbalance.
// An imbalance is an error but never fatal: the import still completes and
// the caller decides what to trust. Unmapped rows are a warning only.
func Validate(rows []model.TrialBalanceRow) model.ValidationResult {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	unmapped := 0
	for _, r := range rows {
		totalDebit = totalDebit.Add(r.Debit)
		totalCredit = totalCredit.Add(r.Credit)
		if r.MappedCategory == model.CategoryUnmapped {
			unmapped++
		}
	}

	diff := totalDebit.Sub(totalCredit).Abs()
	res := model.ValidationResult{
		IsBalanced:  diff.LessThan(balanceTolerance),
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Difference:  diff,
		Warnings:    []string{},
		Errors:      []string{},
	}

	if !res.IsBalanced {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"ميزان المراجعة غير متوازن: مدين %s مقابل دائن %s (فرق %s)",
			totalDebit.StringFixed(2), totalCredit.StringFixed(2), diff.StringFixed(2)))
	}
	if unmapped > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"%d حساب بدون تصنيف — لن تدخل في القوائم المالية حتى يتم تصنيفها يدوياً", unmapped))
	}
	return res
}
