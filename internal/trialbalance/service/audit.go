package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"trialbalance-service/internal/trialbalance/model"
)

// anomalyFactor flags amounts beyond this multiple of the median non-zero
// amount for manual review.
var anomalyFactor = decimal.NewFromInt(1000)

// severity deductions; monotonic by construction
const (
	deductCritical = 40
	deductError    = 20
	deductWarning  = 10
	deductInfo     = 3
)

// Audit runs the scenario battery against a classified row set and returns a
// scored, purely advisory report. It never mutates the rows; findings with a
// remediation carry a pure AutoFix the caller may apply.
func Audit(rows []model.TrialBalanceRow) model.ScenarioSummary {
	var results []model.ScenarioResult
	results = append(results, checkMappingCoverage(rows)...)
	results = append(results, checkClassificationConflicts(rows)...)
	results = append(results, checkDuplicateCodes(rows)...)
	results = append(results, checkAmountAnomalies(rows)...)
	results = append(results, checkLiteralFallbacks(rows)...)

	return model.ScenarioSummary{
		Results:      results,
		OverallScore: scoreFindings(results),
	}
}

// ApplyFixes applies the named auto-fixes from a summary, in the order given.
// Unknown IDs and findings without a fix are skipped.
func ApplyFixes(rows []model.TrialBalanceRow, summary model.ScenarioSummary, ids []string) []model.TrialBalanceRow {
	byID := make(map[string]model.ScenarioResult, len(summary.Results))
	for _, res := range summary.Results {
		byID[res.ID] = res
	}
	out := rows
	for _, id := range ids {
		if res, ok := byID[id]; ok && res.AutoFix != nil {
			out = res.AutoFix(out)
		}
	}
	return out
}

func scoreFindings(results []model.ScenarioResult) int {
	score := 100
	for _, r := range results {
		switch r.Severity {
		case model.SeverityCritical:
			score -= deductCritical
		case model.SeverityError:
			score -= deductError
		case model.SeverityWarning:
			score -= deductWarning
		default:
			score -= deductInfo
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

// checkMappingCoverage verifies the mandatory statement categories have at
// least one contributing row. A missing equity section makes the balance
// sheet degenerate, so that one is an error rather than a warning.
func checkMappingCoverage(rows []model.TrialBalanceRow) []model.ScenarioResult {
	seen := make(map[model.Category]bool)
	for _, r := range rows {
		seen[r.MappedCategory] = true
	}

	mandatory := []struct {
		cat      model.Category
		severity model.Severity
		title    string
	}{
		{model.CategoryCurrentAssets, model.SeverityWarning, "لا توجد أصول متداولة"},
		{model.CategoryEquity, model.SeverityError, "لا توجد حقوق ملكية"},
		{model.CategoryRevenue, model.SeverityWarning, "لا توجد إيرادات"},
	}

	var out []model.ScenarioResult
	for i, m := range mandatory {
		if seen[m.cat] {
			continue
		}
		out = append(out, model.ScenarioResult{
			ID:          fmt.Sprintf("mapping_coverage_%d", i+1),
			Category:    "mapping_coverage",
			Severity:    m.severity,
			Title:       m.title,
			Description: fmt.Sprintf("لا يوجد أي حساب مصنف ضمن %s؛ القائمة المالية المعتمدة عليه ستكون ناقصة", m.cat),
		})
	}
	return out
}

// checkClassificationConflicts re-tests each name against the high-confidence
// known-pattern table, independently of the assigned category, and reports
// disagreements. The fix reassigns the row to the known-pattern category.
func checkClassificationConflicts(rows []model.TrialBalanceRow) []model.ScenarioResult {
	patterns := knownPatterns()
	var out []model.ScenarioResult
	for i, r := range rows {
		expected, ok := matchKeywordRules(patterns, r.Name)
		if !ok || expected == r.MappedCategory {
			continue
		}
		idx := i
		cat := expected
		out = append(out, model.ScenarioResult{
			ID:       fmt.Sprintf("classification_conflict_%s", r.Code),
			Category: "classification_conflict",
			Severity: model.SeverityWarning,
			Title:    fmt.Sprintf("تصنيف الحساب %s قد يكون خاطئاً", r.Code),
			Description: fmt.Sprintf("اسم الحساب %q يدل على %s لكنه مصنف %s",
				r.Name, expected, r.MappedCategory),
			AffectedAccounts: []string{r.Code},
			AutoFixAvailable: true,
			AutoFix: func(in []model.TrialBalanceRow) []model.TrialBalanceRow {
				fixed := make([]model.TrialBalanceRow, len(in))
				copy(fixed, in)
				if idx < len(fixed) {
					fixed[idx].MappedCategory = cat
					fixed[idx].IsAutoMapped = true
				}
				return fixed
			},
		})
	}
	return out
}

// checkDuplicateCodes flags non-placeholder codes appearing on several rows.
// Often a parsing artifact, sometimes legitimate multi-line detail.
func checkDuplicateCodes(rows []model.TrialBalanceRow) []model.ScenarioResult {
	byCode := make(map[string]int)
	for _, r := range rows {
		if r.Code == "" || r.Code == "N/A" || strings.HasPrefix(r.Code, "AUTO-") {
			continue
		}
		byCode[r.Code]++
	}
	codes := make([]string, 0)
	for code, n := range byCode {
		if n > 1 {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return nil
	}
	sort.Strings(codes)
	return []model.ScenarioResult{{
		ID:               "duplicate_detection",
		Category:         "duplicate_detection",
		Severity:         model.SeverityWarning,
		Title:            "أرقام حسابات مكررة",
		Description:      fmt.Sprintf("الأرقام التالية وردت أكثر من مرة: %s", strings.Join(codes, ", ")),
		AffectedAccounts: codes,
	}}
}

// checkAmountAnomalies flags rows whose debit or credit dwarfs the median
// non-zero amount (typically a thousands-separator mishap in the source).
func checkAmountAnomalies(rows []model.TrialBalanceRow) []model.ScenarioResult {
	var amounts []decimal.Decimal
	for _, r := range rows {
		for _, v := range []decimal.Decimal{r.Debit, r.Credit} {
			if !v.IsZero() {
				amounts = append(amounts, v.Abs())
			}
		}
	}
	if len(amounts) < 3 {
		return nil
	}
	sort.Slice(amounts, func(i, j int) bool { return amounts[i].LessThan(amounts[j]) })
	median := amounts[len(amounts)/2]
	if median.IsZero() {
		return nil
	}
	threshold := median.Mul(anomalyFactor)

	var codes []string
	for _, r := range rows {
		if r.Debit.Abs().GreaterThan(threshold) || r.Credit.Abs().GreaterThan(threshold) {
			codes = append(codes, r.Code)
		}
	}
	if len(codes) == 0 {
		return nil
	}
	return []model.ScenarioResult{{
		ID:               "amount_anomaly",
		Category:         "amount_anomaly",
		Severity:         model.SeverityInfo,
		Title:            "مبالغ غير اعتيادية",
		Description:      fmt.Sprintf("مبالغ تتجاوز %s ضعف الوسيط — تحتاج مراجعة يدوية", anomalyFactor),
		AffectedAccounts: codes,
	}}
}

// checkLiteralFallbacks surfaces rows mapped only through the coarse
// bare-label fallback, so the review UI treats them as low-confidence.
func checkLiteralFallbacks(rows []model.TrialBalanceRow) []model.ScenarioResult {
	var codes []string
	for _, r := range rows {
		if IsLiteralFallback(r.Code, r.Name) {
			codes = append(codes, r.Code)
		}
	}
	if len(codes) == 0 {
		return nil
	}
	return []model.ScenarioResult{{
		ID:               "literal_fallback",
		Category:         "classification_confidence",
		Severity:         model.SeverityInfo,
		Title:            "تصنيف افتراضي منخفض الثقة",
		Description:      "حسابات صُنفت من اسم فئة مجرد فقط؛ يُنصح بمراجعة تصنيفها",
		AffectedAccounts: codes,
	}}
}
