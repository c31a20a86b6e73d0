package service

import (
	"github.com/shopspring/decimal"

	"trialbalance-service/internal/trialbalance/model"
)

// zakatRate is the statutory levy on the zakat base (2.5%, a jurisdictional
// given — not a tunable business rule).
var zakatRate = decimal.NewFromFloat(0.025)

// GenerateStatements folds a finalized row set into the five financial
// statements, footnote schedules, and the zakat computation. Rows netting to
// exactly zero are dropped from every rendered section; unmapped rows
// contribute to nothing.
func GenerateStatements(rows []model.TrialBalanceRow, companyName, reportDate string) model.FinancialStatements {
	buckets := make(map[model.Category][]model.StatementLine)
	totals := make(map[model.Category]decimal.Decimal)
	for _, r := range rows {
		if r.MappedCategory == model.CategoryUnmapped {
			continue
		}
		net := r.NetBalance()
		if net.IsZero() {
			continue
		}
		buckets[r.MappedCategory] = append(buckets[r.MappedCategory], model.StatementLine{
			Code:   r.Code,
			Name:   r.Name,
			Amount: net,
		})
		totals[r.MappedCategory] = totals[r.MappedCategory].Add(net)
	}

	bs := buildBalanceSheet(buckets, totals)
	is := buildIncomeStatement(buckets, totals, bs.TotalNonCurrentAssets, bs.TotalEquity)

	eq := model.EquityStatement{
		OpeningEquity: bs.TotalEquity,
		NetIncome:     is.NetIncome,
		ClosingEquity: bs.TotalEquity.Add(is.NetIncome),
	}

	cf := buildCashFlow(is.NetIncome, totals)

	zakat := model.ZakatComputation{
		TotalEquity:           bs.TotalEquity,
		ProfitBeforeZakat:     is.ProfitBeforeZakat,
		TotalNonCurrentAssets: bs.TotalNonCurrentAssets,
	}
	zakat.ZakatBase = zakatBase(bs.TotalEquity, is.ProfitBeforeZakat, bs.TotalNonCurrentAssets)
	zakat.Zakat = zakat.ZakatBase.Mul(zakatRate)

	return model.FinancialStatements{
		CompanyName:     companyName,
		ReportDate:      reportDate,
		BalanceSheet:    bs,
		IncomeStatement: is,
		EquityStatement: eq,
		CashFlow:        cf,
		Footnotes:       buildFootnotes(buckets, totals),
		Zakat:           zakat,
	}
}

func buildBalanceSheet(buckets map[model.Category][]model.StatementLine, totals map[model.Category]decimal.Decimal) model.BalanceSheet {
	bs := model.BalanceSheet{
		CurrentAssets:         buckets[model.CategoryCurrentAssets],
		NonCurrentAssets:      buckets[model.CategoryNonCurrentAssets],
		CurrentLiabilities:    buckets[model.CategoryCurrentLiabilities],
		NonCurrentLiabilities: buckets[model.CategoryNonCurrentLiabilities],
		Equity:                buckets[model.CategoryEquity],

		TotalCurrentAssets:      totals[model.CategoryCurrentAssets],
		TotalNonCurrentAssets:   totals[model.CategoryNonCurrentAssets],
		TotalCurrentLiabilities: totals[model.CategoryCurrentLiabilities],
		TotalNonCurrentLiabs:    totals[model.CategoryNonCurrentLiabilities],
		TotalEquity:             totals[model.CategoryEquity],
	}
	bs.TotalAssets = bs.TotalCurrentAssets.Add(bs.TotalNonCurrentAssets)
	bs.TotalLiabilities = bs.TotalCurrentLiabilities.Add(bs.TotalNonCurrentLiabs)
	bs.TotalLiabilitiesAndEquity = bs.TotalLiabilities.Add(bs.TotalEquity)
	return bs
}

func buildIncomeStatement(buckets map[model.Category][]model.StatementLine, totals map[model.Category]decimal.Decimal, nonCurrentAssets, equity decimal.Decimal) model.IncomeStatement {
	is := model.IncomeStatement{
		Revenue:         buckets[model.CategoryRevenue],
		CostOfGoodsSold: buckets[model.CategoryCOGS],
		Expenses:        buckets[model.CategoryExpenses],
		TotalRevenue:    totals[model.CategoryRevenue],
		TotalCOGS:       totals[model.CategoryCOGS],
		TotalExpenses:   totals[model.CategoryExpenses],
	}
	is.GrossProfit = is.TotalRevenue.Sub(is.TotalCOGS)
	is.ProfitBeforeZakat = is.GrossProfit.Sub(is.TotalExpenses)
	is.Zakat = zakatBase(equity, is.ProfitBeforeZakat, nonCurrentAssets).Mul(zakatRate)
	is.NetIncome = is.ProfitBeforeZakat.Sub(is.Zakat)
	return is
}

// buildCashFlow buckets the classified balances into an indirect-method
// skeleton: working capital from the current sections, investing from
// non-current assets, financing from non-current liabilities and equity.
func buildCashFlow(netIncome decimal.Decimal, totals map[model.Category]decimal.Decimal) model.CashFlowStatement {
	cf := model.CashFlowStatement{
		NetIncome: netIncome,
		OperatingActivities: netIncome.
			Add(totals[model.CategoryCurrentLiabilities]).
			Sub(totals[model.CategoryCurrentAssets]),
		InvestingActivities: totals[model.CategoryNonCurrentAssets].Neg(),
		FinancingActivities: totals[model.CategoryNonCurrentLiabilities].
			Add(totals[model.CategoryEquity]),
	}
	cf.NetChangeInCash = cf.OperatingActivities.
		Add(cf.InvestingActivities).
		Add(cf.FinancingActivities)
	return cf
}

var footnoteTitles = map[model.Category]string{
	model.CategoryCurrentAssets:         "الأصول المتداولة",
	model.CategoryNonCurrentAssets:      "الأصول غير المتداولة",
	model.CategoryCurrentLiabilities:    "الالتزامات المتداولة",
	model.CategoryNonCurrentLiabilities: "الالتزامات غير المتداولة",
	model.CategoryEquity:                "حقوق الملكية",
	model.CategoryRevenue:               "الإيرادات",
	model.CategoryCOGS:                  "تكلفة الإيرادات",
	model.CategoryExpenses:              "المصروفات",
}

// footnoteOrder fixes the rendering order of the schedules.
var footnoteOrder = []model.Category{
	model.CategoryCurrentAssets,
	model.CategoryNonCurrentAssets,
	model.CategoryCurrentLiabilities,
	model.CategoryNonCurrentLiabilities,
	model.CategoryEquity,
	model.CategoryRevenue,
	model.CategoryCOGS,
	model.CategoryExpenses,
}

func buildFootnotes(buckets map[model.Category][]model.StatementLine, totals map[model.Category]decimal.Decimal) []model.FootnoteSchedule {
	var notes []model.FootnoteSchedule
	for _, cat := range footnoteOrder {
		lines := buckets[cat]
		if len(lines) == 0 {
			continue
		}
		notes = append(notes, model.FootnoteSchedule{
			Category: cat,
			Title:    footnoteTitles[cat],
			Lines:    lines,
			Total:    totals[cat],
		})
	}
	return notes
}

// zakatBase = max(0, equity + profit before zakat − non-current assets).
func zakatBase(equity, profitBeforeZakat, nonCurrentAssets decimal.Decimal) decimal.Decimal {
	base := equity.Add(profitBeforeZakat).Sub(nonCurrentAssets)
	if base.IsNegative() {
		return decimal.Zero
	}
	return base
}
