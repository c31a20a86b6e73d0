package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a trial-balance row into a statement bucket.
type Category string

const (
	CategoryCurrentAssets         Category = "current_assets"
	CategoryNonCurrentAssets      Category = "non_current_assets"
	CategoryCurrentLiabilities    Category = "current_liabilities"
	CategoryNonCurrentLiabilities Category = "non_current_liabilities"
	CategoryEquity                Category = "equity"
	CategoryRevenue               Category = "revenue"
	CategoryExpenses              Category = "expenses"
	CategoryCOGS                  Category = "cogs"
	CategoryUnmapped              Category = "unmapped"
)

// IsDebitNature reports whether the category's net balance is debit−credit
// (assets, expenses, COGS). Liability/equity/revenue buckets are credit−debit.
func (c Category) IsDebitNature() bool {
	switch c {
	case CategoryCurrentAssets, CategoryNonCurrentAssets, CategoryExpenses, CategoryCOGS:
		return true
	}
	return false
}

// ColumnMapping locates the meaningful columns inside a raw grid.
// CodeCol is -1 when no code column could be trusted; per-row recovery
// takes over in the extractor.
type ColumnMapping struct {
	CodeCol      int `json:"codeCol"`
	NameCol      int `json:"nameCol"`
	DebitCol     int `json:"debitCol"`
	CreditCol    int `json:"creditCol"`
	HeaderRow    int `json:"headerRow"`
	FirstDataRow int `json:"firstDataRow"`
}

// TrialBalanceRow is one extracted, classified account line.
type TrialBalanceRow struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	MappedCategory Category        `json:"mappedCategory"`
	IsAutoMapped   bool            `json:"isAutoMapped"`
}

// NetBalance returns the row's contribution in its category's sign convention.
func (r TrialBalanceRow) NetBalance() decimal.Decimal {
	if r.MappedCategory.IsDebitNature() {
		return r.Debit.Sub(r.Credit)
	}
	return r.Credit.Sub(r.Debit)
}

// ValidationResult reports arithmetic balance and data-quality findings.
type ValidationResult struct {
	IsBalanced  bool            `json:"isBalanced"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Difference  decimal.Decimal `json:"difference"`
	Warnings    []string        `json:"warnings"`
	Errors      []string        `json:"errors"`
}

// Severity grades an audit finding.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// AutoFix is a pure row transformation offered by a scenario finding.
// It never mutates its input.
type AutoFix func(rows []TrialBalanceRow) []TrialBalanceRow

// ScenarioResult is one finding from the audit battery. AutoFix is nil when
// no automatic remediation exists; it is not serialized — callers apply
// fixes by ID through the audit engine.
type ScenarioResult struct {
	ID               string   `json:"id"`
	Category         string   `json:"category"`
	Severity         Severity `json:"severity"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	AffectedAccounts []string `json:"affectedAccountCodes"`
	AutoFixAvailable bool     `json:"autoFixAvailable"`
	AutoFix          AutoFix  `json:"-"`
}

// ScenarioSummary is the scored audit report.
type ScenarioSummary struct {
	Results      []ScenarioResult `json:"results"`
	OverallScore int              `json:"overallScore"`
}

// ImportedTrialBalance is the output contract of one import.
type ImportedTrialBalance struct {
	Rows       []TrialBalanceRow `json:"rows"`
	Validation ValidationResult  `json:"validation"`
	FileName   string            `json:"fileName"`
	ImportDate time.Time         `json:"importDate"`
}

// StatementLine is one rendered account line inside a statement section.
type StatementLine struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// BalanceSheet groups classified rows into the statement of financial position.
type BalanceSheet struct {
	CurrentAssets             []StatementLine `json:"currentAssets"`
	NonCurrentAssets          []StatementLine `json:"nonCurrentAssets"`
	CurrentLiabilities        []StatementLine `json:"currentLiabilities"`
	NonCurrentLiabilities     []StatementLine `json:"nonCurrentLiabilities"`
	Equity                    []StatementLine `json:"equity"`
	TotalCurrentAssets        decimal.Decimal `json:"totalCurrentAssets"`
	TotalNonCurrentAssets     decimal.Decimal `json:"totalNonCurrentAssets"`
	TotalAssets               decimal.Decimal `json:"totalAssets"`
	TotalCurrentLiabilities   decimal.Decimal `json:"totalCurrentLiabilities"`
	TotalNonCurrentLiabs      decimal.Decimal `json:"totalNonCurrentLiabilities"`
	TotalLiabilities          decimal.Decimal `json:"totalLiabilities"`
	TotalEquity               decimal.Decimal `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
}

// IncomeStatement is the P&L derived from revenue/COGS/expense rows.
type IncomeStatement struct {
	Revenue           []StatementLine `json:"revenue"`
	CostOfGoodsSold   []StatementLine `json:"costOfGoodsSold"`
	Expenses          []StatementLine `json:"expenses"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalCOGS         decimal.Decimal `json:"totalCogs"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	ProfitBeforeZakat decimal.Decimal `json:"profitBeforeZakat"`
	Zakat             decimal.Decimal `json:"zakat"`
	NetIncome         decimal.Decimal `json:"netIncome"`
}

// EquityStatement is the roll-forward of owners' equity for the period.
type EquityStatement struct {
	OpeningEquity decimal.Decimal `json:"openingEquity"`
	NetIncome     decimal.Decimal `json:"netIncome"`
	ClosingEquity decimal.Decimal `json:"closingEquity"`
}

// CashFlowStatement is the indirect-method skeleton bucketed from the
// classified balances. It is a derivation aid, not a full cash-flow workup.
type CashFlowStatement struct {
	NetIncome           decimal.Decimal `json:"netIncome"`
	OperatingActivities decimal.Decimal `json:"operatingActivities"`
	InvestingActivities decimal.Decimal `json:"investingActivities"`
	FinancingActivities decimal.Decimal `json:"financingActivities"`
	NetChangeInCash     decimal.Decimal `json:"netChangeInCash"`
}

// FootnoteSchedule is the per-category account detail behind a statement line.
type FootnoteSchedule struct {
	Category Category        `json:"category"`
	Title    string          `json:"title"`
	Lines    []StatementLine `json:"lines"`
	Total    decimal.Decimal `json:"total"`
}

// ZakatComputation is the statutory wealth-tax base and charge.
// Base = max(0, equity + profit before zakat − non-current assets),
// zakat = base × 2.5%.
type ZakatComputation struct {
	TotalEquity           decimal.Decimal `json:"totalEquity"`
	ProfitBeforeZakat     decimal.Decimal `json:"profitBeforeZakat"`
	TotalNonCurrentAssets decimal.Decimal `json:"totalNonCurrentAssets"`
	ZakatBase             decimal.Decimal `json:"zakatBase"`
	Zakat                 decimal.Decimal `json:"zakat"`
}

// FinancialStatements is the read-only aggregate derived from a finalized
// row set plus company metadata. Recomputed on request, never stored.
type FinancialStatements struct {
	CompanyName     string             `json:"companyName"`
	ReportDate      string             `json:"reportDate"`
	BalanceSheet    BalanceSheet       `json:"balanceSheet"`
	IncomeStatement IncomeStatement    `json:"incomeStatement"`
	EquityStatement EquityStatement    `json:"equityStatement"`
	CashFlow        CashFlowStatement  `json:"cashFlow"`
	Footnotes       []FootnoteSchedule `json:"footnotes"`
	Zakat           ZakatComputation   `json:"zakat"`
}
