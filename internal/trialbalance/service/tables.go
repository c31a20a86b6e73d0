package service

import "trialbalance-service/internal/trialbalance/model"

// Header vocabulary. Matching is exact first, then substring in either
// direction, against a lowercased, space-collapsed cell.

var nameHeaderVocab = []string{
	"اسم الحساب", "أسم الحساب", "البيان", "الحساب", "اسم",
	"account name", "account", "name", "description",
}

var codeHeaderVocab = []string{
	"رقم الحساب", "رمز الحساب", "الرمز", "رقم", "كود",
	"account code", "account no", "code", "no.",
}

var debitHeaderVocab = []string{"مدين", "debit", "dr"}

var creditHeaderVocab = []string{"دائن", "credit", "cr"}

// Parent-header keywords marking the closing/net balance column group in
// two-tier layouts (opening / movement / closing triplets).
var closingHeaderVocab = []string{
	"رصيد نهاية", "الرصيد النهائي", "الأرصدة الختامية", "رصيد اخر", "رصيد آخر",
	"صافي الرصيد", "closing", "ending balance", "net balance",
}

// Totals/subtotal markers: rows carrying these are aggregates, not accounts.
var totalsVocab = []string{
	"الإجمالي", "الاجمالي", "اجمالي", "إجمالي", "المجموع", "مجموع",
	"total", "grand total", "subtotal", "sub total",
}

// Workbook sheet names preferred when several sheets exist.
var sheetNameVocab = []string{"ميزان", "مراجعة", "trial balance", "trial_balance", "tb"}

// prefixRule maps a numeric account-code prefix to a category. The table is
// ordered most-specific-first: length-2 prefixes must precede the length-1
// prefixes they refine, or "13050" would fall through to the generic "1".
type prefixRule struct {
	Prefix   string
	Category model.Category
}

var prefixRules = []prefixRule{
	{"12", model.CategoryNonCurrentAssets},    // fixed assets
	{"13", model.CategoryCurrentAssets},       // inventory
	{"25", model.CategoryNonCurrentLiabilities},
	{"51", model.CategoryCOGS},
	{"1", model.CategoryCurrentAssets},
	{"2", model.CategoryCurrentLiabilities},
	{"3", model.CategoryEquity},
	{"4", model.CategoryRevenue},
	{"5", model.CategoryExpenses},
	{"6", model.CategoryExpenses},
}

// keywordRule matches any of Keywords as a substring of the account name.
// KnownPattern marks the high-confidence subset the audit engine re-tests
// independently of the classifier's verdict.
type keywordRule struct {
	Keywords     []string
	Category     model.Category
	KnownPattern bool
}

// Ordered: specific account families before the broad catch-alls of the same
// statement side. The bare "مصروف"/"expense" terms sit last so narrower
// revenue/COGS matches always win first.
var keywordRules = []keywordRule{
	// current assets
	{[]string{"نقد", "نقدية", "صندوق", "البنك", "بنك", "cash", "bank"}, model.CategoryCurrentAssets, true},
	{[]string{"عملاء", "مدينون", "ذمم مدينة", "مدينة", "receivable", "debtors"}, model.CategoryCurrentAssets, true},
	{[]string{"مخزون", "مخازن", "inventory", "stock"}, model.CategoryCurrentAssets, true},
	{[]string{"مصروفات مقدمة", "مقدما", "مقدماً", "prepaid"}, model.CategoryCurrentAssets, false},
	// non-current assets
	{[]string{"أصول ثابتة", "اصول ثابتة", "ممتلكات", "معدات", "آلات", "سيارات", "مباني", "أراضي", "اراضي", "أثاث", "اثاث",
		"fixed asset", "equipment", "machinery", "vehicle", "property", "building", "land", "furniture"}, model.CategoryNonCurrentAssets, true},
	{[]string{"إهلاك", "اهلاك", "استهلاك", "depreciation", "amortization"}, model.CategoryNonCurrentAssets, false},
	// current liabilities
	{[]string{"موردون", "موردين", "دائنون", "ذمم دائنة", "دائنة", "supplier", "payable", "creditors", "vendors"}, model.CategoryCurrentLiabilities, true},
	{[]string{"مستحق", "مستحقات", "accrued", "accrual"}, model.CategoryCurrentLiabilities, false},
	{[]string{"ضريبة", "زكاة مستحقة", "vat", "tax payable"}, model.CategoryCurrentLiabilities, false},
	// non-current liabilities
	{[]string{"قرض طويل", "قروض طويلة", "التزامات طويلة", "long term loan", "long-term", "bonds payable"}, model.CategoryNonCurrentLiabilities, true},
	{[]string{"مكافأة نهاية الخدمة", "نهاية الخدمة", "end of service", "eosb"}, model.CategoryNonCurrentLiabilities, false},
	// equity
	{[]string{"رأس المال", "رأس مال", "راس المال", "راس مال", "capital"}, model.CategoryEquity, true},
	{[]string{"حقوق الملكية", "حقوق الشركاء", "جاري الشريك", "جاري الشركاء", "owner", "partner current"}, model.CategoryEquity, true},
	{[]string{"أرباح مبقاة", "ارباح مبقاة", "أرباح مرحلة", "ارباح مرحلة", "احتياطي", "retained earnings", "reserve"}, model.CategoryEquity, false},
	// cost of goods sold — must precede revenue: "تكلفة المبيعات" and
	// "cost of sales" both contain a bare revenue keyword
	{[]string{"تكلفة البضاعة", "تكلفة المبيعات", "تكلفة الإيرادات", "مشتريات", "cost of goods", "cost of sales", "cogs", "purchases"}, model.CategoryCOGS, true},
	// revenue
	{[]string{"مبيعات", "إيراد", "ايراد", "إيرادات", "ايرادات", "sales", "revenue", "income"}, model.CategoryRevenue, true},
	// expenses — narrow families first, bare catch-alls last
	{[]string{"رواتب", "أجور", "اجور", "salaries", "wages", "payroll"}, model.CategoryExpenses, true},
	{[]string{"إيجار", "ايجار", "rent"}, model.CategoryExpenses, false},
	{[]string{"كهرباء", "مياه", "هاتف", "اتصالات", "utilities", "electricity", "telephone"}, model.CategoryExpenses, false},
	{[]string{"صيانة", "maintenance", "repairs"}, model.CategoryExpenses, false},
	{[]string{"تسويق", "إعلان", "اعلان", "دعاية", "marketing", "advertis"}, model.CategoryExpenses, false},
	{[]string{"مصروف", "مصاريف", "expense"}, model.CategoryExpenses, false},
}

// literalFallbacks map bare category labels to a coarse default. This is a
// low-confidence guess; such rows are reported as needing human review.
var literalFallbacks = map[string]model.Category{
	"الأصول":      model.CategoryCurrentAssets,
	"الاصول":      model.CategoryCurrentAssets,
	"أصول":        model.CategoryCurrentAssets,
	"اصول":        model.CategoryCurrentAssets,
	"assets":      model.CategoryCurrentAssets,
	"المطلوبات":   model.CategoryCurrentLiabilities,
	"الالتزامات":  model.CategoryCurrentLiabilities,
	"الخصوم":      model.CategoryCurrentLiabilities,
	"خصوم":        model.CategoryCurrentLiabilities,
	"liabilities": model.CategoryCurrentLiabilities,
}

// knownPatterns returns the high-confidence subset of keywordRules shared by
// the classifier and the audit conflict check, so the two can never drift.
func knownPatterns() []keywordRule {
	out := make([]keywordRule, 0, len(keywordRules))
	for _, r := range keywordRules {
		if r.KnownPattern {
			out = append(out, r)
		}
	}
	return out
}
