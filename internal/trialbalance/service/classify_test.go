package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trialbalance-service/internal/trialbalance/model"
)

func TestClassify_PrefixRules(t *testing.T) {
	cases := []struct {
		code string
		want model.Category
	}{
		{"1101", model.CategoryCurrentAssets},
		{"12010", model.CategoryNonCurrentAssets},
		{"2101", model.CategoryCurrentLiabilities},
		{"2501", model.CategoryNonCurrentLiabilities},
		{"3101", model.CategoryEquity},
		{"4101", model.CategoryRevenue},
		{"5101", model.CategoryCOGS},
		{"5201", model.CategoryExpenses},
		{"6101", model.CategoryExpenses},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.code, ""), "code %s", c.code)
	}
}

// Inventory prefix "13" must win over the generic "1" rule.
func TestClassify_PrefixPrecedence(t *testing.T) {
	assert.Equal(t, model.CategoryCurrentAssets, Classify("13050", "مخزون قطع غيار"))
	// and the generic rule still applies where no specific prefix exists
	assert.Equal(t, model.CategoryCurrentAssets, Classify("19999", "حساب آخر"))
}

func TestClassify_KeywordRules(t *testing.T) {
	cases := []struct {
		name string
		want model.Category
	}{
		{"نقدية بالصندوق", model.CategoryCurrentAssets},
		{"بنك الرياض - جاري", model.CategoryCurrentAssets},
		{"عملاء محليون", model.CategoryCurrentAssets},
		{"سيارات وشاحنات", model.CategoryNonCurrentAssets},
		{"مجمع إهلاك المعدات", model.CategoryNonCurrentAssets},
		{"موردون خارجيون", model.CategoryCurrentLiabilities},
		{"قروض طويلة الأجل", model.CategoryNonCurrentLiabilities},
		{"رأس المال المدفوع", model.CategoryEquity},
		{"مبيعات محلية", model.CategoryRevenue},
		{"تكلفة البضاعة المباعة", model.CategoryCOGS},
		{"رواتب وأجور", model.CategoryExpenses},
		{"مصروفات متنوعة", model.CategoryExpenses},
		{"Accounts Receivable", model.CategoryCurrentAssets},
		{"Office Rent", model.CategoryExpenses},
	}
	for _, c := range cases {
		// non-numeric code keeps the prefix rules out of the way
		assert.Equal(t, c.want, Classify("N/A", c.name), "name %s", c.name)
	}
}

// COGS terms must not fall into the broad expense bucket even though both
// sit on the expense side of the income statement.
func TestClassify_COGSBeforeExpenses(t *testing.T) {
	assert.Equal(t, model.CategoryCOGS, Classify("", "تكلفة المبيعات"))
	assert.Equal(t, model.CategoryCOGS, Classify("", "مشتريات البضاعة"))
}

func TestClassify_LiteralFallback(t *testing.T) {
	assert.Equal(t, model.CategoryCurrentAssets, Classify("", "الأصول"))
	assert.Equal(t, model.CategoryCurrentLiabilities, Classify("", "المطلوبات"))

	// bare-label matches are low-confidence
	assert.True(t, IsLiteralFallback("", "الأصول"))
	assert.False(t, IsLiteralFallback("1101", "الأصول"))
	assert.False(t, IsLiteralFallback("", "نقدية بالصندوق"))
}

func TestClassify_Unmapped(t *testing.T) {
	assert.Equal(t, model.CategoryUnmapped, Classify("N/A", "Northwind Holdings"))
	assert.Equal(t, model.CategoryUnmapped, Classify("", ""))
}

// Classify is pure: identical input, identical output.
func TestClassify_Idempotent(t *testing.T) {
	first := Classify("13050", "مخزون")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify("13050", "مخزون"))
	}
}
