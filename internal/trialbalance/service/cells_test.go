package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "0.00"},
		{"   ", "0.00"},
		{"1000", "1000.00"},
		{"1,234.50", "1234.50"},
		{"(1,234.50)", "-1234.50"},
		{"-500", "-500.00"},
		{"1 234,50 SAR", "123450.00"}, // comma is a thousands separator here
		{"١٢٣", "123.00"},            // Arabic-Indic digits
		{"abc", "0.00"},
		{"-", "0.00"},
		{"12.5%", "12.50"},
		{"SAR 99.90", "99.90"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseAmount(c.in).StringFixed(2), "input %q", c.in)
	}
}

func TestLooksLikeAccountCode(t *testing.T) {
	assert.True(t, LooksLikeAccountCode("1101"))
	assert.True(t, LooksLikeAccountCode("1.1.2"))
	assert.True(t, LooksLikeAccountCode("12-30/5"))
	assert.False(t, LooksLikeAccountCode(""))
	assert.False(t, LooksLikeAccountCode("..."))
	assert.False(t, LooksLikeAccountCode("A101"))
	assert.False(t, LooksLikeAccountCode("نقدية"))
}

func TestLooksLikeAccountName(t *testing.T) {
	assert.True(t, LooksLikeAccountName("نقدية بالصندوق"))
	assert.True(t, LooksLikeAccountName("Cash on hand"))
	assert.False(t, LooksLikeAccountName("a"))
	assert.False(t, LooksLikeAccountName("1101"))
	assert.False(t, LooksLikeAccountName("1-2-3"))
	assert.False(t, LooksLikeAccountName(""))
}
