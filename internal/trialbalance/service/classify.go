package service

import (
	"strings"

	"trialbalance-service/internal/trialbalance/model"
)

// Classify assigns a category to an account line. Pure and total: identical
// input always yields the same category, and every input gets one
// (CategoryUnmapped when nothing matches).
//
// Cascade, first match wins:
//  1. numeric-prefix rules, only when the code starts with a digit;
//  2. ordered keyword rules against the name;
//  3. literal bare-label fallbacks;
//  4. unmapped.
func Classify(code, name string) model.Category {
	if cat, ok := classifyByPrefix(code); ok {
		return cat
	}
	if cat, ok := classifyByKeyword(name); ok {
		return cat
	}
	if cat, ok := classifyByLiteral(name); ok {
		return cat
	}
	return model.CategoryUnmapped
}

// IsLiteralFallback reports whether the name classified only via the coarse
// bare-label fallback. Such mappings are low-confidence and must be flagged
// for human review rather than trusted like a prefix or keyword match.
func IsLiteralFallback(code, name string) bool {
	if _, ok := classifyByPrefix(code); ok {
		return false
	}
	if _, ok := classifyByKeyword(name); ok {
		return false
	}
	_, ok := classifyByLiteral(name)
	return ok
}

func classifyByPrefix(code string) (model.Category, bool) {
	c := strings.TrimSpace(code)
	if c == "" || c[0] < '0' || c[0] > '9' {
		return "", false
	}
	for _, r := range prefixRules {
		if strings.HasPrefix(c, r.Prefix) {
			return r.Category, true
		}
	}
	return "", false
}

func classifyByKeyword(name string) (model.Category, bool) {
	return matchKeywordRules(keywordRules, name)
}

func classifyByLiteral(name string) (model.Category, bool) {
	cat, ok := literalFallbacks[strings.ToLower(strings.TrimSpace(name))]
	return cat, ok
}

// matchKeywordRules scans an ordered rule table and returns the first rule
// whose keyword occurs as a substring of the lowercased name.
func matchKeywordRules(rules []keywordRule, name string) (model.Category, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return "", false
	}
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(n, kw) {
				return r.Category, true
			}
		}
	}
	return "", false
}
