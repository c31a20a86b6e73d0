package service

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var rxKeepAmount = regexp.MustCompile(`[^0-9.\-]`)

// strips NBSP/NNBSP/thin spaces and maps Arabic-Indic digits before parsing
var cellReplacer = strings.NewReplacer(
	"\u00A0", "", "\u202F", "", "\u2009", "", " ", "", "\t", "",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"٫", ".", "٬", "",
)

// ParseAmount turns a raw cell into a decimal amount. Empty or garbage cells
// yield zero — one bad cell must not abort a multi-hundred-row import.
// "(1,234.50)" parses as -1234.50.
func ParseAmount(cell string) decimal.Decimal {
	s := strings.TrimSpace(cell)
	if s == "" {
		return decimal.Zero
	}
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	s = cellReplacer.Replace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = rxKeepAmount.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if neg {
		d = d.Neg()
	}
	return d
}

// LooksLikeAccountCode reports whether text is a pure digit string, or digits
// interspersed with '.', '-' or '/' (e.g. "1.1.2"). Empty is false.
func LooksLikeAccountCode(text string) bool {
	s := strings.TrimSpace(text)
	if s == "" {
		return false
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == '-' || r == '/':
		default:
			return false
		}
	}
	return digits > 0
}

// LooksLikeAccountName reports whether text is plausibly an account label:
// at least one Arabic-range rune, or two consecutive Latin letters, length >= 2.
func LooksLikeAccountName(text string) bool {
	s := strings.TrimSpace(text)
	if len([]rune(s)) < 2 {
		return false
	}
	prevLatin := false
	for _, r := range s {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
		latin := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if latin && prevLatin {
			return true
		}
		prevLatin = latin
	}
	return false
}

// isNumericCell reports whether a cell parses as a number and consists of
// numeric-looking characters only (no letters). Used by pattern auto-detection.
func isNumericCell(cell string) bool {
	s := strings.TrimSpace(cell)
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}
	s = cellReplacer.Replace(s)
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != ',' && r != '-' {
			return false
		}
	}
	_, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	return err == nil
}
