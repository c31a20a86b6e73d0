package service

import (
	"strings"

	"trialbalance-service/internal/trialbalance/model"
)

const (
	// how deep into the grid we look for a header row or a data pattern
	maxHeaderScan = 15
	// code-column validation: probe depth and minimum code-shaped hits
	codeProbeRows = 10
	codeProbeMin  = 2
	// pattern auto-detection: confirmation depth and minimum repeats
	patternProbeRows = 4
	patternProbeMin  = 2
)

// detectStrategy tries one way of locating the column layout.
// Returns nil when the grid does not fit the strategy's shape.
type detectStrategy func(grid [][]string) *model.ColumnMapping

// tried in order; first hit wins
var detectStrategies = []detectStrategy{
	detectByHeaderVocab,
	detectByPattern,
}

// DetectStructure locates the account code/name and the authoritative
// debit/credit columns in a raw grid, or returns nil when no strategy fits.
func DetectStructure(grid [][]string) *model.ColumnMapping {
	for _, strat := range detectStrategies {
		if m := strat(grid); m != nil {
			return m
		}
	}
	return nil
}

// ── strategy 1: header vocabulary ────────────────────────────────────────────

// detectByHeaderVocab scans the first rows for a cell matching the account
// name vocabulary, then resolves debit/credit pairs on the same row or one
// row below (two-tier merged headers).
func detectByHeaderVocab(grid [][]string) *model.ColumnMapping {
	limit := len(grid)
	if limit > maxHeaderScan {
		limit = maxHeaderScan
	}
	for r := 0; r < limit; r++ {
		nameCol := findVocabCol(grid[r], nameHeaderVocab)
		if nameCol < 0 {
			continue
		}

		subRow := r
		debitCols := findVocabCols(grid[r], debitHeaderVocab)
		creditCols := findVocabCols(grid[r], creditHeaderVocab)
		if (len(debitCols) == 0 || len(creditCols) == 0) && r+1 < len(grid) {
			// sub-labels may sit one row under a merged super-header
			debitCols = findVocabCols(grid[r+1], debitHeaderVocab)
			creditCols = findVocabCols(grid[r+1], creditHeaderVocab)
			subRow = r + 1
		}
		if len(debitCols) == 0 || len(creditCols) == 0 {
			continue
		}

		debitCol := resolvePairCol(debitCols)
		creditCol := resolvePairCol(creditCols)
		if c, ok := closingOverride(grid, r, subRow, debitCols, creditCols); ok {
			debitCol, creditCol = c[0], c[1]
		}
		if nameCol == debitCol || nameCol == creditCol || debitCol == creditCol {
			continue
		}

		firstData := subRow + 1
		codeCol := resolveCodeCol(grid, grid[r], nameCol, debitCol, creditCol, firstData)

		return &model.ColumnMapping{
			CodeCol:      codeCol,
			NameCol:      nameCol,
			DebitCol:     debitCol,
			CreditCol:    creditCol,
			HeaderRow:    r,
			FirstDataRow: firstData,
		}
	}
	return nil
}

// resolvePairCol picks the authoritative column when a header row carries
// several debit (or credit) columns: opening/movement/closing triplets use
// the last, double layouts the second, else the only one. Layouts with more
// pairs than anticipated also take the last.
func resolvePairCol(cols []int) int {
	switch {
	case len(cols) >= 3:
		return cols[len(cols)-1]
	case len(cols) == 2:
		return cols[1]
	default:
		return cols[0]
	}
}

// closingOverride prefers the debit/credit columns sitting at or after a
// "closing balance" keyword on a parent header row above the sub-labels.
func closingOverride(grid [][]string, headerRow, subRow int, debitCols, creditCols []int) ([2]int, bool) {
	for r := subRow - 1; r >= 0 && r >= headerRow-1; r-- {
		col := findVocabCol(grid[r], closingHeaderVocab)
		if col < 0 {
			continue
		}
		d := firstAtOrAfter(debitCols, col)
		c := firstAtOrAfter(creditCols, col)
		if d >= 0 && c >= 0 && d != c {
			return [2]int{d, c}, true
		}
	}
	return [2]int{}, false
}

func firstAtOrAfter(cols []int, min int) int {
	for _, c := range cols {
		if c >= min {
			return c
		}
	}
	return -1
}

// resolveCodeCol resolves the account-code column from the header vocabulary
// and validates it against the data underneath: a header can say "code" over
// a column that holds no code-shaped values (merged layouts shift cells), in
// which case the widest code-shaped data column wins instead. Returns -1 when
// nothing qualifies; the extractor then recovers codes per row.
func resolveCodeCol(grid [][]string, headerRow []string, nameCol, debitCol, creditCol, firstData int) int {
	col := findVocabCol(headerRow, codeHeaderVocab)
	if col >= 0 && col != nameCol && col != debitCol && col != creditCol {
		if countCodeShaped(grid, col, firstData) >= codeProbeMin {
			return col
		}
	}
	// header lied or was absent: scan the remaining columns of the data rows
	width := 0
	for r := firstData; r < len(grid); r++ {
		if len(grid[r]) > width {
			width = len(grid[r])
		}
	}
	best, bestCount := -1, 0
	for c := 0; c < width; c++ {
		if c == nameCol || c == debitCol || c == creditCol {
			continue
		}
		if n := countCodeShaped(grid, c, firstData); n > bestCount {
			best, bestCount = c, n
		}
	}
	if bestCount >= codeProbeMin {
		return best
	}
	return -1
}

func countCodeShaped(grid [][]string, col, firstData int) int {
	count := 0
	for r := firstData; r < len(grid) && r < firstData+codeProbeRows; r++ {
		if col < len(grid[r]) && LooksLikeAccountCode(grid[r][col]) {
			count++
		}
	}
	return count
}

// ── strategy 2: pattern auto-detection ───────────────────────────────────────

// detectByPattern handles grids with no recognizable header text: it looks
// for a repeating code + name + at-least-two-numeric-columns row shape and
// takes the last two numeric columns as debit/credit.
func detectByPattern(grid [][]string) *model.ColumnMapping {
	limit := len(grid)
	if limit > maxHeaderScan {
		limit = maxHeaderScan
	}
	for start := 0; start < limit; start++ {
		codeCol, nameCol, numeric := rowPattern(grid[start])
		if codeCol < 0 || nameCol < 0 || len(numeric) < 2 {
			continue
		}

		// the shape must repeat below before we trust it
		confirm := 0
		for r := start + 1; r < len(grid) && r <= start+patternProbeRows; r++ {
			row := grid[r]
			if codeCol < len(row) && nameCol < len(row) &&
				LooksLikeAccountCode(row[codeCol]) && LooksLikeAccountName(row[nameCol]) {
				confirm++
			}
		}
		if confirm < patternProbeMin {
			continue
		}

		return &model.ColumnMapping{
			CodeCol:      codeCol,
			NameCol:      nameCol,
			DebitCol:     numeric[len(numeric)-2],
			CreditCol:    numeric[len(numeric)-1],
			HeaderRow:    start - 1, // no real header; -1 when data starts at row 0
			FirstDataRow: start,
		}
	}
	return nil
}

// rowPattern decomposes one row into a code column, a name column (length
// > 3), and the ordered numeric columns excluding both.
func rowPattern(row []string) (codeCol, nameCol int, numeric []int) {
	codeCol, nameCol = -1, -1
	for c, cell := range row {
		if codeCol < 0 && LooksLikeAccountCode(cell) {
			codeCol = c
			continue
		}
		if nameCol < 0 && len([]rune(strings.TrimSpace(cell))) > 3 && LooksLikeAccountName(cell) {
			nameCol = c
		}
	}
	if codeCol < 0 || nameCol < 0 {
		return codeCol, nameCol, nil
	}
	for c, cell := range row {
		if c == codeCol || c == nameCol {
			continue
		}
		if isNumericCell(cell) {
			numeric = append(numeric, c)
		}
	}
	return codeCol, nameCol, numeric
}

// ── header cell matching ─────────────────────────────────────────────────────

func normHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// findVocabCol returns the first column whose cell matches the vocabulary:
// exact match preferred, substring in either direction as fallback.
func findVocabCol(row []string, vocab []string) int {
	for c, cell := range row {
		n := normHeader(cell)
		if n == "" {
			continue
		}
		for _, v := range vocab {
			if n == v {
				return c
			}
		}
	}
	for c, cell := range row {
		n := normHeader(cell)
		if n == "" {
			continue
		}
		for _, v := range vocab {
			// short tokens ("dr", "cr") stay exact-only or they match everywhere
			if len(v) > 2 && (strings.Contains(n, v) || strings.Contains(v, n)) {
				return c
			}
		}
	}
	return -1
}

// findVocabCols returns every matching column, in order. Duplicated
// debit/credit pairs (opening/movement/closing) all get recorded.
func findVocabCols(row []string, vocab []string) []int {
	var cols []int
	for c, cell := range row {
		n := normHeader(cell)
		if n == "" {
			continue
		}
		for _, v := range vocab {
			if n == v || (len(v) > 2 && strings.Contains(n, v)) {
				cols = append(cols, c)
				break
			}
		}
	}
	return cols
}
