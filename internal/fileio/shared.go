package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadGrid picks a parser by extension and returns the raw cell grid.
// No header interpretation happens here — locating the header inside the
// grid is the structure detector's job.
func ReadGrid(r io.Reader, filename string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	case ".csv", ".txt":
		return readCSV(r)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// sheetNameVocab marks sheets holding the trial balance in multi-sheet books.
var sheetNameVocab = []string{"ميزان", "مراجعة", "trial balance", "trial_balance", "tb"}

// preferredSheet ranks workbook sheets: a name carrying a trial-balance
// keyword wins, otherwise the first sheet.
func preferredSheet(names []string) int {
	for i, name := range names {
		n := strings.ToLower(strings.TrimSpace(name))
		for _, kw := range sheetNameVocab {
			if strings.Contains(n, kw) {
				return i
			}
		}
	}
	return 0
}

// normalizeCell trims whitespace and the control junk legacy .xls readers
// leak into cells.
func normalizeCell(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\t' {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
