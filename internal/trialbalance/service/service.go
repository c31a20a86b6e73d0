package service

import (
	"errors"
	"time"

	"trialbalance-service/internal/trialbalance/model"
)

// Terminal import failures. Everything else (imbalance, unmapped accounts,
// bad cells) is a non-terminal finding inside the returned result.
var (
	// ErrStructureNotDetected: no strategy could locate a plausible
	// code/name/debit/credit layout.
	ErrStructureNotDetected = errors.New(
		"تعذر التعرف على هيكل الملف: لم يتم العثور على أعمدة رقم الحساب/اسم الحساب/مدين/دائن")
	// ErrNoDataRows: a mapping was found but no account rows survived filtering.
	ErrNoDataRows = errors.New(
		"الملف لا يحتوي على أي سطور حسابات صالحة بعد تخطي العناوين والإجماليات")
)

// Import runs the full pipeline on a raw grid: structure detection, row
// extraction with inline classification, and balance validation. The grid is
// not needed afterwards and may be discarded by the caller.
func Import(grid [][]string, fileName string) (model.ImportedTrialBalance, error) {
	mapping := DetectStructure(grid)
	if mapping == nil {
		return model.ImportedTrialBalance{}, ErrStructureNotDetected
	}

	rows := ExtractRows(grid, *mapping)
	if len(rows) == 0 {
		return model.ImportedTrialBalance{}, ErrNoDataRows
	}

	return model.ImportedTrialBalance{
		Rows:       rows,
		Validation: Validate(rows),
		FileName:   fileName,
		ImportDate: time.Now().UTC(),
	}, nil
}
