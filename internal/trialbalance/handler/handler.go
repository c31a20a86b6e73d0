package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"trialbalance-service/internal/config"
	"trialbalance-service/internal/fileio"
	"trialbalance-service/internal/trialbalance/model"
	tbSvc "trialbalance-service/internal/trialbalance/service"
)

// importResponse is the /import payload: the imported trial balance plus the
// audit report the review UI renders.
type importResponse struct {
	model.ImportedTrialBalance
	Audit model.ScenarioSummary `json:"audit"`
}

// Import handles the trial-balance upload: multipart field "file" in,
// classified rows + validation + audit out.
func Import(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
			return
		}
		defer file.Close()

		grid, err := fileio.ReadGrid(file, header.Filename)
		if err != nil {
			log.Warn().Err(err).Str("file", header.Filename).Msg("read failed")
			writeError(w, http.StatusBadRequest, "failed to read file: "+err.Error())
			return
		}

		imported, err := tbSvc.Import(grid, header.Filename)
		if err != nil {
			// terminal pipeline failures carry a human-readable explanation
			// naming the minimum expected structure
			if errors.Is(err, tbSvc.ErrStructureNotDetected) || errors.Is(err, tbSvc.ErrNoDataRows) {
				log.Warn().Err(err).Str("file", header.Filename).Msg("import rejected")
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			log.Error().Err(err).Msg("import failed")
			writeError(w, http.StatusInternalServerError, "import failed")
			return
		}

		audit := tbSvc.Audit(imported.Rows)
		writeJSON(w, http.StatusOK, importResponse{
			ImportedTrialBalance: imported,
			Audit:                audit,
		})

		log.Info().
			Str("file", header.Filename).
			Int("rows", len(imported.Rows)).
			Bool("balanced", imported.Validation.IsBalanced).
			Int("audit_score", audit.OverallScore).
			Dur("elapsed", time.Since(start)).
			Msg("import done")
	}
}

// statementsRequest carries a finalized row set plus company metadata.
// ApplyFixes names audit findings whose auto-fix should run, in order,
// before the statements are generated.
type statementsRequest struct {
	Rows        []model.TrialBalanceRow `json:"rows"`
	CompanyName string                  `json:"companyName"`
	ReportDate  string                  `json:"reportDate"`
	ApplyFixes  []string                `json:"applyFixes"`
}

// Statements derives the financial statements from a posted row set.
func Statements(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)

		defer r.Body.Close()
		var req statementsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
			return
		}
		if len(req.Rows) == 0 {
			writeError(w, http.StatusBadRequest, "rows are required")
			return
		}

		rows := req.Rows
		if len(req.ApplyFixes) > 0 {
			// rebuild the fix registry for this row set, then apply by ID
			rows = tbSvc.ApplyFixes(rows, tbSvc.Audit(rows), req.ApplyFixes)
		}

		stmts := tbSvc.GenerateStatements(rows, req.CompanyName, req.ReportDate)
		writeJSON(w, http.StatusOK, stmts)

		log.Info().
			Int("rows", len(rows)).
			Int("fixes", len(req.ApplyFixes)).
			Msg("statements generated")
	}
}
