package handlers

import (
	"net/http"
	"time"

	"github.com/lendtrack/backend/internal/services"
)

type ReportingHandler struct {
	service services.ReportingService
}

func NewReportingHandler(service services.ReportingService) *ReportingHandler {
	return &ReportingHandler{service: service}
}

// HandleLedger handles GET /api/reports/ledger.
func (h *ReportingHandler) HandleLedger(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rows, err := h.service.GetLedger(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// HandleSummary handles GET /api/reports/summary?as_of=YYYY-MM-DD. The
// as_of date defaults to today.
func (h *ReportingHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	asOf := time.Now()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "Invalid as_of date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		asOf = parsed
	}

	report, err := h.service.GetAggregateReport(r.Context(), asOf)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
