package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lendtrack/backend/internal/models"
	"github.com/lendtrack/backend/internal/services"
)

type FundHandler struct {
	service services.FundService
}

func NewFundHandler(service services.FundService) *FundHandler {
	return &FundHandler{service: service}
}

// HandleFunds handles GET (list) and POST (create) on /api/funds. The
// stored balance on the response reflects the recompute done at insert.
func (h *FundHandler) HandleFunds(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		funds, err := h.service.ListFunds(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, funds)
	case http.MethodPost:
		var fund models.Fund
		if err := json.NewDecoder(r.Body).Decode(&fund); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := h.service.CreateFund(r.Context(), &fund); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, &fund)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
