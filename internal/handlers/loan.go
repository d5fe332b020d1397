package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lendtrack/backend/internal/models"
	"github.com/lendtrack/backend/internal/services"
)

type LoanHandler struct {
	service services.LoanService
}

func NewLoanHandler(service services.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

// HandleLoans handles GET (list, optional ?status= filter) and POST
// (create) on /api/loans.
func (h *LoanHandler) HandleLoans(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		status := models.LoanStatus(r.URL.Query().Get("status"))
		loans, err := h.service.ListLoans(r.Context(), status)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, loans)
	case http.MethodPost:
		var loan models.Loan
		if err := json.NewDecoder(r.Body).Decode(&loan); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := h.service.CreateLoan(r.Context(), &loan); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, &loan)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleLoan handles GET, PUT and DELETE on /api/loans/{id}.
func (h *LoanHandler) HandleLoan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "Loan ID is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		loan, err := h.service.GetLoan(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, loan)
	case http.MethodPut:
		var loan models.Loan
		if err := json.NewDecoder(r.Body).Decode(&loan); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		loan.ID = id
		if err := h.service.UpdateLoan(r.Context(), &loan); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, &loan)
	case http.MethodDelete:
		if err := h.service.DeleteLoan(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleDisableLoan handles POST /api/loans/{id}/disable with a body of
// {"disabled": bool}.
func (h *LoanHandler) HandleDisableLoan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := mux.Vars(r)["id"]
	var body struct {
		Disabled bool `json:"disabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	loan, err := h.service.SetLoanDisabled(r.Context(), id, body.Disabled)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}
