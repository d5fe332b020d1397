package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lendtrack/backend/internal/models"
	"github.com/lendtrack/backend/internal/services"
)

type CollectionHandler struct {
	service services.CollectionService
}

func NewCollectionHandler(service services.CollectionService) *CollectionHandler {
	return &CollectionHandler{service: service}
}

// HandleCollections handles GET (list with filters) and POST (create)
// on /api/collections.
func (h *CollectionHandler) HandleCollections(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		filter := &models.CollectionFilter{}
		if loanID := r.URL.Query().Get("loan_id"); loanID != "" {
			filter.LoanID = loanID
		}
		if startDate := r.URL.Query().Get("start_date"); startDate != "" {
			if date, err := time.Parse("2006-01-02", startDate); err == nil {
				filter.StartDate = &date
			}
		}
		if endDate := r.URL.Query().Get("end_date"); endDate != "" {
			if date, err := time.Parse("2006-01-02", endDate); err == nil {
				filter.EndDate = &date
			}
		}

		collections, err := h.service.ListCollections(r.Context(), filter)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, collections)
	case http.MethodPost:
		var collection models.Collection
		if err := json.NewDecoder(r.Body).Decode(&collection); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := h.service.CreateCollection(r.Context(), &collection); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, &collection)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleBulkCollection handles POST /api/loans/{id}/collections/bulk.
func (h *CollectionHandler) HandleBulkCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.BulkCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.LoanID = mux.Vars(r)["id"]

	collection, err := h.service.SubmitBulkCollection(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, collection)
}
