package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"salon-backend/internal/coordinator"
	"salon-backend/internal/models"
	"salon-backend/internal/timeutil"
	"salon-backend/pkg/utils"
)

type FinanceHandler struct {
	Queries *coordinator.Query
	Mutator *coordinator.Mutator
}

func NewFinanceHandler(queries *coordinator.Query, mutator *coordinator.Mutator) *FinanceHandler {
	return &FinanceHandler{
		Queries: queries,
		Mutator: mutator,
	}
}

func (h *FinanceHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.Queries.Transactions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}
	utils.JSON(w, http.StatusOK, transactions)
}

func (h *FinanceHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.Mutator.AddTransaction(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *FinanceHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	var req models.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Mutator.UpdateTransaction(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *FinanceHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := h.Mutator.DeleteTransaction(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// MonthlyReport returns one (month, income, expense) row per calendar month
// with at least one transaction, in month order. Defaults to the current
// year in the salon timezone.
func (h *FinanceHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	year := timeutil.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		n, err := strconv.Atoi(yearStr)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = n
	}

	aggregates, err := h.Queries.MonthlyAggregates(r.Context(), year)
	if err != nil {
		writeError(w, err)
		return
	}

	if aggregates == nil {
		aggregates = []models.MonthlyAggregate{}
	}
	utils.JSON(w, http.StatusOK, aggregates)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
