package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"salon-backend/internal/coordinator"
	"salon-backend/internal/models"
	"salon-backend/pkg/utils"
)

type InventoryHandler struct {
	Queries *coordinator.Query
	Mutator *coordinator.Mutator
}

func NewInventoryHandler(queries *coordinator.Query, mutator *coordinator.Mutator) *InventoryHandler {
	return &InventoryHandler{
		Queries: queries,
		Mutator: mutator,
	}
}

func (h *InventoryHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Queries.Products(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	utils.JSON(w, http.StatusOK, products)
}

// LowStock returns the derived low-stock view, recomputed on each read.
func (h *InventoryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.Queries.Products(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, coordinator.LowStock(products))
}

func (h *InventoryHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req models.AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.Mutator.AddProduct(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// AdjustQuantity applies a signed stock delta. Adjustments that would go
// below zero are rejected before the backend is called.
func (h *InventoryHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req models.AdjustQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	newQuantity, err := h.Mutator.AdjustQuantity(r.Context(), id, req.Delta)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]float64{"quantity": newQuantity})
}
