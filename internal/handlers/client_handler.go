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

type ClientHandler struct {
	Queries *coordinator.Query
	Mutator *coordinator.Mutator
}

func NewClientHandler(queries *coordinator.Query, mutator *coordinator.Mutator) *ClientHandler {
	return &ClientHandler{
		Queries: queries,
		Mutator: mutator,
	}
}

func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Queries.Clients(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	// Ensure we return empty array instead of null
	if clients == nil {
		clients = []models.Client{}
	}
	utils.JSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) AddClient(w http.ResponseWriter, r *http.Request) {
	var req models.AddClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.Mutator.AddClient(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *ClientHandler) UpdateLoyalty(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid client id")
		return
	}

	var req models.UpdateLoyaltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Mutator.UpdateLoyaltyPoints(r.Context(), id, req.Points); err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
