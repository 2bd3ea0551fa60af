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

type ServiceHandler struct {
	Queries *coordinator.Query
	Mutator *coordinator.Mutator
}

func NewServiceHandler(queries *coordinator.Query, mutator *coordinator.Mutator) *ServiceHandler {
	return &ServiceHandler{
		Queries: queries,
		Mutator: mutator,
	}
}

func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Queries.Services(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if services == nil {
		services = []models.Service{}
	}
	utils.JSON(w, http.StatusOK, services)
}

// ActiveServices is the booking view: inactive services are excluded.
func (h *ServiceHandler) ActiveServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Queries.Services(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, coordinator.ActiveServices(services))
}

func (h *ServiceHandler) AddService(w http.ResponseWriter, r *http.Request) {
	var req models.AddServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.Mutator.AddService(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *ServiceHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid service id")
		return
	}

	var req models.SetServiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Mutator.SetServiceStatus(r.Context(), id, req.Active); err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
