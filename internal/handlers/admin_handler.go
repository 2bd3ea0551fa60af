package handlers

import (
	"encoding/json"
	"net/http"

	"salon-backend/internal/coordinator"
	"salon-backend/internal/models"
	"salon-backend/pkg/utils"
)

type AdminHandler struct {
	Mutator *coordinator.Mutator
}

func NewAdminHandler(mutator *coordinator.Mutator) *AdminHandler {
	return &AdminHandler{Mutator: mutator}
}

// UpdateCredentials rotates the admin username/password on the backend.
func (h *AdminHandler) UpdateCredentials(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Mutator.UpdateAdminCredentials(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// AssignRole grants or revokes a role on the backend.
func (h *AdminHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	var req models.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Mutator.AssignRole(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "assigned"})
}
