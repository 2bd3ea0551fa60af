package handlers

import (
	"net/http"

	"salon-backend/internal/coordinator"
	"salon-backend/internal/models"
	"salon-backend/pkg/utils"
)

type PortfolioHandler struct {
	Queries *coordinator.Query
}

func NewPortfolioHandler(queries *coordinator.Query) *PortfolioHandler {
	return &PortfolioHandler{Queries: queries}
}

// ListByTag returns portfolio photos for one service tag.
func (h *PortfolioHandler) ListByTag(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		utils.Error(w, http.StatusBadRequest, "tag is required")
		return
	}

	photos, err := h.Queries.PortfolioByTag(r.Context(), tag)
	if err != nil {
		writeError(w, err)
		return
	}

	if photos == nil {
		photos = []models.PortfolioPhoto{}
	}
	utils.JSON(w, http.StatusOK, photos)
}
