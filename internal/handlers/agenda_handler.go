package handlers

import (
	"encoding/json"
	"net/http"

	"salon-backend/internal/coordinator"
	"salon-backend/internal/models"
	"salon-backend/internal/timeutil"
	"salon-backend/pkg/utils"
)

type AgendaHandler struct {
	Queries *coordinator.Query
	Mutator *coordinator.Mutator
}

func NewAgendaHandler(queries *coordinator.Query, mutator *coordinator.Mutator) *AgendaHandler {
	return &AgendaHandler{
		Queries: queries,
		Mutator: mutator,
	}
}

// ListAppointments returns the full snapshot, or the day view when ?date=
// (YYYY-MM-DD, salon timezone) is given.
func (h *AgendaHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.Queries.Appointments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if date := r.URL.Query().Get("date"); date != "" {
		dayStart, err := timeutil.ParseDay(date)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		utils.JSON(w, http.StatusOK, coordinator.AppointmentsOn(appointments, dayStart))
		return
	}

	if appointments == nil {
		appointments = []models.Appointment{}
	}
	utils.JSON(w, http.StatusOK, appointments)
}

func (h *AgendaHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.Mutator.CreateAppointment(r.Context(), &req)
	if err != nil {
		// The appointment may exist even on error (visit registration is a
		// separate backend call); include the id when it does.
		if id != 0 {
			utils.JSON(w, http.StatusBadGateway, map[string]interface{}{
				"id":    id,
				"error": err.Error(),
			})
			return
		}
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]int64{"id": id})
}
