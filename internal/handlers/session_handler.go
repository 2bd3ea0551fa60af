package handlers

import (
	"encoding/json"
	"net/http"

	"salon-backend/internal/auth"
	"salon-backend/internal/models"
	"salon-backend/internal/session"
	"salon-backend/pkg/utils"
)

type SessionHandler struct {
	Gate       *session.Gate
	JWTManager *auth.JWTManager
}

func NewSessionHandler(gate *session.Gate, jwtManager *auth.JWTManager) *SessionHandler {
	return &SessionHandler{
		Gate:       gate,
		JWTManager: jwtManager,
	}
}

// Login submits credentials to the gate. On denial the View must clear its
// credential fields; the 401 makes that explicit.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}

	record, err := h.Gate.SubmitCredentials(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.JWTManager.GenerateToken(record.Role)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.JSON(w, http.StatusOK, models.LoginResponse{
		Token:   token,
		Session: record,
	})
}

// Logout clears the gate and the persisted record.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Gate.Clear()
	utils.JSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// Session returns the current gate view so the View can decide what to
// render before touching any privileged route.
func (h *SessionHandler) Session(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Gate.Session())
}
