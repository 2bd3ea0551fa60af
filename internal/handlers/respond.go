package handlers

import (
	"net/http"

	"salon-backend/internal/salonerr"
	"salon-backend/pkg/utils"
)

// writeError maps the error taxonomy onto HTTP statuses. Remote failures
// surface as 502 so the View can tell a backend outage apart from a bug in
// this gateway.
func writeError(w http.ResponseWriter, err error) {
	switch salonerr.KindOf(err) {
	case salonerr.KindValidationRejected:
		utils.Error(w, http.StatusBadRequest, err.Error())
	case salonerr.KindAuthDenied:
		utils.Error(w, http.StatusUnauthorized, err.Error())
	case salonerr.KindPermissionMismatch:
		utils.JSON(w, http.StatusUnauthorized, map[string]interface{}{
			"error":   err.Error(),
			"relogin": true,
		})
	case salonerr.KindVerificationInFlight:
		utils.Error(w, http.StatusConflict, err.Error())
	case salonerr.KindRemoteCallFailed:
		utils.Error(w, http.StatusBadGateway, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
