package http

import (
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
)

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoAuthenticatedUser)
		return
	}

	utils.WriteJSON(w, models.NewCurrentUser(user), http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSONBody(r, &user); err != nil {
		writeServiceError(w, r, err)
		return
	}
	// system-assigned
	user.UserID = 0

	registered, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", registered.UserID).Msg("user registered")

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}
