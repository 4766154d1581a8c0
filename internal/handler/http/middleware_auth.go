package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/MKhiriev/go-courses-api/internal/utils"
)

const (
	accessDeniedMessage = "Access Denied"
	basicAuthChallenge  = `Basic realm="courses"`
)

// auth is an HTTP middleware that verifies HTTP Basic credentials.
//
// The username is the user's email address. On success the resolved user is
// stored in the request context via [utils.WithUser]; on any credential
// problem the request ends with 401 and the chain is not continued.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		emailAddress, password, ok := r.BasicAuth()
		if !ok {
			log.Warn().Msg("Auth header not found")
			denyAccess(w)
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), emailAddress, password)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrUserNotFound):
			log.Warn().Msgf("User not found for username: %s", emailAddress)
			denyAccess(w)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Warn().Msgf("Authentication failure for username: %s", emailAddress)
			denyAccess(w)
			return
		default:
			log.Err(err).Str("func", "*Handler.auth").Msg("error authenticating user")
			utils.WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
	})
}

func denyAccess(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", basicAuthChallenge)
	utils.WriteError(w, http.StatusUnauthorized, accessDeniedMessage)
}
