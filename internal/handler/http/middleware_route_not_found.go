package http

import (
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/utils"
)

const routeNotFoundMessage = "Route Not Found"

// methodNotAllowed is called by chi when a path exists but the method does
// not. Such requests are answered exactly like unknown routes, so the method
// set of a path is never revealed.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not registered for path")

	routeNotFound(w, r)
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, routeNotFoundMessage)
}
