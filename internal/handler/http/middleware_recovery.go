package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/utils"
)

// withRecovery turns a panic in a handler into a logged 500 response with a
// generic JSON body. http.ErrAbortHandler is re-raised so net/http can abort
// the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.withRecovery").
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic while handling request")

			if !rw.wroteHeader {
				utils.WriteError(rw, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			}
		}()

		next.ServeHTTP(rw, r)
	})
}
