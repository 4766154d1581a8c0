package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrInvalidCourseID: http.StatusBadRequest,

	validators.ErrValidationFailed: http.StatusBadRequest,

	service.ErrEmptyRequestBody:    http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUserNotFound:        http.StatusUnauthorized,
	service.ErrWrongPassword:       http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:   http.StatusBadRequest,
	store.ErrMissingRequiredField: http.StatusBadRequest,
	store.ErrCourseNotFound:       http.StatusNotFound,
	store.ErrCourseNotOwned:       http.StatusForbidden,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// statusFromError returns the status mapped to the first sentinel err
// matches, together with that sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeServiceError renders err as a JSON error body. Client errors carry
// the sentinel's text (and the problem list of a validation error); server
// errors are logged and answered with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)
	if status >= http.StatusInternalServerError || target == nil {
		log.Err(err).Str("func", "writeServiceError").Msg("unexpected error while handling request")
		utils.WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		utils.WriteError(w, status, validators.ErrValidationFailed.Error(), verr.Problems...)
		return
	}

	utils.WriteError(w, status, target.Error())
}
