package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/go-chi/chi/v5"
)

const maxRequestBodySize = 1 << 20

// decodeJSONBody reads a JSON object from the request body into dst.
// An absent or empty body yields [service.ErrEmptyRequestBody], anything
// that is not a single JSON object of dst's shape yields [ErrInvalidJSON].
// Unknown fields are ignored.
func decodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return service.ErrEmptyRequestBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return service.ErrEmptyRequestBody
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if decoder.More() {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	return nil
}

// courseIDFromRequest parses the {id} URL parameter.
func courseIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	courseID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || courseID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCourseID, raw)
	}

	return courseID, nil
}
