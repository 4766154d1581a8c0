package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
)

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if courses == nil {
		courses = []models.Course{}
	}

	utils.WriteJSON(w, courses, http.StatusOK)
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	course, err := h.services.CourseService.GetCourse(r.Context(), courseID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, course, http.StatusOK)
}

// createCourse stores a course owned by the authenticated user and answers
// 201 with the new resource's location and no body. A userId in the body is
// not part of [models.CourseInput] and is therefore ignored.
func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoAuthenticatedUser)
		return
	}

	var input models.CourseInput
	if err := decodeJSONBody(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	course, err := h.services.CourseService.CreateCourse(r.Context(), owner, input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("course_id", course.ID).Int64("user_id", owner.UserID).Msg("course created")

	w.Header().Set("Location", "/api/courses/"+strconv.FormatInt(course.ID, 10))
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoAuthenticatedUser)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var input models.CourseInput
	if err = decodeJSONBody(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.CourseService.UpdateCourse(r.Context(), owner, courseID, input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoAuthenticatedUser)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.CourseService.DeleteCourse(r.Context(), owner, courseID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
