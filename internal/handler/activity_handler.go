package handler

import (
	"net/http"
	"net/url"
	"strings"

	"school-activities/internal/domain"
	"school-activities/internal/service"
	apperrors "school-activities/pkg/errors"
	"school-activities/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// ActivityHandler serves the activities API
type ActivityHandler struct {
	activityService service.ActivityService
	logger          *logger.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityService, logger *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		logger:          logger,
	}
}

// RegisterRoutes mounts the activity endpoints on r
func (h *ActivityHandler) RegisterRoutes(r chi.Router) {
	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Post("/{activityName}/signup", h.Signup)
		r.Delete("/{activityName}/unregister", h.Unregister)
		r.Post("/{activityName}/unregister", h.Unregister)
	})
}

// ListActivities handles GET /activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	data, err := h.activityService.ListActivitiesJSON(r.Context())
	if err != nil {
		respondError(w, err, h.logger)
		return
	}
	respondRawJSON(w, http.StatusOK, data)
}

// Signup handles POST /activities/{activityName}/signup?email=
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	req, err := parseSignupRequest(r)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	resp, err := h.activityService.Signup(r.Context(), req)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Unregister handles DELETE /activities/{activityName}/unregister?email=
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	req, err := parseSignupRequest(r)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	resp, err := h.activityService.Unregister(r.Context(), req)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// parseSignupRequest decodes the activity name path segment and reads the
// email from the query string or form body
func parseSignupRequest(r *http.Request) (domain.SignupRequest, error) {
	name := chi.URLParam(r, "activityName")

	// chi matches against RawPath when the path holds escapes such as %2F
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(name)
		if err != nil {
			return domain.SignupRequest{}, apperrors.NewValidationError("invalid activity name")
		}
		name = decoded
	}

	email := r.FormValue("email")
	if strings.TrimSpace(email) == "" {
		return domain.SignupRequest{}, apperrors.NewValidationError("email is required")
	}

	return domain.SignupRequest{Activity: name, Email: email}, nil
}
