package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"meetups/internal/delivery/http/helpers"
	"meetups/internal/delivery/http/middleware"
	"meetups/internal/domain"
)

const (
	msgMeetupCreated = "meetup created successfully"
	msgMeetupUpdated = "meetup updated successfully"
)

// CreateMeetupRequest is the request body for POST /meetups.
// Date-times are RFC 3339 or "YYYY-MM-DD HH:MM" in UTC.
type CreateMeetupRequest struct {
	Title         string   `json:"title" validate:"required,max=100" example:"Adopting bitcoin"`
	Description   string   `json:"description" validate:"required,max=500" example:"The best bitcoin meetup in the world"`
	StartDateTime string   `json:"startDateTime" validate:"required" example:"2030-01-15T14:30:00Z"`
	EndDateTime   string   `json:"endDateTime" validate:"required" example:"2030-01-15T16:00:00Z"`
	LocationName  string   `json:"locationName" validate:"required,max=150" example:"Salon de Eventos Salamanca"`
	Latitude      *float64 `json:"latitude" validate:"required,latitude" example:"13.69294"`
	Longitude     *float64 `json:"longitude" validate:"required,longitude" example:"-89.21819"`
}

// Validate implements Validator.
func (c CreateMeetupRequest) Validate() []string {
	var errs []string
	for _, f := range []struct{ name, value string }{
		{"title", c.Title}, {"description", c.Description}, {"locationName", c.LocationName},
	} {
		if f.value != "" && strings.TrimSpace(f.value) == "" {
			errs = append(errs, f.name+" cannot be blank")
		}
	}
	if c.StartDateTime != "" {
		if _, err := helpers.ParseDateTime(c.StartDateTime); err != nil {
			errs = append(errs, "startDateTime: "+err.Error())
		}
	}
	if c.EndDateTime != "" {
		if _, err := helpers.ParseDateTime(c.EndDateTime); err != nil {
			errs = append(errs, "endDateTime: "+err.Error())
		}
	}
	return errs
}

// toMeetup assumes Validate passed.
func (c CreateMeetupRequest) toMeetup() *domain.Meetup {
	start, _ := helpers.ParseDateTime(c.StartDateTime)
	end, _ := helpers.ParseDateTime(c.EndDateTime)
	return domain.NewMeetup(
		strings.TrimSpace(c.Title),
		strings.TrimSpace(c.Description),
		strings.TrimSpace(c.LocationName),
		start, end, *c.Latitude, *c.Longitude,
	)
}

// BoundariesRequest is the bounding box of a meetup search.
type BoundariesRequest struct {
	MinLat *float64 `json:"minLat" validate:"required,latitude" example:"13.148"`
	MaxLat *float64 `json:"maxLat" validate:"required,latitude" example:"14.445"`
	MinLng *float64 `json:"minLng" validate:"required,longitude" example:"-90.193"`
	MaxLng *float64 `json:"maxLng" validate:"required,longitude" example:"-87.692"`
}

// FilterMeetupsRequest is the request body for POST /meetups/filter. Every field is optional
// and the criteria combine conjunctively; an empty body object lists every meetup.
type FilterMeetupsRequest struct {
	Title      string             `json:"title" validate:"omitempty,max=100" example:"bitcoin"`
	StartDate  string             `json:"startDate" validate:"omitempty,datetime=2006-01-02" example:"2030-01-01"`
	EndDate    string             `json:"endDate" validate:"omitempty,datetime=2006-01-02" example:"2030-12-31"`
	StartTime  string             `json:"startTime" example:"08:00"`
	EndTime    string             `json:"endTime" example:"18:00"`
	Boundaries *BoundariesRequest `json:"boundaries" validate:"omitempty"`
}

// Validate implements Validator.
func (f FilterMeetupsRequest) Validate() []string {
	var errs []string
	for _, t := range []struct{ name, value string }{{"startTime", f.StartTime}, {"endTime", f.EndTime}} {
		if t.value == "" {
			continue
		}
		if _, err := domain.ParseClockTime(t.value); err != nil {
			errs = append(errs, t.name+" must be in HH:MM format")
		}
	}
	if b := f.Boundaries; b != nil && b.MinLat != nil && b.MaxLat != nil && b.MinLng != nil && b.MaxLng != nil {
		if *b.MinLat > *b.MaxLat {
			errs = append(errs, "boundaries.minLat must not exceed boundaries.maxLat")
		}
		if *b.MinLng > *b.MaxLng {
			errs = append(errs, "boundaries.minLng must not exceed boundaries.maxLng")
		}
	}
	return errs
}

// toCriteria assumes Validate passed.
func (f FilterMeetupsRequest) toCriteria() domain.MeetupCriteria {
	var c domain.MeetupCriteria
	if title := strings.TrimSpace(f.Title); title != "" {
		c.Title = &title
	}
	if f.StartDate != "" {
		d, _ := helpers.ParseDate(f.StartDate)
		c.StartDate = &d
	}
	if f.EndDate != "" {
		d, _ := helpers.ParseDate(f.EndDate)
		c.EndDate = &d
	}
	if f.StartTime != "" {
		t, _ := domain.ParseClockTime(f.StartTime)
		c.StartTime = &t
	}
	if f.EndTime != "" {
		t, _ := domain.ParseClockTime(f.EndTime)
		c.EndTime = &t
	}
	if b := f.Boundaries; b != nil {
		c.Boundaries = &domain.BoundingBox{MinLat: *b.MinLat, MaxLat: *b.MaxLat, MinLng: *b.MinLng, MaxLng: *b.MaxLng}
	}
	return c
}

// UpdateMeetupRequest is the request body for PATCH /meetups/{id}. Omitted fields are unchanged.
type UpdateMeetupRequest struct {
	Title         *string  `json:"title" validate:"omitempty,max=100"`
	Description   *string  `json:"description" validate:"omitempty,max=500"`
	StartDateTime *string  `json:"startDateTime" example:"2030-01-15T15:00:00Z"`
	EndDateTime   *string  `json:"endDateTime" example:"2030-01-15T17:00:00Z"`
	LocationName  *string  `json:"locationName" validate:"omitempty,max=150"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// Validate implements Validator.
func (u UpdateMeetupRequest) Validate() []string {
	var errs []string
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"title", u.Title}, {"description", u.Description}, {"locationName", u.LocationName},
	} {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			errs = append(errs, f.name+" cannot be empty")
		}
	}
	if u.StartDateTime != nil {
		if _, err := helpers.ParseDateTime(*u.StartDateTime); err != nil {
			errs = append(errs, "startDateTime: "+err.Error())
		}
	}
	if u.EndDateTime != nil {
		if _, err := helpers.ParseDateTime(*u.EndDateTime); err != nil {
			errs = append(errs, "endDateTime: "+err.Error())
		}
	}
	return errs
}

// toPatch assumes Validate passed.
func (u UpdateMeetupRequest) toPatch() domain.MeetupPatch {
	p := domain.MeetupPatch{
		Title:        trimmed(u.Title),
		Description:  trimmed(u.Description),
		LocationName: trimmed(u.LocationName),
		Latitude:     u.Latitude,
		Longitude:    u.Longitude,
	}
	if u.StartDateTime != nil {
		t, _ := helpers.ParseDateTime(*u.StartDateTime)
		p.StartDateTime = &t
	}
	if u.EndDateTime != nil {
		t, _ := helpers.ParseDateTime(*u.EndDateTime)
		p.EndDateTime = &t
	}
	return p
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// MeetupMessageResponse is returned by create and update.
type MeetupMessageResponse struct {
	Message string         `json:"message"`
	Meetup  *domain.Meetup `json:"meetup"`
}

// MeetupListResponse is returned by POST /meetups/filter.
type MeetupListResponse struct {
	Meetups []*domain.Meetup `json:"meetups"`
}

// MeetupMessageSuccessResponse is the success envelope for POST /meetups (201) and PATCH /meetups/{id} (200).
type MeetupMessageSuccessResponse struct {
	Data  MeetupMessageResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// MeetupListSuccessResponse is the success envelope for POST /meetups/filter (200).
type MeetupListSuccessResponse struct {
	Data  MeetupListResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// MeetupSuccessResponse is the success envelope for GET /meetups/{id} (200).
type MeetupSuccessResponse struct {
	Data  *domain.Meetup    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// MeetupController handles meetup scheduling, search and editing.
type MeetupController struct {
	Logger  *slog.Logger
	Service domain.MeetupService
	Clock   domain.Clock
}

// NewMeetupController creates a MeetupController. The clock supplies "now" for scheduling rules.
func NewMeetupController(logger *slog.Logger, svc domain.MeetupService, clock domain.Clock) *MeetupController {
	return &MeetupController{
		Logger:  logger,
		Service: svc,
		Clock:   clock,
	}
}

// CreateMeetup godoc
// @Summary Create a meetup
// @Description Schedule a meetup owned by the authenticated user. Start and end must fall on the same UTC day, start must not be in the past, end must be after start and the meetup must last at least one hour.
// @Tags meetups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateMeetupRequest true "Meetup data"
// @Success 201 {object} controllers.MeetupMessageSuccessResponse "data contains message and meetup"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, SAME_DAY_VIOLATION, IN_PAST, END_BEFORE_OR_EQUAL_START or DURATION_TOO_SHORT"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /meetups [post]
func (c *MeetupController) CreateMeetup(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req CreateMeetupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	meetup, err := c.Service.CreateMeetup(r.Context(), req.toMeetup(), userID, c.Clock.Now())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, MeetupMessageResponse{Message: msgMeetupCreated, Meetup: meetup})
}

// FilterMeetups godoc
// @Summary Search meetups
// @Description Lists meetups matching every supplied criterion: case-insensitive title substring, start date range (UTC days), start time lower bound, end time upper bound (HH:MM, UTC) and a latitude/longitude bounding box. Results are ordered by start time.
// @Tags meetups
// @Accept json
// @Produce json
// @Param body body FilterMeetupsRequest true "Search criteria"
// @Success 200 {object} controllers.MeetupListSuccessResponse "data contains meetups"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /meetups/filter [post]
func (c *MeetupController) FilterMeetups(w http.ResponseWriter, r *http.Request) {
	var req FilterMeetupsRequest
	if r.ContentLength != 0 && !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	meetups, err := c.Service.ListMeetups(r.Context(), req.toCriteria())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MeetupListResponse{Meetups: meetups})
}

// GetMeetup godoc
// @Summary Get a meetup
// @Description Returns a single meetup by ID.
// @Tags meetups
// @Produce json
// @Param id path string true "Meetup ID (UUID)"
// @Success 200 {object} controllers.MeetupSuccessResponse "data contains the meetup"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /meetups/{id} [get]
func (c *MeetupController) GetMeetup(w http.ResponseWriter, r *http.Request) {
	id, ok := meetupID(w, r)
	if !ok {
		return
	}
	meetup, err := c.Service.GetMeetup(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, meetup)
}

// UpdateMeetup godoc
// @Summary Update a meetup
// @Description Partially update a meetup. Only its creator may edit it, and only before it starts. A moved start must not be in the past; the resulting window must stay on one UTC day, end after start and last at least one hour.
// @Tags meetups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meetup ID (UUID)"
// @Param body body UpdateMeetupRequest true "Fields to update"
// @Success 200 {object} controllers.MeetupMessageSuccessResponse "data contains message and meetup"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, SAME_DAY_VIOLATION, START_IN_PAST, END_NOT_AFTER_START or DURATION_TOO_SHORT"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /meetups/{id} [patch]
func (c *MeetupController) UpdateMeetup(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	id, ok := meetupID(w, r)
	if !ok {
		return
	}
	var req UpdateMeetupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	meetup, err := c.Service.UpdateMeetup(r.Context(), req.toPatch(), id, userID, c.Clock.Now())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MeetupMessageResponse{Message: msgMeetupUpdated, Meetup: meetup})
}

func meetupID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid meetup id")
		return "", false
	}
	return id, true
}

func (c *MeetupController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var rej *domain.RejectionError
	switch {
	case errors.As(err, &rej):
		helpers.WriteJSONError(w, http.StatusBadRequest, string(rej.Reason), rej.Message)
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "meetup not found")
	case errors.Is(err, domain.ErrNotCreator):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, err.Error())
	case errors.Is(err, domain.ErrAlreadyOccurred):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
	}
}
