package seva

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ashramdev/sangha/pkg/middleware"
	"github.com/ashramdev/sangha/pkg/response"
	"github.com/ashramdev/sangha/pkg/validate"
)

// CheckInRequest represents the request body for check-in and check-out
type CheckInRequest struct {
	SevaType string `json:"seva_type" validate:"required"`
}

// Handler handles HTTP requests for seva tracking
type Handler struct {
	service *Service
}

// NewHandler creates a new seva handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for seva endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/today", h.Today)
	r.Get("/types", h.ListTypes)
	r.Get("/history", h.History)
	r.Post("/checkin", h.CheckIn)
	r.Post("/checkout", h.CheckOut)

	return r
}

// Today handles GET /api/sangha/seva/today
// @Summary      Today's seva activity
// @Description  Today's check-ins grouped by seva type with totals
// @Tags         seva
// @Produce      json
// @Success      200 {object} response.APIResponse{data=DayActivity}
// @Router       /api/sangha/seva/today [get]
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	activity, err := h.service.TodayActivity(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch seva data")
		return
	}

	response.JSON(w, http.StatusOK, activity)
}

// ListTypes handles GET /api/sangha/seva/types
// @Summary      Seva type catalog
// @Tags         seva
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]Type}
// @Router       /api/sangha/seva/types [get]
func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, Types)
}

// History handles GET /api/sangha/seva/history
// @Summary      Member seva history
// @Tags         seva
// @Produce      json
// @Param        limit query int false "Max records" default(10)
// @Success      200 {object} response.APIResponse{data=[]CheckIn}
// @Failure      401 {object} response.APIResponse
// @Router       /api/sangha/seva/history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.GetMemberID(r.Context())
	if !ok {
		response.Unauthorized(w, "Sign in to view seva history")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	checkIns, err := h.service.History(r.Context(), memberID, limit)
	if err != nil {
		response.InternalError(w, "Failed to fetch history")
		return
	}

	if checkIns == nil {
		checkIns = []*CheckIn{}
	}
	response.JSON(w, http.StatusOK, checkIns)
}

// CheckIn handles POST /api/sangha/seva/checkin
// @Summary      Check in to a seva
// @Tags         seva
// @Accept       json
// @Produce      json
// @Param        request body CheckInRequest true "Check-in request"
// @Success      201 {object} response.APIResponse{data=CheckIn}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /api/sangha/seva/checkin [post]
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.GetMemberID(r.Context())
	if !ok {
		response.Unauthorized(w, "Sign in to check in")
		return
	}

	var req CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	checkIn, err := h.service.CheckIn(r.Context(), memberID, req.SevaType)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownType):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrAlreadyCheckedIn):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Check-in failed")
		}
		return
	}

	response.JSON(w, http.StatusCreated, checkIn)
}

// CheckOut handles POST /api/sangha/seva/checkout
// @Summary      Check out of a seva
// @Description  Closes the open session and derives its duration
// @Tags         seva
// @Accept       json
// @Produce      json
// @Param        request body CheckInRequest true "Check-out request"
// @Success      200 {object} response.APIResponse{data=CheckIn}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /api/sangha/seva/checkout [post]
func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.GetMemberID(r.Context())
	if !ok {
		response.Unauthorized(w, "Sign in to check out")
		return
	}

	var req CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	checkIn, err := h.service.CheckOut(r.Context(), memberID, req.SevaType)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownType):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrNoActiveCheckIn):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Check-out failed")
		}
		return
	}

	response.JSON(w, http.StatusOK, checkIn)
}
