package task

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ashramdev/sangha/internal/member"
	"github.com/ashramdev/sangha/pkg/middleware"
	"github.com/ashramdev/sangha/pkg/response"
	"github.com/ashramdev/sangha/pkg/validate"
)

// memberResolver turns the authenticated member ID into an Actor
type memberResolver interface {
	GetByID(ctx context.Context, id int64) (*member.Member, error)
}

// Handler handles HTTP requests for the task board
type Handler struct {
	service *Service
	members memberResolver
}

// NewHandler creates a new task handler with dependencies injected
func NewHandler(service *Service, members memberResolver) *Handler {
	return &Handler{service: service, members: members}
}

// Routes returns the router for task endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/{id}/claim", h.Claim)
	r.Post("/{id}/complete", h.Complete)
	r.Post("/{id}/release", h.Release)

	return r
}

// actor resolves the acting member from the request context, or nil when
// the request carries no identity
func (h *Handler) actor(r *http.Request) (*Actor, error) {
	id, ok := middleware.GetMemberID(r.Context())
	if !ok {
		return nil, nil
	}
	m, err := h.members.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &Actor{ID: m.ID, Name: m.Name}, nil
}

// List handles GET /api/sangha/tasks
// @Summary      List seva tasks
// @Description  List tasks filtered to open, mine, or all
// @Tags         tasks
// @Produce      json
// @Param        filter query string false "Filter" Enums(open, mine, all) default(open)
// @Success      200 {object} response.APIResponse{data=[]TaskResponse}
// @Router       /api/sangha/tasks [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := Filter(r.URL.Query().Get("filter"))
	if filter != FilterMine && filter != FilterAll {
		filter = FilterOpen
	}

	actor, err := h.actor(r)
	if err != nil {
		response.InternalError(w, "Failed to resolve member")
		return
	}

	tasks, err := h.service.List(r.Context(), filter, actor)
	if err != nil {
		response.InternalError(w, "Failed to list tasks")
		return
	}

	taskResponses := make([]*TaskResponse, len(tasks))
	for i, t := range tasks {
		taskResponses[i] = t.ToResponse()
	}

	response.JSONWithMeta(w, http.StatusOK, taskResponses, &response.Meta{Count: len(tasks)})
}

// Create handles POST /api/sangha/tasks
// @Summary      Create a seva task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request body CreateTaskRequest true "Task creation request"
// @Success      201 {object} response.APIResponse{data=TaskResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /api/sangha/tasks [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	task, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w, "Failed to create task")
		return
	}

	response.JSON(w, http.StatusCreated, task.ToResponse())
}

// Claim handles POST /api/sangha/tasks/{id}/claim
// @Summary      Claim an open task
// @Description  At most one of two concurrent claimers succeeds; the loser receives 409
// @Tags         tasks
// @Produce      json
// @Param        id path string true "Task ID"
// @Success      200 {object} response.APIResponse{data=TaskResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /api/sangha/tasks/{id}/claim [post]
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Claim)
}

// Complete handles POST /api/sangha/tasks/{id}/complete
// @Summary      Complete a claimed task
// @Description  Only the claimant may complete a task
// @Tags         tasks
// @Produce      json
// @Param        id path string true "Task ID"
// @Success      200 {object} response.APIResponse{data=TaskResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /api/sangha/tasks/{id}/complete [post]
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Complete)
}

// Release handles POST /api/sangha/tasks/{id}/release
// @Summary      Release a claimed task back to open
// @Description  Only the claimant may release a task
// @Tags         tasks
// @Produce      json
// @Param        id path string true "Task ID"
// @Success      200 {object} response.APIResponse{data=TaskResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /api/sangha/tasks/{id}/release [post]
func (h *Handler) Release(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Release)
}

// transition runs one of the guarded state transitions and maps sentinel
// errors onto the HTTP failure taxonomy
func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID, Actor) (*SevaTask, error)) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	actor, err := h.actor(r)
	if err != nil {
		response.InternalError(w, "Failed to resolve member")
		return
	}
	if actor == nil {
		response.Unauthorized(w, "Sign in to work with tasks")
		return
	}

	task, err := op(r.Context(), id, *actor)
	if err != nil {
		switch {
		case errors.Is(err, ErrTaskNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrTaskAlreadyClaimed), errors.Is(err, ErrTaskNotClaimed):
			response.Conflict(w, err.Error())
		case errors.Is(err, ErrNotClaimant):
			response.Forbidden(w, err.Error())
		default:
			response.InternalError(w, "Task update failed")
		}
		return
	}

	response.JSON(w, http.StatusOK, task.ToResponse())
}
