package feed

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

// Handler handles HTTP requests for the community feed
type Handler struct {
	service *Service
}

// NewHandler creates a new feed handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for feed endpoints mounted under /api/sangha
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/feed", h.Feed)
	r.Post("/posts", h.CreatePost)
	r.Post("/react", h.React)
	r.Delete("/react", h.RemoveReaction)
	r.Post("/comment", h.Comment)
	r.Get("/comments/{postId}", h.Comments)

	return r
}

// Feed handles GET /api/sangha/feed
// @Summary      Community feed
// @Description  Posts newest-first with author, reaction count, comment count
// @Tags         feed
// @Produce      json
// @Param        limit query int false "Page size" default(20)
// @Param        offset query int false "Offset" default(0)
// @Success      200 {object} response.APIResponse{data=[]FeedItem}
// @Router       /api/sangha/feed [get]
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := h.service.Feed(r.Context(), limit, offset)
	if err != nil {
		response.InternalError(w, "Failed to fetch feed")
		return
	}

	response.JSONWithMeta(w, http.StatusOK, items, &response.Meta{Count: len(items)})
}

// CreatePost handles POST /api/sangha/posts
// @Summary      Create a post
// @Description  Append a post; it must carry content, a photo URL, or a video URL
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        request body CreatePostRequest true "Post creation request"
// @Success      201 {object} response.APIResponse{data=Post}
// @Failure      400 {object} response.APIResponse
// @Router       /api/sangha/posts [post]
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.GetMemberID(r.Context())
	if !ok {
		response.Unauthorized(w, "Sign in to post")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	post, err := h.service.CreatePost(r.Context(), memberID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyPost):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrMemberNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to create post")
		}
		return
	}

	response.JSON(w, http.StatusCreated, post)
}

// React handles POST /api/sangha/react
// @Summary      React to a post
// @Description  Upsert: one reaction per member per post, later type replaces earlier
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        request body ReactRequest true "Reaction request"
// @Success      200 {object} response.APIResponse{data=Reaction}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /api/sangha/react [post]
func (h *Handler) React(w http.ResponseWriter, r *http.Request) {
	var req ReactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	reaction, err := h.service.React(r.Context(), req.MemberID, req.PostID, req.Type)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to save reaction")
		return
	}

	response.JSON(w, http.StatusOK, map[string]*Reaction{"reaction": reaction})
}

// RemoveReaction handles DELETE /api/sangha/react
// @Summary      Remove a reaction
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        request body ReactRequest true "Reaction removal request"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Router       /api/sangha/react [delete]
func (h *Handler) RemoveReaction(w http.ResponseWriter, r *http.Request) {
	var req ReactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.service.RemoveReaction(r.Context(), req.MemberID, req.PostID); err != nil {
		response.InternalError(w, "Failed to remove reaction")
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"removed": true})
}

// Comment handles POST /api/sangha/comment
// @Summary      Comment on a post
// @Description  Append-only; bodies beyond 2000 characters are rejected
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        request body CommentRequest true "Comment request"
// @Success      201 {object} response.APIResponse{data=Comment}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /api/sangha/comment [post]
func (h *Handler) Comment(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	comment, err := h.service.Comment(r.Context(), req.MemberID, req.PostID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyComment), errors.Is(err, ErrCommentTooLong):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrPostNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to add comment")
		}
		return
	}

	response.JSON(w, http.StatusCreated, map[string]*Comment{"comment": comment})
}

// Comments handles GET /api/sangha/comments/{postId}
// @Summary      Comments for a post
// @Tags         feed
// @Produce      json
// @Param        postId path int true "Post ID"
// @Success      200 {object} response.APIResponse{data=[]Comment}
// @Failure      400 {object} response.APIResponse
// @Router       /api/sangha/comments/{postId} [get]
func (h *Handler) Comments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid post ID")
		return
	}

	comments, err := h.service.Comments(r.Context(), postID)
	if err != nil {
		response.InternalError(w, "Failed to fetch comments")
		return
	}

	response.JSON(w, http.StatusOK, map[string][]*Comment{"comments": comments})
}
