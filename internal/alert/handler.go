package alert

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashramdev/sangha/pkg/response"
)

// Handler handles HTTP requests for alerts
type Handler struct {
	service *Service
}

// NewHandler creates a new alert handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for alert endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	return r
}

// List handles GET /api/sangha/alerts
// @Summary      Latest alerts
// @Description  Last 10 alerts newest-first; ?window=recent limits to the last 30 minutes
// @Tags         alerts
// @Produce      json
// @Param        window query string false "Recency window" Enums(recent)
// @Success      200 {object} response.APIResponse{data=[]Alert}
// @Router       /api/sangha/alerts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		alerts []*Alert
		err    error
	)

	if r.URL.Query().Get("window") == "recent" {
		alerts, err = h.service.Recent(r.Context())
	} else {
		alerts, err = h.service.Latest(r.Context())
	}
	if err != nil {
		response.InternalError(w, "Failed to fetch alerts")
		return
	}

	response.JSON(w, http.StatusOK, map[string][]*Alert{"alerts": alerts})
}
