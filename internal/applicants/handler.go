package applicants

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-vault/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/process", h.process)
	rg.POST("/search", h.search)
	rg.GET("/list", h.list)
}

type processRequest struct {
	URL string `json:"url" binding:"required"`
}

type searchRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) process(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "url is required")
		return
	}

	applicant, err := h.Svc.Process(c.Request.Context(), req.URL)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		// Fetch, extraction, validation and persistence failures all collapse
		// to a server error carrying the cause's message.
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.OK(c, applicant)
}

func (h *Handler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "name is required")
		return
	}

	matches, err := h.Svc.SearchByName(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "No matching resumes found")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respond.OK(c, matches)
}

func (h *Handler) list(c *gin.Context) {
	applicants, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if applicants == nil {
		applicants = []Applicant{}
	}
	respond.OK(c, applicants)
}
