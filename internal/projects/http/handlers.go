package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/enesocakci/portfolio-backend/internal/api/httperr"
	"github.com/enesocakci/portfolio-backend/internal/projects/domain"
)

type addProjectReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func (h *Handler) add(c *gin.Context) {
	var req addProjectReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		httperr.JSON(c, http.StatusBadRequest, httperr.CodeValidation, "title is required")
		return
	}

	id, err := h.svc.Create(c.Request.Context(), strings.TrimSpace(req.Title), req.Description, req.ImageURL)
	if err != nil {
		httperr.Internal(c, err, "failed to add project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project added successfully!", "id": id})
}

func (h *Handler) list(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err, "failed to list projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

type likeReq struct {
	ProjectID string `json:"projectId"`
	UserID    string `json:"userId"`
}

func (h *Handler) like(c *gin.Context) {
	var req likeReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ProjectID) == "" {
		httperr.JSON(c, http.StatusBadRequest, httperr.CodeValidation, "projectId is required")
		return
	}

	// Anonymous visitors are deduplicated by network address.
	identifier := strings.TrimSpace(req.UserID)
	if identifier == "" {
		identifier = c.ClientIP()
	}

	err := h.svc.Like(c.Request.Context(), strings.TrimSpace(req.ProjectID), identifier)
	switch {
	case errors.Is(err, domain.ErrAlreadyLiked):
		httperr.JSON(c, http.StatusBadRequest, httperr.CodeAlreadyLiked, "You already liked this project!")
	case errors.Is(err, domain.ErrProjectNotFound):
		httperr.JSON(c, http.StatusNotFound, httperr.CodeNotFound, "Project not found!")
	case err != nil:
		httperr.Internal(c, err, "failed to like project")
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Project liked!"})
	}
}
