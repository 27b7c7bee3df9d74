package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enesocakci/portfolio-backend/internal/api/httperr"
	"github.com/enesocakci/portfolio-backend/internal/offers/domain"
)

type addOfferReq struct {
	ProjectID string  `json:"projectId"`
	Email     string  `json:"email"`
	Subject   string  `json:"subject"`
	Amount    float64 `json:"amount"`
}

func (h *Handler) add(c *gin.Context) {
	var req addOfferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.JSON(c, http.StatusBadRequest, httperr.CodeValidation, "invalid body")
		return
	}

	offer, err := h.svc.Submit(c.Request.Context(), req.ProjectID, req.Email, req.Subject, req.Amount)
	switch {
	case errors.Is(err, domain.ErrMissingField):
		httperr.JSON(c, http.StatusBadRequest, httperr.CodeValidation, "Please fill in all fields.")
	case err != nil:
		httperr.Internal(c, err, "failed to submit offer")
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Offer submitted successfully!", "offer": offer})
	}
}

func (h *Handler) list(c *gin.Context) {
	offers, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err, "failed to list offers")
		return
	}
	c.JSON(http.StatusOK, offers)
}

type decisionReq struct {
	OfferID string `json:"offerId"`
}

func (h *Handler) approve(c *gin.Context) {
	h.decide(c, h.svc.Approve, "Offer approved!")
}

func (h *Handler) reject(c *gin.Context) {
	h.decide(c, h.svc.Reject, "Offer rejected!")
}

func (h *Handler) decide(c *gin.Context, transition func(ctx context.Context, offerID string) error, okMessage string) {
	var req decisionReq
	if err := c.ShouldBindJSON(&req); err != nil || req.OfferID == "" {
		httperr.JSON(c, http.StatusBadRequest, httperr.CodeValidation, "offerId is required")
		return
	}

	err := transition(c.Request.Context(), req.OfferID)
	switch {
	case errors.Is(err, domain.ErrOfferNotFound):
		httperr.JSON(c, http.StatusNotFound, httperr.CodeNotFound, "Offer not found!")
	case errors.Is(err, domain.ErrAlreadyDecided):
		httperr.JSON(c, http.StatusConflict, httperr.CodeConflict, "Offer has already been decided!")
	case errors.Is(err, domain.ErrMissingField):
		httperr.JSON(c, http.StatusBadRequest, httperr.CodeValidation, "offerId is required")
	case err != nil:
		httperr.Internal(c, err, "failed to update offer")
	default:
		c.JSON(http.StatusOK, gin.H{"message": okMessage})
	}
}
