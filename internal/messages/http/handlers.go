package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enesocakci/portfolio-backend/internal/api/httperr"
	"github.com/enesocakci/portfolio-backend/internal/messages/domain"
)

// sendMessageReq mirrors the contact form of the public site, legacy field
// names included.
type sendMessageReq struct {
	Name    string `json:"Name"`
	Surname string `json:"Soyad"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
}

func (h *Handler) send(c *gin.Context) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.JSON(c, http.StatusBadRequest, httperr.CodeValidation, "invalid body")
		return
	}

	m := domain.Message{
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := h.store.Add(c.Request.Context(), m); err != nil {
		httperr.Internal(c, err, "failed to send message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully!"})
}

func (h *Handler) list(c *gin.Context) {
	messages, err := h.store.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err, "failed to list messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}
