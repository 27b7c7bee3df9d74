package http

import "github.com/gin-gonic/gin"

// Register attaches the contact message routes.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/api/send-message", h.send)
	r.GET("/messages", h.list)
}
