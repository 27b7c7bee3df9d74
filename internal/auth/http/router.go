package http

import "github.com/gin-gonic/gin"

// Register attaches the auth routes.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/login", h.login)
}
