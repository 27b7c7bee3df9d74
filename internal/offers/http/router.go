package http

import "github.com/gin-gonic/gin"

// Register attaches the offer routes. reject-offer stays a DELETE to keep the
// public contract of the admin panel.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/add-offer", h.add)
	r.GET("/offers", h.list)
	r.POST("/approve-offer", h.approve)
	r.DELETE("/reject-offer", h.reject)
}
