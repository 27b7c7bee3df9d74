package http

import "github.com/gin-gonic/gin"

// Register attaches the project routes. likeLimit, when non-nil, is applied
// to the like endpoint only.
func (h *Handler) Register(r gin.IRouter, likeLimit gin.HandlerFunc) {
	r.POST("/add-project", h.add)
	r.GET("/projects", h.list)
	if likeLimit != nil {
		r.POST("/like-project", likeLimit, h.like)
	} else {
		r.POST("/like-project", h.like)
	}
}
