package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enesocakci/portfolio-backend/internal/api/httperr"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login resolves the email through Firebase Auth. Password verification
// happens client side with the Firebase web SDK; the Admin SDK cannot check
// secrets, so this endpoint only confirms the account exists.
func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		httperr.JSON(c, http.StatusBadRequest, httperr.CodeValidation, "email is required")
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		httperr.JSON(c, http.StatusUnauthorized, httperr.CodeUnauthorized, "Invalid credentials!")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful!", "user": user})
}
