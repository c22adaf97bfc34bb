package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/service"
	"supercopa.app/backend/pkg/response"
	"supercopa.app/backend/pkg/validator"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	auth, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, auth)
}
