package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/service"
	"supercopa.app/backend/pkg/response"
	"supercopa.app/backend/pkg/validator"
)

type VisitHandler struct {
	service service.VisitService
}

func NewVisitHandler(service service.VisitService) *VisitHandler {
	return &VisitHandler{service: service}
}

func (h *VisitHandler) RecordVisit(c *gin.Context) {
	var req dto.VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	counted, err := h.service.RecordVisit(c.Request.Context(), req.SessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"counted": counted})
}
