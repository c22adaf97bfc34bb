package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/reconcile"
	"supercopa.app/backend/internal/service"
	"supercopa.app/backend/pkg/response"
	"supercopa.app/backend/pkg/validator"
)

type AwardsHandler struct {
	service service.AwardsService
}

func NewAwardsHandler(service service.AwardsService) *AwardsHandler {
	return &AwardsHandler{service: service}
}

func (h *AwardsHandler) GetAwards(c *gin.Context) {
	awards, err := h.service.GetAwards(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, awards)
}

func (h *AwardsHandler) SaveAwards(c *gin.Context) {
	var req dto.SaveAwardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	result, err := h.service.SaveAwards(c.Request.Context(), req.Awards)
	if err != nil && !errors.Is(err, reconcile.ErrPartial) {
		response.Error(c, err)
		return
	}

	awards, loadErr := h.service.GetAwards(c.Request.Context())
	if loadErr != nil {
		response.Error(c, loadErr)
		return
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusMultiStatus
	}
	c.JSON(status, gin.H{"data": awards, "result": result})
}
