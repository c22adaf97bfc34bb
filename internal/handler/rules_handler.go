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

type RulesHandler struct {
	service service.RulesService
}

func NewRulesHandler(service service.RulesService) *RulesHandler {
	return &RulesHandler{service: service}
}

func (h *RulesHandler) GetRules(c *gin.Context) {
	rules, err := h.service.GetRules(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rules)
}

func (h *RulesHandler) SaveRules(c *gin.Context) {
	var req dto.SaveRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	result, err := h.service.SaveRules(c.Request.Context(), req.Rules)
	if err != nil && !errors.Is(err, reconcile.ErrPartial) {
		response.Error(c, err)
		return
	}

	rules, loadErr := h.service.GetRules(c.Request.Context())
	if loadErr != nil {
		response.Error(c, loadErr)
		return
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusMultiStatus
	}
	c.JSON(status, gin.H{"data": rules, "result": result})
}
