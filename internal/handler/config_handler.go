package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/service"
	"supercopa.app/backend/pkg/response"
	"supercopa.app/backend/pkg/validator"
)

type ConfigHandler struct {
	config service.ConfigService
	visits service.VisitService
}

func NewConfigHandler(config service.ConfigService, visits service.VisitService) *ConfigHandler {
	return &ConfigHandler{config: config, visits: visits}
}

// GetConfig returns everything the public page needs in one request:
// display config, scoring table and the visit counter.
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.config.GetRankingConfig(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	scoring, err := h.config.GetScoringSystem(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	visits, err := h.visits.TotalVisits(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"ranking_config": cfg,
		"scoring_system": scoring,
		"visit_count":    visits,
	})
}

func (h *ConfigHandler) UpdateConfig(c *gin.Context) {
	var input dto.RankingConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.config.UpdateRankingConfig(c.Request.Context(), input); err != nil {
		response.Error(c, err)
		return
	}

	cfg, err := h.config.GetRankingConfig(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cfg)
}

func (h *ConfigHandler) UpdateScoring(c *gin.Context) {
	var input dto.ScoringSystemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.config.UpdateScoringSystem(c.Request.Context(), input); err != nil {
		response.Error(c, err)
		return
	}

	scoring, err := h.config.GetScoringSystem(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, scoring)
}

func (h *ConfigHandler) UploadBanner(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "arquivo de imagem é obrigatório"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	url, err := h.config.UploadBanner(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"banner_image": url})
}
