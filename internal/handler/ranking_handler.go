package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/reconcile"
	"supercopa.app/backend/internal/service"
	"supercopa.app/backend/pkg/response"
	"supercopa.app/backend/pkg/validator"
)

type RankingHandler struct {
	ranking    service.RankingService
	scoreboard service.ScoreboardService
	search     service.SearchService
}

func NewRankingHandler(ranking service.RankingService, scoreboard service.ScoreboardService, search service.SearchService) *RankingHandler {
	return &RankingHandler{ranking: ranking, scoreboard: scoreboard, search: search}
}

func (h *RankingHandler) GetRanking(c *gin.Context) {
	entries, err := h.ranking.GetRanking(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entries)
}

// SaveRanking replaces the leaderboard. On a partial failure the response
// carries the per-operation breakdown plus the reloaded store state so the
// client can resynchronize instead of trusting its local copy.
func (h *RankingHandler) SaveRanking(c *gin.Context) {
	var req dto.SaveRankingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	result, err := h.ranking.SaveRanking(c.Request.Context(), req.Entries)
	if err != nil && !errors.Is(err, reconcile.ErrPartial) {
		response.Error(c, err)
		return
	}

	entries, loadErr := h.ranking.GetRanking(c.Request.Context())
	if loadErr != nil {
		response.Error(c, loadErr)
		return
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusMultiStatus
	}
	c.JSON(status, gin.H{"data": entries, "result": result})
}

func (h *RankingHandler) ImportScoreboards(c *gin.Context) {
	var req dto.ImportScoreboardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	report, err := h.scoreboard.ImportScoreboards(c.Request.Context(), req.Images)
	if err != nil && !errors.Is(err, reconcile.ErrPartial) {
		response.Error(c, err)
		return
	}

	// Same contract as the save endpoints: a partial save answers 207 with
	// the reloaded ranking so the client resynchronizes.
	if errors.Is(err, reconcile.ErrPartial) {
		entries, loadErr := h.ranking.GetRanking(c.Request.Context())
		if loadErr != nil {
			response.Error(c, loadErr)
			return
		}
		c.JSON(http.StatusMultiStatus, gin.H{"data": report, "ranking": entries})
		return
	}

	response.OK(c, report)
}

func (h *RankingHandler) SearchTeams(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	docs, err := h.search.SearchTeams(c.Request.Context(), query, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, docs)
}
