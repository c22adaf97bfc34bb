package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/model"
	"supercopa.app/backend/internal/reconcile"
)

type fakeScoreboardService struct {
	report *dto.ImportReport
	err    error
}

func (f *fakeScoreboardService) ImportScoreboards(ctx context.Context, images []dto.ScoreboardImage) (*dto.ImportReport, error) {
	return f.report, f.err
}

type fakeRankingService struct {
	entries []model.RankingEntry
	result  *reconcile.Result
	err     error
}

func (f *fakeRankingService) GetRanking(ctx context.Context) ([]model.RankingEntry, error) {
	return f.entries, nil
}

func (f *fakeRankingService) SaveRanking(ctx context.Context, entries []dto.RankingEntryInput) (*reconcile.Result, error) {
	return f.result, f.err
}

func importRequest(t *testing.T) *http.Request {
	t.Helper()

	body, err := json.Marshal(dto.ImportScoreboardsRequest{
		Images: []dto.ScoreboardImage{{Name: "round1.png", MimeType: "image/png", Data: "aGk="}},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/ranking/import", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestImportScoreboardsPartialSaveAnswers207(t *testing.T) {
	gin.SetMode(gin.TestMode)

	report := &dto.ImportReport{
		Files:   []dto.FileResult{{Name: "round1.png", Rows: 2}},
		Applied: 2,
		Result: &reconcile.Result{
			Created: 1,
			Failures: []reconcile.Failure{
				{Op: reconcile.OpUpsert, ID: "tmp-1-0001", Err: errors.New("constraint violation")},
			},
		},
	}
	ranking := &fakeRankingService{entries: []model.RankingEntry{
		{ID: uuid.New(), Position: 1, Team: "LOUD", Points: 40},
	}}
	h := NewRankingHandler(ranking, &fakeScoreboardService{report: report, err: reconcile.ErrPartial}, nil)

	router := gin.New()
	router.POST("/api/admin/ranking/import", h.ImportScoreboards)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, importRequest(t))

	assert.Equal(t, http.StatusMultiStatus, rec.Code)

	// The failure reason and the reloaded ranking both reach the client.
	assert.Contains(t, rec.Body.String(), "constraint violation")
	assert.Contains(t, rec.Body.String(), `"ranking"`)
	assert.Contains(t, rec.Body.String(), "LOUD")
}

func TestImportScoreboardsCleanSaveAnswers200(t *testing.T) {
	gin.SetMode(gin.TestMode)

	report := &dto.ImportReport{
		Files:   []dto.FileResult{{Name: "round1.png", Rows: 2}},
		Applied: 2,
		Result:  &reconcile.Result{Created: 2},
	}
	h := NewRankingHandler(&fakeRankingService{}, &fakeScoreboardService{report: report}, nil)

	router := gin.New()
	router.POST("/api/admin/ranking/import", h.ImportScoreboards)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, importRequest(t))

	assert.Equal(t, http.StatusOK, rec.Code)
}
