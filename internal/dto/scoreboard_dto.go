package dto

import "supercopa.app/backend/internal/reconcile"

// ScoreboardImage is one uploaded screenshot. Data is raw base64,
// optionally with a "data:<mime>;base64," prefix.
type ScoreboardImage struct {
	Name     string `json:"name" binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
	Data     string `json:"data" binding:"required"`
}

type ImportScoreboardsRequest struct {
	Images []ScoreboardImage `json:"images" binding:"required,min=1,dive"`
}

// FileResult is the per-file outcome of a scoreboard import. One bad image
// never aborts the batch.
type FileResult struct {
	Name  string `json:"name"`
	Rows  int    `json:"rows"`
	Error string `json:"error,omitempty"`
}

type ImportReport struct {
	Files   []FileResult `json:"files"`
	Applied int          `json:"applied"`
	Created int          `json:"created"`
	Updated int          `json:"updated"`
	Deleted int          `json:"deleted"`
	// Result carries the save outcome of the merged ranking, including
	// per-item failures when the save was partial.
	Result *reconcile.Result `json:"result,omitempty"`
}
