package dto

// VisitRequest registers a page visit. SessionID is a per-browser-session
// marker so the counter increments at most once per session.
type VisitRequest struct {
	SessionID string `json:"session_id" binding:"required,min=8,max=128"`
}
