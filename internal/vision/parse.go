package vision

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoContent means the model returned no usable candidate text.
	ErrNoContent = errors.New("vision: no content returned")
	// ErrBadShape means the response text was not the expected JSON array.
	ErrBadShape = errors.New("vision: response is not a JSON array")
)

// ExtractedRow is one scoreboard line as read by the model, ordered
// ascending by position.
type ExtractedRow struct {
	Position int    `json:"position"`
	Team     string `json:"team"`
	Kills    int    `json:"kills"`
}

// decodeImagePayload strips an embedded-data header ("data:image/png;base64,")
// if present and decodes the base64 body.
func decodeImagePayload(image string) ([]byte, error) {
	payload := image
	if idx := strings.IndexByte(image, ','); idx >= 0 && strings.HasPrefix(image, "data:") {
		payload = image[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("vision: invalid image payload: %w", err)
	}
	return data, nil
}

// decodeRows parses the model's textual response. Stray markdown code
// fences are tolerated even though the prompt forbids them.
func decodeRows(text string) ([]ExtractedRow, error) {
	clean := strings.ReplaceAll(text, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	if clean == "" {
		return nil, ErrNoContent
	}
	// A literal null unmarshals into a nil slice without an error.
	if !strings.HasPrefix(clean, "[") {
		return nil, fmt.Errorf("%w: got %q", ErrBadShape, truncate(clean, 40))
	}

	var rows []ExtractedRow
	if err := json.Unmarshal([]byte(clean), &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, err)
	}

	return rows, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
