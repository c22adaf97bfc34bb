// Package vision turns scoreboard screenshots into structured ranking rows
// using the Gemini API. The API key lives server-side only.
package vision

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.5-flash"

const scoreboardPrompt = `Analise esta imagem de tabela de resultados de Free Fire.

Identifique cada linha da tabela e extraia as seguintes informações:
1. A posição/rank (#) - número da colocação
2. O nome da equipe ou jogador
3. O número de abates (kills)

Retorne os dados no formato JSON a seguir (sem usar markdown ` + "```json" + `):
[
  {"position": 1, "team": "Nome da Equipe", "kills": 10},
  {"position": 2, "team": "Nome da Equipe 2", "kills": 8}
]

Ordene pela posição. Se houver alguma dúvida sobre uma linha, ignore-a.
Seja preciso na leitura dos números e nomes.`

// Analyzer extracts ranking rows from a single scoreboard image. One failed
// image is reported to the caller for that file only; batching is the
// caller's concern.
type Analyzer interface {
	AnalyzeScoreboard(ctx context.Context, image, mimeType string) ([]ExtractedRow, error)
	Close()
}

type geminiAnalyzer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiAnalyzer builds the Gemini-backed Analyzer. modelName may be
// empty to use the default model.
func NewGeminiAnalyzer(ctx context.Context, apiKey, modelName string) (Analyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("vision: GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = defaultModel
	}

	model := client.GenerativeModel(modelName)
	// Low temperature: we want table transcription, not creativity.
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	return &geminiAnalyzer{client: client, model: model}, nil
}

// AnalyzeScoreboard sends the image with the extraction prompt and parses
// the structured response. image is raw base64, optionally carrying a
// "data:<mime>;base64," prefix.
func (g *geminiAnalyzer) AnalyzeScoreboard(ctx context.Context, image, mimeType string) ([]ExtractedRow, error) {
	data, err := decodeImagePayload(image)
	if err != nil {
		return nil, err
	}

	resp, err := g.model.GenerateContent(ctx,
		genai.Text(scoreboardPrompt),
		genai.Blob{MIMEType: mimeType, Data: data},
	)
	if err != nil {
		return nil, fmt.Errorf("vision: api error: %w", err)
	}

	text, ok := firstText(resp)
	if !ok {
		return nil, ErrNoContent
	}

	return decodeRows(text)
}

func (g *geminiAnalyzer) Close() {
	g.client.Close()
}

func firstText(resp *genai.GenerateContentResponse) (string, bool) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", false
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok && len(txt) > 0 {
			return string(txt), true
		}
	}
	return "", false
}
