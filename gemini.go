package main

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const readAnswersPrompt = `Voici la photo d'une fiche d'exercices de calcul posé, complétée à la main.

La fiche contient %d lignes de %d opérations, lues de gauche à droite puis de haut en bas.
Sous chaque trait horizontal, l'élève a écrit son résultat.

Réponds au format JSON suivant :
{"answers": [<résultat de l'opération 1>, <résultat de l'opération 2>, ...]}

Règles :
- Exactement %d valeurs, dans l'ordre de lecture.
- Chaque valeur est le nombre entier écrit par l'élève, même s'il est faux.
- Utilise null si aucun résultat n'est lisible pour une opération.
- Réponds UNIQUEMENT avec le JSON, sans commentaire ni markdown.`

// AnswerReader extracts handwritten answers from a photo of a worksheet.
type AnswerReader interface {
	ReadAnswers(ctx context.Context, ws *Worksheet, imageData []byte, mimeType string) ([]*int, error)
}

var _ AnswerReader = (*GeminiClient)(nil)

// ReadAnswers sends the photo to Gemini Flash and returns the answers it
// reads, in row-major order; nil entries are unreadable.
func (g *GeminiClient) ReadAnswers(ctx context.Context, ws *Worksheet, imageData []byte, mimeType string) ([]*int, error) {
	prompt := fmt.Sprintf(readAnswersPrompt, ws.Rows, ws.Cols, len(ws.Problems))
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: imageData}},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}
	return parseAnswers(text)
}

func parseAnswers(text string) ([]*int, error) {
	var out struct {
		Answers []*int `json:"answers"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("parse answers JSON: %w\nraw response: %s", err, text)
	}
	if out.Answers == nil {
		return nil, fmt.Errorf("no answers in gemini response: %s", text)
	}
	return out.Answers, nil
}
