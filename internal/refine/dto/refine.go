package dto

import (
	"time"

	"refine-backend/pkg/ai"
)

type RefineRequest struct {
	Text         string  `json:"text" binding:"required"`
	Context      *string `json:"context"`
	OpenAIAPIKey string  `json:"openaiApiKey"`
}

// RefineResponse is a stored refinement plus the transient suggestion list.
type RefineResponse struct {
	ID           string          `json:"id"`
	OriginalText string          `json:"originalText"`
	RefinedText  string          `json:"refinedText"`
	Suggestions  []string        `json:"suggestions"`
	Context      *string         `json:"context"`
	CreatedAt    time.Time       `json:"createdAt"`
	Provider     ai.ProviderType `json:"provider"`
}
