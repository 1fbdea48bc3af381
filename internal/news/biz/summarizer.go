package biz

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rapidreads/rapidreads-backend/internal/news/llm"
	"github.com/rapidreads/rapidreads-backend/internal/news/types"
)

// Summarizer turns one extraction into a 3-5 sentence summary.
type Summarizer struct {
	client llm.ChatClient
}

// NewSummarizer creates a summarizer.
func NewSummarizer(client llm.ChatClient) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize produces a summary for one article's extraction. A failed
// extraction or text below the minimum length short-circuits to the fixed
// sentinel without touching the model; error text never reaches a prompt.
func (s *Summarizer) Summarize(ctx context.Context, ext types.Extraction) (string, error) {
	if ext.Err != nil {
		return types.InsufficientContent, nil
	}

	text := strings.TrimSpace(ext.Text)
	if utf8.RuneCountInString(text) < types.MinSummarizableLen {
		return types.InsufficientContent, nil
	}

	summary, err := s.client.Complete(ctx, llm.CompletionRequest{
		Prompt:      buildSummaryPrompt(text),
		MaxTokens:   summarizeMaxTokens,
		Temperature: summarizeTemperature,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(summary), nil
}
