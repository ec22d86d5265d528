package phrase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/refdex/refdex/internal/llm"
)

const systemPrompt = "You are a research assistant. Convert the text you are given into a short and clear encyclopedia search phrase. Only return the search phrase, no explanations."

// Generator condenses free text into a candidate search phrase through a
// chat model. The returned phrase is untrusted model output; callers must
// run it through query.Normalize before use.
type Generator struct {
	Client llm.Client
	Model  string
}

// SearchPhrase asks the model for a search phrase describing text. The raw
// first choice is returned trimmed but otherwise unprocessed.
func (g *Generator) SearchPhrase(ctx context.Context, text string) (string, error) {
	if g.Client == nil {
		return "", errors.New("phrase: no model client configured")
	}
	resp, err := g.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Text:\n" + text},
		},
		Temperature: 0.1,
		N:           1,
	})
	if err != nil {
		return "", fmt.Errorf("phrase call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("phrase: no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
