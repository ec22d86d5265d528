package phrase

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

type scriptedClient struct {
	content string
	err     error
	gotReq  openai.ChatCompletionRequest
}

func (s *scriptedClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.gotReq = req
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.content}},
		},
	}, nil
}

func TestSearchPhrase_ReturnsTrimmedFirstChoice(t *testing.T) {
	c := &scriptedClient{content: "  Battle of Hastings \n"}
	g := &Generator{Client: c, Model: "test-model"}

	got, err := g.SearchPhrase(context.Background(), "long rambling text about 1066")
	if err != nil {
		t.Fatalf("phrase: %v", err)
	}
	if got != "Battle of Hastings" {
		t.Fatalf("got %q", got)
	}
	if c.gotReq.Model != "test-model" || len(c.gotReq.Messages) != 2 {
		t.Fatalf("request: %+v", c.gotReq)
	}
}

func TestSearchPhrase_ErrorsPropagate(t *testing.T) {
	g := &Generator{Client: &scriptedClient{err: errors.New("down")}, Model: "m"}
	if _, err := g.SearchPhrase(context.Background(), "text"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSearchPhrase_NilClient(t *testing.T) {
	g := &Generator{}
	if _, err := g.SearchPhrase(context.Background(), "text"); err == nil {
		t.Fatalf("expected error")
	}
}
