package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/dto"
	apperrors "github.com/yukikurage/task-manager/internal/errors"
	"github.com/yukikurage/task-manager/internal/policy"
)

var (
	ErrDraftsNotConfigured = errors.New("task drafts are not configured")
	ErrNoDraftsGenerated   = errors.New("no task drafts could be extracted")
)

// ChatCompleter is the part of the OpenAI client the draft service needs
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// DraftService turns free text into unsaved task suggestions
type DraftService struct {
	client ChatCompleter
}

// NewDraftService returns a service backed by OpenAI. An empty key disables it.
func NewDraftService(apiKey string) *DraftService {
	if apiKey == "" {
		return &DraftService{}
	}
	return &DraftService{client: openai.NewClient(apiKey)}
}

// NewDraftServiceWithClient is NewDraftService with an explicit client
func NewDraftServiceWithClient(client ChatCompleter) *DraftService {
	return &DraftService{client: client}
}

// Enabled reports whether an API client is configured
func (s *DraftService) Enabled() bool {
	return s != nil && s.client != nil
}

const draftPrompt = `You are a task extraction assistant. Extract concrete tasks from the text below.

Text:
%s

Reply with a JSON array only, no prose:
[
  {"name": "short task name", "description": "details of the task"}
]
Reply with [] when the text contains no tasks.`

// SuggestTasks asks the model to split text into task drafts. Nothing is persisted.
func (s *DraftService) SuggestTasks(ctx context.Context, actor policy.Actor, text string) ([]dto.TaskDraft, error) {
	if !policy.Can(actor, policy.Create, policy.Tasks) {
		return nil, apperrors.ErrForbidden
	}
	if !s.Enabled() {
		return nil, ErrDraftsNotConfigured
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("text", apperrors.CodeRequired)
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: fmt.Sprintf(draftPrompt, text),
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	var drafts []dto.TaskDraft
	content := stripCodeFence(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &drafts); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	valid := make([]dto.TaskDraft, 0, len(drafts))
	for _, d := range drafts {
		d.Name = strings.TrimSpace(d.Name)
		d.Description = strings.TrimSpace(d.Description)
		if d.Name == "" {
			continue
		}
		valid = append(valid, d)
		if len(valid) == constants.MaxDraftTasks {
			break
		}
	}

	if len(valid) == 0 {
		return nil, ErrNoDraftsGenerated
	}

	return valid, nil
}

// stripCodeFence removes a ```json fence some models wrap answers in.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
