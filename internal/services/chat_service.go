package services

import (
	"context"
	"fmt"
	"strings"

	"pathfinders/pkg/utils"
)

// ChatServiceInterface is the streaming counterpart to the analysis path:
// tokens are handed to the caller as they arrive instead of as one JSON
// document. Callers are responsible for the premium gate.
type ChatServiceInterface interface {
	Stream(ctx context.Context, message string, onToken func(token string) error) error
}

type ChatService struct {
	client utils.CompletionClientInterface // nil when no credential is configured
}

func NewChatService(client utils.CompletionClientInterface) ChatServiceInterface {
	return &ChatService{
		client: client,
	}
}

const chatSystemPrompt = "You are a helpful coach for junior developers. Keep answers concise and actionable. Focus on coding, career growth, and learning habits."

func (c *ChatService) Stream(ctx context.Context, message string, onToken func(token string) error) error {
	if c.client == nil {
		return utils.ErrAINotConfigured
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return utils.ErrInvalidInput
	}
	if err := c.client.StreamChat(ctx, chatSystemPrompt, message, onToken); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrAIUnavailable, err)
	}
	return nil
}
