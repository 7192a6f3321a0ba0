package service

import (
	"context"
	"fmt"

	"bookchat/pkg/config"

	"go.uber.org/zap"
)

// AIService is the outbound language-model client.
type AIService interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewAIService builds the provider selected by configuration. When no API key
// is configured it returns (nil, nil) so the server can still start; chat
// requests are then rejected with ErrAPIKeyMissing.
func NewAIService(ctx context.Context, cfg *config.AIConfig, logger *zap.Logger) (AIService, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	switch cfg.Provider {
	case "gemini", "":
		return NewGeminiService(ctx, cfg.APIKey, cfg.Model)
	case "openai":
		return NewOpenAIService(cfg.OpenAIBaseURL, cfg.APIKey, cfg.Model), nil
	case "gigachat":
		return NewGigaChatService(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.Provider)
	}
}
