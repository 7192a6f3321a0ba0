package service

import (
	"context"
	"errors"
	"fmt"

	"bookchat/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// GigaChatService answers prompts through the Sber GigaChat API.
type GigaChatService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
}

func NewGigaChatService(ctx context.Context, cfg *config.AIConfig, logger *zap.Logger) (*GigaChatService, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.GigaChatScope),
	}

	if cfg.GigaChatInsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	return &GigaChatService{
		client: client,
		model:  client.GenerativeModel(cfg.Model),
	}, nil
}

func (s *GigaChatService) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}

	return resp.Choices[0].Message.Content, nil
}

func (s *GigaChatService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
