package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"bookchat/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrAPIKeyMissing = errors.New("Server API Key not configured")
	ErrAIFailure     = errors.New("AI Error")
)

const defaultMaxContextChars = 100000

const systemInstruction = `You are a helpful study assistant. Answer the user's question based ONLY on the following book content.
If the answer is not in the text, say you don't know.`

// ChatService answers questions about a stored book by forwarding a
// context-stuffed prompt to the configured language model.
type ChatService interface {
	Ask(ctx context.Context, bookID int64, message string) (string, error)
}

type chatService struct {
	docRepo         repository.DocumentRepository
	ai              AIService
	maxContextChars int
	logger          *zap.Logger
}

// NewChatService wires the chat flow. ai may be nil when no API key was
// configured at startup; every Ask then fails with ErrAPIKeyMissing without
// any outbound call.
func NewChatService(
	docRepo repository.DocumentRepository,
	ai AIService,
	maxContextChars int,
	logger *zap.Logger,
) ChatService {
	if maxContextChars <= 0 {
		maxContextChars = defaultMaxContextChars
	}

	return &chatService{
		docRepo:         docRepo,
		ai:              ai,
		maxContextChars: maxContextChars,
		logger:          logger,
	}
}

func (s *chatService) Ask(ctx context.Context, bookID int64, message string) (string, error) {
	doc, err := s.docRepo.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("load document: %w", err)
	}

	if s.ai == nil {
		return "", ErrAPIKeyMissing
	}

	prompt := buildPrompt(doc.Content, message, s.maxContextChars)

	answer, err := s.ai.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("Language model call failed",
			zap.Int64("book_id", bookID),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %s", ErrAIFailure, err.Error())
	}

	return answer, nil
}

// buildPrompt stuffs a bounded prefix of the book content into a fixed
// template. The cut is rune-based so the prefix stays valid UTF-8; it can
// land mid-word.
func buildPrompt(content, question string, maxChars int) string {
	return fmt.Sprintf("%s\n\nBook Content:\n%s\n\nUser Question: %s",
		systemInstruction, truncateRunes(content, maxChars), question)
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
