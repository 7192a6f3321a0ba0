package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Ask(ctx context.Context, bookID int64, message string) (string, error) {
	args := m.Called(ctx, bookID, message)
	return args.String(0), args.Error(1)
}
