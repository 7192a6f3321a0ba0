package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookchat/internal/dto"
	"bookchat/internal/repository"
	"bookchat/internal/service"
	serviceMocks "bookchat/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chatRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestChatHandler_Chat(t *testing.T) {
	mockSvc := new(serviceMocks.MockChatService)
	handler := NewChatHandler(mockSvc, zap.NewNop())

	app := fiber.New()
	app.Post("/api/chat", handler.Chat)

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Ask", mock.Anything, int64(3), "what happens in chapter 2?").
			Return("A storm hits the island.", nil).Once()

		resp, err := app.Test(chatRequest(`{"message": "what happens in chapter 2?", "book_id": 3}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result dto.ChatResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "A storm hits the island.", result.Response)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := app.Test(chatRequest(`{not json`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("empty message", func(t *testing.T) {
		resp, err := app.Test(chatRequest(`{"message": "", "book_id": 1}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Message is required", body.Error)
	})

	t.Run("book not found", func(t *testing.T) {
		mockSvc.On("Ask", mock.Anything, int64(404), "hello").
			Return("", repository.ErrNotFound).Once()

		resp, err := app.Test(chatRequest(`{"message": "hello", "book_id": 404}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Book not found", body.Error)
		mockSvc.AssertExpectations(t)
	})

	t.Run("api key not configured", func(t *testing.T) {
		mockSvc.On("Ask", mock.Anything, int64(1), "hello").
			Return("", service.ErrAPIKeyMissing).Once()

		resp, err := app.Test(chatRequest(`{"message": "hello", "book_id": 1}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Server API Key not configured", body.Error)
		mockSvc.AssertExpectations(t)
	})

	t.Run("model failure", func(t *testing.T) {
		mockSvc.On("Ask", mock.Anything, int64(1), "hello").
			Return("", fmt.Errorf("%w: quota exceeded", service.ErrAIFailure)).Once()

		resp, err := app.Test(chatRequest(`{"message": "hello", "book_id": 1}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "AI Error: quota exceeded", body.Error)
		mockSvc.AssertExpectations(t)
	})
}
