package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookchat/internal/dto"
	"bookchat/internal/service"
	serviceMocks "bookchat/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestDocumentHandler_UploadPDF(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	handler := NewDocumentHandler(mockSvc, zap.NewNop())

	app := fiber.New()
	app.Post("/api/upload", handler.UploadPDF)

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Ingest", mock.Anything, "book.pdf", []byte("pdf-bytes")).
			Return(&dto.UploadResponse{ID: 7, Filename: "book.pdf", Status: "processed"}, nil).Once()

		resp, err := app.Test(uploadRequest(t, "book.pdf", []byte("pdf-bytes")))
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result dto.UploadResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, int64(7), result.ID)
		assert.Equal(t, "book.pdf", result.Filename)
		assert.Equal(t, "processed", result.Status)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing file field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "File is required", body.Error)
	})

	t.Run("wrong file type", func(t *testing.T) {
		mockSvc.On("Ingest", mock.Anything, "notes.txt", mock.Anything).
			Return(nil, service.ErrNotPDF).Once()

		resp, err := app.Test(uploadRequest(t, "notes.txt", []byte("text")))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "File must be a PDF", body.Error)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no extractable text", func(t *testing.T) {
		mockSvc.On("Ingest", mock.Anything, "scan.pdf", mock.Anything).
			Return(nil, service.ErrNoText).Once()

		resp, err := app.Test(uploadRequest(t, "scan.pdf", []byte("pdf")))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Could not extract text from PDF", body.Error)
		mockSvc.AssertExpectations(t)
	})

	t.Run("persistence failure", func(t *testing.T) {
		mockSvc.On("Ingest", mock.Anything, "book.pdf", mock.Anything).
			Return(nil, errors.New("failed to create document record: db down")).Once()

		resp, err := app.Test(uploadRequest(t, "book.pdf", []byte("pdf")))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body.Error, "db down")
		mockSvc.AssertExpectations(t)
	})
}
