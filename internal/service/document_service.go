package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bookchat/internal/dto"
	"bookchat/internal/models"
	"bookchat/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotPDF = errors.New("File must be a PDF")
	ErrNoText = errors.New("Could not extract text from PDF")
)

// DocumentService ingests uploaded PDFs: validate, extract, persist.
type DocumentService interface {
	Ingest(ctx context.Context, filename string, data []byte) (*dto.UploadResponse, error)
}

type documentService struct {
	docRepo   repository.DocumentRepository
	extractor TextExtractor
	uploadDir string
	logger    *zap.Logger
}

func NewDocumentService(
	docRepo repository.DocumentRepository,
	extractor TextExtractor,
	uploadDir string,
	logger *zap.Logger,
) DocumentService {
	// Create upload directory if it doesn't exist
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	return &documentService{
		docRepo:   docRepo,
		extractor: extractor,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// Ingest validates the upload, extracts its text and stores a new document.
// Nothing is persisted when validation or extraction fails.
func (s *documentService) Ingest(ctx context.Context, filename string, data []byte) (*dto.UploadResponse, error) {
	if !strings.HasSuffix(filename, ".pdf") {
		return nil, ErrNotPDF
	}

	text := s.extractor.ExtractText(data)
	if text == "" {
		return nil, ErrNoText
	}

	doc := &models.Document{
		Filename:   filename,
		Content:    sanitizeUTF8(text),
		UploadedAt: time.Now().UTC(),
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create document record: %w", err)
	}

	s.retainOriginal(filename, data)

	s.logger.Info("Document ingested",
		zap.Int64("id", doc.ID),
		zap.String("filename", doc.Filename),
		zap.Int("content_length", len(doc.Content)),
	)

	return &dto.UploadResponse{
		ID:       doc.ID,
		Filename: doc.Filename,
		Status:   "processed",
	}, nil
}

// retainOriginal keeps the raw upload on disk under a unique name. Best effort:
// the document record is already committed, so a failed write only logs.
func (s *documentService) retainOriginal(filename string, data []byte) {
	name := uuid.New().String() + filepath.Ext(filename)
	path := filepath.Join(s.uploadDir, name)

	if err := os.WriteFile(path, data, 0644); err != nil {
		s.logger.Warn("Failed to retain original upload",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}
