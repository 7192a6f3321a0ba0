package service

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// TextExtractor pulls plain text out of an uploaded file.
type TextExtractor interface {
	ExtractText(data []byte) string
}

type PDFService struct {
	logger *zap.Logger
}

func NewPDFService(logger *zap.Logger) *PDFService {
	return &PDFService{logger: logger}
}

// ExtractText parses data as a PDF and concatenates the plain text of every
// page, separated by newlines. It returns an empty string when the file cannot
// be parsed or contains no extractable text (e.g. scanned images); extraction
// problems never reach the caller.
func (s *PDFService) ExtractText(data []byte) (text string) {
	// The pdf reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("PDF extraction panicked", zap.Any("panic", r))
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		s.logger.Error("Failed to parse PDF", zap.Error(err))
		return ""
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			s.logger.Warn("Failed to extract page text", zap.Int("page", i), zap.Error(err))
			continue
		}

		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(sb.String()) == "" {
		return ""
	}

	return sb.String()
}
