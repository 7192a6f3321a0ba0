package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPDFService_ExtractText_InvalidInput(t *testing.T) {
	svc := NewPDFService(zap.NewNop())

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty input", data: nil},
		{name: "not a pdf", data: []byte("just some plain text")},
		{name: "truncated header", data: []byte("%PDF-1.4")},
		{name: "binary garbage", data: []byte{0x25, 0x50, 0x44, 0x46, 0xff, 0x00, 0x13, 0x37}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "", svc.ExtractText(tt.data))
		})
	}
}
