package extract

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrUnsupportedType is returned for MIME types no registered extractor
// handles (PDF/DOCX extraction lives in a separate service).
var ErrUnsupportedType = errors.New("unsupported file type")

// Extractor turns an uploaded file into plain text.
type Extractor interface {
	ExtractText(data []byte, mimeType string) (string, error)
}

type PlainText struct{}

func NewPlainText() PlainText {
	return PlainText{}
}

func (PlainText) ExtractText(data []byte, mimeType string) (string, error) {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	switch mt {
	case "text/plain", "text/markdown", "":
	default:
		return "", ErrUnsupportedType
	}

	if !utf8.Valid(data) {
		return "", ErrUnsupportedType
	}
	return string(data), nil
}
