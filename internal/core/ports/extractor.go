package ports

import (
	"context"

	"github.com/resumesync/resume-api/internal/core/domain"
)

// TextExtractor converts an uploaded document of a declared kind into plain
// text. Unsupported kinds fail with domain.ErrUnsupportedFormat (or
// domain.ErrPDFNotSupported for PDF, which is recognized but not built yet).
type TextExtractor interface {
	Extract(data []byte, kind domain.DocumentKind) (string, error)
}

// ImageTextRecognizer is the OCR capability the PDF path could adopt once
// PDF extraction lands. No implementation exists today; it is declared so
// the extractor can accept one without an API break later.
type ImageTextRecognizer interface {
	RecognizeText(ctx context.Context, image []byte) (string, error)
}
