// Package extract converts uploaded resume documents into plain text.
//
// TXT payloads pass through untouched. DOCX payloads are opened as an OOXML
// archive and the visible paragraph text is flattened in document order,
// discarding formatting, images and layout. PDF is a recognized kind whose
// extraction is not built yet and is rejected with a distinct error.
package extract

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/resumesync/resume-api/internal/core/domain"
	"github.com/resumesync/resume-api/internal/core/ports"
)

// Extractor implements ports.TextExtractor.
type Extractor struct {
	// ocr is the future extension point for the PDF path. It is accepted
	// but never invoked; see ports.ImageTextRecognizer.
	ocr ports.ImageTextRecognizer
}

// New returns an Extractor. recognizer may be nil; no extraction path uses
// it yet.
func New(recognizer ports.ImageTextRecognizer) *Extractor {
	return &Extractor{ocr: recognizer}
}

func (e *Extractor) Extract(data []byte, kind domain.DocumentKind) (string, error) {
	switch kind {
	case domain.KindTXT:
		return string(data), nil
	case domain.KindDOCX:
		return extractDocx(data)
	case domain.KindPDF:
		return "", domain.ErrPDFNotSupported
	default:
		return "", domain.ErrUnsupportedFormat
	}
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	defer doc.Close()

	text, err := flattenDocumentXML(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	return text, nil
}

// flattenDocumentXML walks word/document.xml and concatenates the character
// data inside <w:t> runs, one line per <w:p> paragraph.
func flattenDocumentXML(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var (
		b      strings.Builder
		inText bool
		line   strings.Builder
	)

	flushLine := func() {
		if line.Len() == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line.String())
		line.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				flushLine()
			}
		case xml.CharData:
			if inText {
				line.Write(t)
			}
		}
	}
	flushLine()

	return b.String(), nil
}
