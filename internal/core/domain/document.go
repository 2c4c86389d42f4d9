package domain

import (
	"path/filepath"
	"strings"
)

// DocumentKind is the extension-derived classification of an uploaded resume.
// It selects the extraction strategy; the payload bytes are never sniffed.
type DocumentKind string

const (
	KindTXT   DocumentKind = "txt"
	KindDOCX  DocumentKind = "docx"
	KindPDF   DocumentKind = "pdf"
	KindOther DocumentKind = "other"
)

// KindFromFilename derives the declared kind from the file extension,
// case-insensitively. Anything unrecognized maps to KindOther.
func KindFromFilename(name string) DocumentKind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return KindTXT
	case ".docx":
		return KindDOCX
	case ".pdf":
		return KindPDF
	default:
		return KindOther
	}
}
