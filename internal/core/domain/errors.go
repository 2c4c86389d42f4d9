package domain

import "errors"

var (
	ErrMissingField       = errors.New("missing required field")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthRequired       = errors.New("login required")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// ErrPDFNotSupported is deliberately distinct from ErrUnsupportedFormat:
	// PDF is a recognized kind whose extraction is not built yet.
	ErrPDFNotSupported   = errors.New("PDF support coming soon — upload TXT or DOCX")
	ErrUnsupportedFormat = errors.New("unsupported file type: only TXT and DOCX allowed")
	ErrExtractionFailed  = errors.New("could not extract text from document")

	// ErrUpstream marks failures of the generative-language endpoint. The
	// upstream diagnostic, when present, is wrapped around it.
	ErrUpstream = errors.New("AI service unavailable. Please try again")
)
