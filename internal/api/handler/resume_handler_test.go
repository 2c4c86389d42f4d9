package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/resumesync/resume-api/internal/core/domain"
	"github.com/resumesync/resume-api/internal/core/ports"
)

type stubResumeService struct {
	summarizeFn func(ctx context.Context, resumeText string) (string, error)
	analyzeFn   func(ctx context.Context, filename string, data []byte) (*ports.AnalysisOutput, error)
	matchFn     func(ctx context.Context, resumeText, jobDescription string) (string, error)
}

func (s *stubResumeService) Summarize(ctx context.Context, resumeText string) (string, error) {
	return s.summarizeFn(ctx, resumeText)
}

func (s *stubResumeService) Analyze(ctx context.Context, filename string, data []byte) (*ports.AnalysisOutput, error) {
	return s.analyzeFn(ctx, filename, data)
}

func (s *stubResumeService) Match(ctx context.Context, resumeText, jobDescription string) (string, error) {
	return s.matchFn(ctx, resumeText, jobDescription)
}

func newUploadContext(t *testing.T, filename string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(uploadFieldName, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("transient upload left behind: %v", entries)
	}
}

func TestResumeHandler_Upload_Success(t *testing.T) {
	dir := t.TempDir()

	stub := &stubResumeService{
		analyzeFn: func(ctx context.Context, filename string, data []byte) (*ports.AnalysisOutput, error) {
			if filename != "resume.txt" {
				t.Fatalf("unexpected filename: %s", filename)
			}
			if string(data) != "my resume text" {
				t.Fatalf("unexpected payload: %q", data)
			}
			return &ports.AnalysisOutput{Analysis: "looks strong", RawText: string(data)}, nil
		},
	}
	h := NewResumeHandler(stub, dir)

	c, rec := newUploadContext(t, "resume.txt", []byte("my resume text"))
	if err := h.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Resume analyzed successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["analysis"] != "looks strong" || resp["rawText"] != "my resume text" {
		t.Fatalf("unexpected payload: %v", resp)
	}

	assertDirEmpty(t, dir)
}

func TestResumeHandler_Upload_TempFileRemovedOnFailure(t *testing.T) {
	dir := t.TempDir()

	stub := &stubResumeService{
		analyzeFn: func(ctx context.Context, filename string, data []byte) (*ports.AnalysisOutput, error) {
			return nil, domain.ErrUpstream
		},
	}
	h := NewResumeHandler(stub, dir)

	c, _ := newUploadContext(t, "resume.txt", []byte("whatever"))
	if err := h.Upload(c); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}

	assertDirEmpty(t, dir)
}

func TestResumeHandler_Upload_PDFRejectionLeavesNoFile(t *testing.T) {
	dir := t.TempDir()

	stub := &stubResumeService{
		analyzeFn: func(ctx context.Context, filename string, data []byte) (*ports.AnalysisOutput, error) {
			return nil, domain.ErrPDFNotSupported
		},
	}
	h := NewResumeHandler(stub, dir)

	c, _ := newUploadContext(t, "resume.pdf", []byte("%PDF-1.7"))
	if err := h.Upload(c); !errors.Is(err, domain.ErrPDFNotSupported) {
		t.Fatalf("expected ErrPDFNotSupported, got %v", err)
	}

	assertDirEmpty(t, dir)
}

func TestResumeHandler_Upload_NoFile(t *testing.T) {
	h := NewResumeHandler(&stubResumeService{}, t.TempDir())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("unrelated", "value")
	_ = mw.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Upload(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestResumeHandler_Summarize(t *testing.T) {
	stub := &stubResumeService{
		summarizeFn: func(ctx context.Context, resumeText string) (string, error) {
			if resumeText != "resume body" {
				t.Fatalf("unexpected text: %q", resumeText)
			}
			return "• bullet", nil
		},
	}
	h := NewResumeHandler(stub, "")

	c, rec := newJSONContext(t, "/summarize", `{"resumeText":"resume body"}`)
	if err := h.Summarize(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["summary"] != "• bullet" {
		t.Fatalf("unexpected summary: %v", resp)
	}
}

func TestResumeHandler_Summarize_MissingText(t *testing.T) {
	h := NewResumeHandler(&stubResumeService{}, "")

	c, _ := newJSONContext(t, "/summarize", `{}`)
	err := h.Summarize(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestResumeHandler_Match(t *testing.T) {
	stub := &stubResumeService{
		matchFn: func(ctx context.Context, resumeText, jobDescription string) (string, error) {
			if resumeText != "r" || jobDescription != "jd" {
				t.Fatalf("unexpected args: %q %q", resumeText, jobDescription)
			}
			return "Match Percentage: 64%", nil
		},
	}
	h := NewResumeHandler(stub, "")

	c, rec := newJSONContext(t, "/match", `{"resumeText":"r","jobDescription":"jd"}`)
	if err := h.Match(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["matchResult"] != "Match Percentage: 64%" {
		t.Fatalf("unexpected result: %v", resp)
	}
}

func TestResumeHandler_Match_MissingField(t *testing.T) {
	h := NewResumeHandler(&stubResumeService{}, "")

	c, _ := newJSONContext(t, "/match", `{"resumeText":"r"}`)
	err := h.Match(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
