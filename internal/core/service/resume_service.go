package service

import (
	"context"
	"time"

	"github.com/resumesync/resume-api/internal/api/metrics"
	"github.com/resumesync/resume-api/internal/core/domain"
	"github.com/resumesync/resume-api/internal/core/ports"
)

// ResumeService composes text extraction and the completion client behind
// the three resume operations. When mockMode is set, Match short-circuits
// with a canned result before any network call.
type ResumeService struct {
	extractor ports.TextExtractor
	client    ports.CompletionClient
	mockMode  bool
}

func NewResumeService(extractor ports.TextExtractor, client ports.CompletionClient, mockMode bool) *ResumeService {
	return &ResumeService{extractor: extractor, client: client, mockMode: mockMode}
}

func (s *ResumeService) Summarize(ctx context.Context, resumeText string) (string, error) {
	if resumeText == "" {
		return "", domain.ErrMissingField
	}
	return s.complete(ctx, "summarize", summarizePrompt(resumeText))
}

func (s *ResumeService) Analyze(ctx context.Context, filename string, data []byte) (*ports.AnalysisOutput, error) {
	kind := domain.KindFromFilename(filename)

	text, err := s.extractor.Extract(data, kind)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(string(kind), "error").Inc()
		return nil, err
	}
	metrics.UploadsTotal.WithLabelValues(string(kind), "ok").Inc()

	analysis, err := s.complete(ctx, "analyze", analyzePrompt(text))
	if err != nil {
		return nil, err
	}

	return &ports.AnalysisOutput{Analysis: analysis, RawText: text}, nil
}

func (s *ResumeService) Match(ctx context.Context, resumeText, jobDescription string) (string, error) {
	if resumeText == "" || jobDescription == "" {
		return "", domain.ErrMissingField
	}

	if s.mockMode {
		metrics.AnalysisRequestsTotal.WithLabelValues("match", "mock").Inc()
		return mockMatchResult, nil
	}

	return s.complete(ctx, "match", matchPrompt(resumeText, jobDescription))
}

func (s *ResumeService) complete(ctx context.Context, operation, prompt string) (string, error) {
	start := time.Now()
	text, err := s.client.Complete(ctx, prompt)
	metrics.UpstreamRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AnalysisRequestsTotal.WithLabelValues(operation, "error").Inc()
		return "", err
	}
	metrics.AnalysisRequestsTotal.WithLabelValues(operation, "ok").Inc()
	return text, nil
}
