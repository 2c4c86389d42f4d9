package ports

import "context"

// AnalysisOutput is the result of running the reviewer critique over an
// uploaded resume. RawText is the extracted plain text the critique was
// built from; neither field is persisted.
type AnalysisOutput struct {
	Analysis string
	RawText  string
}

// ResumeService exposes the three AI-backed resume operations.
type ResumeService interface {
	Summarize(ctx context.Context, resumeText string) (string, error)
	Analyze(ctx context.Context, filename string, data []byte) (*AnalysisOutput, error)
	Match(ctx context.Context, resumeText, jobDescription string) (string, error)
}
