package service

import "fmt"

// Prompt templates for the three resume operations. The match template pins
// an exact output layout so the frontend can render it without parsing JSON.

func summarizePrompt(resumeText string) string {
	return fmt.Sprintf("Summarize this resume in concise bullet points:\n%s", resumeText)
}

func analyzePrompt(resumeText string) string {
	return fmt.Sprintf(`You are an AI resume reviewer.
Analyze the resume and provide:
1. Short professional summary
2. Key strengths
3. Missing skills
4. Resume improvement suggestions

Resume:
%s`, resumeText)
}

func matchPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an AI recruiter.

Compare the RESUME and the JOB DESCRIPTION.
Return the result in this EXACT format:

Match Percentage: XX%%

Strong Matches:
- ...

Missing Skills:
- ...

Improvement Suggestions:
- ...

RESUME:
%s

JOB DESCRIPTION:
%s`, resumeText, jobDescription)
}

// mockMatchResult is the canned reply served when mock mode is enabled, for
// demos and tests that must not reach the network.
const mockMatchResult = `
Match Score: 82%

Strong Matches:
• JavaScript
• Node.js
• REST APIs

Missing Skills:
• Docker
• Cloud

Verdict:
Good internship fit.
`
