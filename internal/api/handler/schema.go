package handler

// --- Request / Response types ---

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type summarizeRequest struct {
	ResumeText string `json:"resumeText" validate:"required"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

type uploadResponse struct {
	Message  string `json:"message"`
	Analysis string `json:"analysis"`
	RawText  string `json:"rawText"`
}

type matchRequest struct {
	ResumeText     string `json:"resumeText"     validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
}

type matchResponse struct {
	MatchResult string `json:"matchResult"`
}

// errorResponse documents the standard error envelope for swagger; the
// actual rendering happens in the central error handler.
type errorResponse struct {
	Error string `json:"error"`
}
