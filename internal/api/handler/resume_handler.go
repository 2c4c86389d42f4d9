package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/resumesync/resume-api/internal/core/ports"
)

// uploadFieldName is the multipart form field carrying the resume document.
const uploadFieldName = "resume"

// ResumeHandler handles the summarize, upload and match routes.
type ResumeHandler struct {
	service ports.ResumeService
	// uploadDir is where uploads are spooled for the request lifetime.
	uploadDir string
}

func NewResumeHandler(service ports.ResumeService, uploadDir string) *ResumeHandler {
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	return &ResumeHandler{service: service, uploadDir: uploadDir}
}

// Summarize condenses resume text into bullet points.
//
// @Summary      Summarize resume text
// @Tags         resume
// @Accept       json
// @Produce      json
// @Param        body  body      summarizeRequest  true  "Resume text"
// @Success      200   {object}  summarizeResponse
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /summarize [post]
func (h *ResumeHandler) Summarize(c echo.Context) error {
	var req summarizeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	summary, err := h.service.Summarize(c.Request().Context(), req.ResumeText)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summarizeResponse{Summary: summary})
}

// Upload accepts a resume document and returns the AI critique.
//
// @Summary      Analyze an uploaded resume
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Resume file (.txt or .docx)"
// @Success      200     {object}  uploadResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Failure      502     {object}  errorResponse
// @Security     BearerAuth
// @Router       /upload [post]
func (h *ResumeHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile(uploadFieldName)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	}

	path, err := h.spool(fileHeader)
	if err != nil {
		return fmt.Errorf("spool upload: %w", err)
	}
	// The transient file must be gone when the request completes, on every
	// exit path. The defer runs even when extraction or the upstream call
	// fails, or the caller has already disconnected.
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	out, err := h.service.Analyze(c.Request().Context(), fileHeader.Filename, data)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, uploadResponse{
		Message:  "Resume analyzed successfully",
		Analysis: out.Analysis,
		RawText:  out.RawText,
	})
}

// Match scores resume text against a job description.
//
// @Summary      Match resume to job description
// @Tags         resume
// @Accept       json
// @Produce      json
// @Param        body  body      matchRequest  true  "Resume text and job description"
// @Success      200   {object}  matchResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Security     BearerAuth
// @Router       /match [post]
func (h *ResumeHandler) Match(c echo.Context) error {
	var req matchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Match(c.Request().Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, matchResponse{MatchResult: result})
}

// spool writes the uploaded part to a uuid-named file in uploadDir and
// returns its path. The caller owns removal.
func (h *ResumeHandler) spool(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(fileHeader.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
