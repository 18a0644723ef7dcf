package resumes

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/extract"
	"resume-tailor/internal/llm"
	"resume-tailor/internal/render"
	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
	"resume-tailor/internal/shared/util"
	"resume-tailor/internal/tailor"
)

const (
	defaultMaxUploadSize   = 10 * 1000 * 1000
	maxJobDescriptionBytes = 1 << 20
	docxMIME               = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc           *Service
	MaxUploadSize int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadSize int64) *Handler {
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}
	return &Handler{Svc: svc, MaxUploadSize: maxUploadSize}
}

// RegisterRoutes attaches resume routes. aiLimit guards the endpoints that
// call the completion provider and may be nil.
func (h *Handler) RegisterRoutes(r gin.IRouter, aiLimit gin.HandlerFunc) {
	ai := []gin.HandlerFunc{}
	if aiLimit != nil {
		ai = append(ai, aiLimit)
	}

	r.POST("/upload", h.upload)
	r.POST("/resumes/:id/tailor", append(ai, h.tailor)...)
	r.POST("/resumes/:id/cover-letter", append(ai, h.coverLetter)...)
	r.GET("/resumes/:id", h.get)
	r.GET("/resumes/:id/download", h.download)
	r.GET("/resumes/:id/cover-letter/download", h.downloadCoverLetter)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds upload limit", gin.H{"max_bytes": h.MaxUploadSize})
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > h.MaxUploadSize {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds upload limit", gin.H{"max_bytes": h.MaxUploadSize})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	rec, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.ResumeIDKey, rec.ID)

	respond.OK(c, UploadResponse{ID: rec.ID, Filename: rec.OriginalFilename})
}

func (h *Handler) tailor(c *gin.Context) {
	id, ok := resumeID(c)
	if !ok {
		return
	}
	jd, ok := jobDescription(c)
	if !ok {
		return
	}

	out, err := h.Svc.Tailor(c.Request.Context(), id, jd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.StatusTransitionKey, string(out.Previous)+"->"+string(out.Status))

	respond.OK(c, OutcomeResponse{Status: out.Status, UserName: out.UserName})
}

func (h *Handler) coverLetter(c *gin.Context) {
	id, ok := resumeID(c)
	if !ok {
		return
	}
	jd, ok := jobDescription(c)
	if !ok {
		return
	}

	out, err := h.Svc.CoverLetter(c.Request.Context(), id, jd)
	if err != nil {
		writeError(c, err)
		return
	}

	respond.OK(c, OutcomeResponse{Status: out.Status, UserName: out.UserName})
}

func (h *Handler) get(c *gin.Context) {
	id, ok := resumeID(c)
	if !ok {
		return
	}

	rec, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	respond.OK(c, toResponse(rec))
}

func (h *Handler) download(c *gin.Context) {
	id, ok := resumeID(c)
	if !ok {
		return
	}

	doc, err := h.Svc.ResumeDocument(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	sendDocument(c, doc)
}

func (h *Handler) downloadCoverLetter(c *gin.Context) {
	id, ok := resumeID(c)
	if !ok {
		return
	}

	doc, err := h.Svc.CoverLetterDocument(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	sendDocument(c, doc)
}

func sendDocument(c *gin.Context, doc Download) {
	c.Header("Content-Disposition", "attachment; filename=\""+doc.Filename+"\"")
	c.Header("ETag", "\""+util.ContentHash(doc.Content)+"\"")
	c.Data(http.StatusOK, docxMIME, doc.Content)
}

func resumeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume id", nil)
		return 0, false
	}
	c.Set(middleware.ResumeIDKey, id)
	return id, true
}

func jobDescription(c *gin.Context) (string, bool) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxJobDescriptionBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read job description", nil)
		return "", false
	}
	if len(body) > maxJobDescriptionBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "job description exceeds limit", gin.H{"max_bytes": maxJobDescriptionBytes})
		return "", false
	}
	jd := strings.TrimSpace(string(body))
	if jd == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job description is required", nil)
		return "", false
	}
	return jd, true
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, ErrNotReady):
		respond.Error(c, http.StatusBadRequest, "not_ready", err.Error(), nil)
	case errors.Is(err, ErrInvalidTransition):
		respond.Error(c, http.StatusConflict, "invalid_transition", err.Error(), nil)
	case errors.Is(err, extract.ErrUnsupportedFormat):
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", err.Error(), nil)
	case errors.Is(err, extract.ErrExtraction):
		respond.Error(c, http.StatusInternalServerError, "extraction_failed", "failed to extract resume text", nil)
	case errors.Is(err, llm.ErrProvider):
		respond.Error(c, http.StatusBadGateway, "provider_error", "completion provider failed", nil)
	case errors.Is(err, tailor.ErrTailoring):
		respond.Error(c, http.StatusBadGateway, "tailoring_failed", "provider returned an unusable document", nil)
	case errors.Is(err, render.ErrRender):
		respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to render document", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "internal server error", nil)
	}
}
