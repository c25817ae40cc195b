package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"pdf-md-translator/internal/domain"
)

const multipartMemory = 32 << 20

// ConvertHandler handles the PDF to Markdown action
type ConvertHandler struct {
	converter   domain.Converter
	renderer    domain.MarkdownRenderer
	maxFileSize int64
	logger      domain.Logger
}

// NewConvertHandler creates a new convert handler
func NewConvertHandler(converter domain.Converter, renderer domain.MarkdownRenderer, maxFileSize int64, logger domain.Logger) *ConvertHandler {
	return &ConvertHandler{
		converter:   converter,
		renderer:    renderer,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

type convertResponse struct {
	Document *domain.MarkdownDocument `json:"document"`
	HTML     string                   `json:"html,omitempty"`
	State    domain.SessionState      `json:"state"`
}

// Convert reads the uploaded PDF, converts it and stores the Markdown in the
// session. The optional note is kept in the session but never processed.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}

	// multipart overhead on top of the file itself
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+(1<<20))
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Please upload a PDF first.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Please upload a PDF first.")
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		originalName = "document.pdf"
	}
	if ext := strings.ToLower(filepath.Ext(originalName)); ext != ".pdf" {
		writeError(w, http.StatusBadRequest, "Unsupported file type. Allowed: PDF (.pdf).")
		return
	}
	if header.Size > h.maxFileSize {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	pdfBytes, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read upload", err, "session_id", session.ID)
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}
	note := strings.TrimSpace(r.FormValue("note"))

	end := session.BeginAction()
	defer end()

	doc, err := h.converter.Convert(r.Context(), pdfBytes, originalName)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// nothing was converted, the previous Markdown stays
		h.logger.Warn("Conversion cancelled", "session_id", session.ID, "error", err)
		writeError(w, http.StatusRequestTimeout, "Conversion cancelled")
		return
	}
	if err != nil {
		session.SetMarkdown(nil, note)
		writeAppError(w, err)
		return
	}
	session.SetMarkdown(doc, note)

	html, err := h.renderer.RenderHTML(doc.Content)
	if err != nil {
		h.logger.Warn("Markdown preview rendering failed", "error", err, "session_id", session.ID)
	}

	writeJSON(w, http.StatusOK, convertResponse{
		Document: doc,
		HTML:     html,
		State:    session.State(),
	})
}
