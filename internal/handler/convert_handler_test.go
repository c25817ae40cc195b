package handler

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"pdf-md-translator/internal/domain"
	apperrors "pdf-md-translator/pkg/errors"
)

func TestConvert_MissingFile(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	rr := s.do(uploadRequest(t, id, "", nil, "just a note"))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Please upload a PDF first.") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
	if s.converter.calls != 0 {
		t.Fatalf("expected no conversion, got %d calls", s.converter.calls)
	}
}

func TestConvert_RejectsNonPDF(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	rr := s.do(uploadRequest(t, id, "notes.txt", []byte("hello"), ""))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	if s.converter.calls != 0 {
		t.Fatalf("expected no conversion, got %d calls", s.converter.calls)
	}
}

func TestConvert_TooLarge(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	rr := s.do(uploadRequest(t, id, "big.pdf", bytes.Repeat([]byte("x"), 3<<20), ""))

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status %d, got %d", http.StatusRequestEntityTooLarge, rr.Code)
	}
}

func TestConvert_Success(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)

	rr := s.do(uploadRequest(t, id, "report.pdf", []byte("%PDF-1.4"), "please check page 1"))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	var resp convertResponse
	decodeBody(t, rr, &resp)
	if resp.Document == nil || resp.Document.Content != "## Page 1\n\nHello" {
		t.Fatalf("unexpected document: %+v", resp.Document)
	}
	if resp.HTML == "" {
		t.Fatalf("expected rendered preview")
	}
	if resp.State != domain.SessionHasMarkdown {
		t.Fatalf("expected state has_markdown, got %s", resp.State)
	}

	session, _ := s.sessions.Get(id)
	if session.View().Note != "please check page 1" {
		t.Fatalf("expected note to be stored, got %q", session.View().Note)
	}
}

func TestConvert_FailureClearsMarkdownKeepsCredentials(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)
	s.do(jsonRequest(t, http.MethodPut, "/api/v1/session/credentials/deepl", id, credentialRequest{APIKey: "k"}))

	// first conversion succeeds
	s.do(uploadRequest(t, id, "a.pdf", []byte("%PDF"), ""))

	s.converter.err = apperrors.NewParseFailedError("Failed to parse PDF", bytes.ErrTooLarge)
	rr := s.do(uploadRequest(t, id, "b.pdf", []byte("garbage"), ""))

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"type":"parse_failed"`) {
		t.Fatalf("expected parse_failed type, got %s", rr.Body.String())
	}

	session, _ := s.sessions.Get(id)
	if session.State() != domain.SessionIdle {
		t.Fatalf("expected idle state after failed conversion, got %s", session.State())
	}
	if !session.HasCredential(domain.ProviderDeepL) {
		t.Fatalf("expected credentials to survive a failed conversion")
	}
}

func TestConvert_ParseUnavailable(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)
	s.converter.err = apperrors.NewParseUnavailableError("PDF backend unavailable", nil)

	rr := s.do(uploadRequest(t, id, "a.pdf", []byte("%PDF"), ""))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rr.Code)
	}
}

func TestConvert_CancelledKeepsPreviousMarkdown(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.createSession(t)
	s.do(uploadRequest(t, id, "a.pdf", []byte("%PDF"), ""))

	s.converter.err = context.Canceled
	rr := s.do(uploadRequest(t, id, "b.pdf", []byte("%PDF"), ""))

	if rr.Code != http.StatusRequestTimeout {
		t.Fatalf("expected status %d, got %d", http.StatusRequestTimeout, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Conversion cancelled") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}

	session, _ := s.sessions.Get(id)
	if session.State() != domain.SessionHasMarkdown || session.Markdown().Content != "## Page 1\n\nHello" {
		t.Fatalf("expected previous markdown to survive a cancelled conversion, state %s", session.State())
	}
}
