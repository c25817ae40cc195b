package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pdf-md-translator/internal/domain"
	"pdf-md-translator/internal/repository"
)

type fakeConverter struct {
	doc   *domain.MarkdownDocument
	err   error
	calls int
}

func (f *fakeConverter) Convert(ctx context.Context, pdfBytes []byte, sourceName string) (*domain.MarkdownDocument, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

type fakeDispatcher struct {
	result      *domain.TranslationResult
	err         error
	calls       int
	lastReq     domain.TranslationRequest
	lastCreds   map[domain.ProviderKind]string
	noOpEnglish bool
}

func (f *fakeDispatcher) Translate(ctx context.Context, req domain.TranslationRequest, credentials map[domain.ProviderKind]string) (*domain.TranslationResult, error) {
	f.calls++
	f.lastReq = req
	f.lastCreds = credentials
	if f.noOpEnglish && req.TargetLanguage == domain.SourceLanguage {
		return &domain.TranslationResult{TargetLanguage: domain.SourceLanguage, Provider: req.Provider, NoOp: true}, nil
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeDispatcher) Providers() []domain.ProviderKind {
	return []domain.ProviderKind{domain.ProviderDeepL, domain.ProviderLLM}
}

type fakeRenderer struct{}

func (fakeRenderer) RenderHTML(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

type testServer struct {
	handler    http.Handler
	sessions   *repository.MemorySessionRepository
	converter  *fakeConverter
	dispatcher *fakeDispatcher
}

func newTestServer(t *testing.T, seed map[domain.ProviderKind]string) *testServer {
	t.Helper()
	logger := NewMockHandlerLogger()
	sessions := repository.NewMemorySessionRepository(time.Hour, logger)
	converter := &fakeConverter{doc: &domain.MarkdownDocument{Content: "## Page 1\n\nHello", PageCount: 1}}
	dispatcher := &fakeDispatcher{
		result:      &domain.TranslationResult{Text: "Bonjour", TargetLanguage: "French", Provider: domain.ProviderDeepL},
		noOpEnglish: true,
	}

	router := NewRouter(
		NewSessionHandler(sessions, seed, logger),
		NewConvertHandler(converter, fakeRenderer{}, 1<<20, logger),
		NewTranslateHandler(dispatcher, fakeRenderer{}, logger),
		NewSessionMiddleware(sessions, logger).Middleware,
		[]string{"http://localhost:8080"},
	)
	return &testServer{
		handler:    router,
		sessions:   sessions,
		converter:  converter,
		dispatcher: dispatcher,
	}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

// createSession returns the id of a new session
func (s *testServer) createSession(t *testing.T) string {
	t.Helper()
	rr := s.do(httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	var view domain.SessionView
	decodeBody(t, rr, &view)
	if view.ID == "" {
		t.Fatalf("expected session id in response")
	}
	return view.ID
}

func jsonRequest(t *testing.T, method, path, sessionID string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}
	return req
}

func uploadRequest(t *testing.T, sessionID, filename string, content []byte, note string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = fw.Write(content)
	}
	if note != "" {
		_ = mw.WriteField("note", note)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(SessionHeader, sessionID)
	return req
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
}
