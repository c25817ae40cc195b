package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"pdf-md-translator/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, fields ...interface{}) {}
func (nopLogger) Error(msg string, err error, fields ...interface{}) {}
func (nopLogger) Debug(msg string, fields ...interface{}) {}
func (nopLogger) Warn(msg string, fields ...interface{}) {}

// fakePageSource returns canned pages or an error
type fakePageSource struct {
	pages []string
	err   error
	calls int
}

func (f *fakePageSource) Name() string { return "fake" }

func (f *fakePageSource) Pages(ctx context.Context, pdfBytes []byte) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]string, len(f.pages))
	copy(out, f.pages)
	return out, nil
}

// fakeTranslator records the calls it receives
type fakeTranslator struct {
	mu      sync.Mutex
	out     string
	err     error
	calls   int
	lastIn  string
	lastTgt string
}

func (f *fakeTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastIn = text
	f.lastTgt = target
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

// buildTestPDF writes a minimal uncompressed PDF with one page per entry.
// Empty entries produce a page with an empty content stream.
func buildTestPDF(pages ...string) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := ""
	for i := range pages {
		kids += fmt.Sprintf("%d 0 R ", 4+2*i)
	}
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, len(pages)))
	obj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, text := range pages {
		obj(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			5+2*i,
		))
		content := ""
		if text != "" {
			content = fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
		}
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

// stubConfig implements domain.Config for provider wiring tests
type stubConfig struct {
	deeplURL string
}

func (c *stubConfig) GetServerPort() string { return "0" }
func (c *stubConfig) GetMaxFileSize() int64 { return 1 << 20 }
func (c *stubConfig) GetLogLevel() string { return "debug" }
func (c *stubConfig) GetPDFBackend() string { return PageSourceNative }
func (c *stubConfig) GetDeepLURL() string { return c.deeplURL }
func (c *stubConfig) GetLLMModel() string { return "o3-mini" }
func (c *stubConfig) GetLLMBaseURL() string { return "" }
func (c *stubConfig) GetSessionTTL() time.Duration { return time.Minute }
func (c *stubConfig) GetAllowedOrigins() []string { return nil }
func (c *stubConfig) GetSeedCredentials() map[domain.ProviderKind]string {
	return map[domain.ProviderKind]string{}
}
