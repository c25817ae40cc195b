package domain

import "time"

// MarkdownDocument is the result of converting a PDF, one heading block per page
type MarkdownDocument struct {
	Content    string    `json:"markdown"`
	PageCount  int       `json:"page_count"`
	SourceName string    `json:"source_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsEmpty reports whether the document carries no Markdown
func (d *MarkdownDocument) IsEmpty() bool {
	return d == nil || d.Content == ""
}
