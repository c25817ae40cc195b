package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldmarkRenderer_Headings(t *testing.T) {
	html, err := NewGoldmarkRenderer().RenderHTML("## Page 1\n\nHello")
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>Page 1</h2>")
	assert.Contains(t, html, "<p>Hello</p>")
}

func TestGoldmarkRenderer_EscapesRawHTML(t *testing.T) {
	html, err := NewGoldmarkRenderer().RenderHTML("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
