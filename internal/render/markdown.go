// Package render turns model output into HTML for the page.
package render

import (
	"bytes"
	"html"
	"log"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"healthmate-backend/internal/models"
)

// Raw HTML in the source is dropped (goldmark's default, unsafe mode off).
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Markdown converts text to HTML. On failure the escaped text is returned.
func Markdown(text string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		log.Printf("markdown render failed: %v", err)
		return Plain(text)
	}
	return buf.String()
}

// Plain escapes text for display as typed, keeping line breaks.
func Plain(text string) string {
	return "<p>" + strings.ReplaceAll(html.EscapeString(text), "\n", "<br>\n") + "</p>"
}

// Message renders assistant text as markdown. User text is shown as typed.
func Message(m models.Message) models.MessageView {
	body := Markdown(m.Text)
	if m.Role == models.RoleUser {
		body = Plain(m.Text)
	}
	return models.MessageView{
		Role:      m.Role,
		Text:      m.Text,
		HTML:      body,
		CreatedAt: m.CreatedAt,
	}
}

func Messages(msgs []models.Message) []models.MessageView {
	out := make([]models.MessageView, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, Message(m))
	}
	return out
}
