package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrEmptyResponse is returned when the service answers without any text,
// typically because every candidate was blocked.
var ErrEmptyResponse = errors.New("the model returned no text")

// Generator is the text-generation boundary: one prompt in, one text out.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Result is either generated text or the failure that prevented it.
type Result struct {
	Text string
	Err  error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

// Reply is the user-visible form of the result. Failures become
// "Error: <detail>" and are shown in place of an answer.
func (r Result) Reply() string {
	if r.Err != nil {
		return "Error: " + r.Err.Error()
	}
	return r.Text
}

// GenerationClient combines a persona with the latest user text and makes
// exactly one call to the Generator. Prior turns are never included.
type GenerationClient struct {
	gen Generator
}

func NewGenerationClient(gen Generator) *GenerationClient {
	return &GenerationClient{gen: gen}
}

// BuildPrompt joins the persona and user text the way every section sends them.
func BuildPrompt(persona, userText string) string {
	var b strings.Builder
	b.WriteString(persona)
	b.WriteString("\n\n")
	b.WriteString("User Query: ")
	b.WriteString(userText)
	return b.String()
}

// Generate never returns an error; callers inspect the Result.
func (c *GenerationClient) Generate(ctx context.Context, persona, userText string) (res Result) {
	prompt := BuildPrompt(persona, userText)

	defer func() {
		if p := recover(); p != nil {
			res = Result{Err: fmt.Errorf("generation panicked: %v", p)}
		}
		if res.Err != nil {
			log.Printf("Generation failed (prompt %d chars): %v", len(prompt), res.Err)
		}
	}()

	text, err := c.gen.GenerateContent(ctx, prompt)
	if err != nil {
		return Result{Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return Result{Err: ErrEmptyResponse}
	}

	return Result{Text: text}
}
