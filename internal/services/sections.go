package services

import (
	"context"
	"math/rand/v2"
	"strings"

	"healthmate-backend/internal/models"
)

// Transcript is the conversation state of one session.
type Transcript interface {
	Append(section models.Section, role models.Role, text string) models.Message
	All(section models.Section) []models.Message
	Do(fn func())
}

// Sections implements the interaction pattern of each application section.
type Sections struct {
	gen  *GenerationClient
	pick func(n int) int
}

func NewSections(gen Generator) *Sections {
	return &Sections{
		gen:  NewGenerationClient(gen),
		pick: rand.IntN,
	}
}

// Chat records the user's text, asks the section persona for a reply and
// records that reply. Only the new text is sent, never earlier turns. The
// whole exchange is one action, so a session has at most one generation call
// in flight.
func (s *Sections) Chat(ctx context.Context, t Transcript, section models.Section, text string) (models.Message, error) {
	persona, ok := personaFor(section)
	if !ok {
		return models.Message{}, &ValidationError{Fields: map[string]string{
			"section": "section does not accept chat messages",
		}}
	}
	if strings.TrimSpace(text) == "" {
		return models.Message{}, &ValidationError{Fields: map[string]string{"text": "is required"}}
	}

	var reply models.Message
	t.Do(func() {
		t.Append(section, models.RoleUser, text)
		res := s.gen.Generate(ctx, persona, text)
		reply = t.Append(section, models.RoleAssistant, res.Reply())
	})
	return reply, nil
}

// SelectMood answers a mood button with a canned reply. The button press
// itself is not recorded as a user message.
func (s *Sections) SelectMood(t Transcript, mood string) models.Message {
	var reply models.Message
	t.Do(func() {
		reply = t.Append(models.SectionMentalHealth, models.RoleAssistant, MoodReply(mood))
	})
	return reply
}

// RandomTip draws uniformly, with replacement, from HealthTips.
func (s *Sections) RandomTip() string {
	return HealthTips[s.pick(len(HealthTips))]
}

// Assess builds the analyst prompt from one form submission and returns the
// report. Nothing is retained afterwards.
func (s *Sections) Assess(ctx context.Context, answers models.AssessmentAnswers) (string, error) {
	answers, err := NormalizeAssessment(answers)
	if err != nil {
		return "", err
	}

	res := s.gen.Generate(ctx, AnalystPersona, BuildAssessmentPrompt(answers))
	return res.Reply(), nil
}
