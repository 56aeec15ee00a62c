// Package session holds the per-browser conversation state. Nothing here
// outlives the process.
package session

import (
	"sync"
	"time"

	"healthmate-backend/internal/models"
)

// Conversation is the set of section transcripts belonging to one session.
// Transcripts are append-only and kept in chronological order.
type Conversation struct {
	// action serializes whole user actions; mu guards the transcripts.
	action   sync.Mutex
	mu       sync.Mutex
	sections map[models.Section][]models.Message
	now      func() time.Time
}

func NewConversation() *Conversation {
	return &Conversation{
		sections: make(map[models.Section][]models.Message),
		now:      time.Now,
	}
}

// Do runs fn as one action of the session. Actions of the same session never
// overlap, so each submission's messages stay adjacent in the transcript.
func (c *Conversation) Do(fn func()) {
	c.action.Lock()
	defer c.action.Unlock()
	fn()
}

func (c *Conversation) Append(section models.Section, role models.Role, text string) models.Message {
	msg := models.Message{Role: role, Text: text, CreatedAt: c.now()}

	c.mu.Lock()
	c.sections[section] = append(c.sections[section], msg)
	c.mu.Unlock()

	return msg
}

// All returns a copy of the section's transcript.
func (c *Conversation) All(section models.Section) []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	msgs := c.sections[section]
	out := make([]models.Message, len(msgs))
	copy(out, msgs)
	return out
}
