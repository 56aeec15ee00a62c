package models

import "time"

// MessageView is a transcript entry as returned to the browser.
type MessageView struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	HTML      string    `json:"html"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest is the payload sent to a section's chat endpoint.
type ChatRequest struct {
	Text string `json:"text"`
}

// MoodRequest is sent when a mood button is pressed.
type MoodRequest struct {
	Mood string `json:"mood"`
}

// ChatResponse carries the new assistant reply and the full transcript.
type ChatResponse struct {
	Reply    MessageView   `json:"reply"`
	Messages []MessageView `json:"messages"`
}

type TranscriptResponse struct {
	Section  Section       `json:"section"`
	Messages []MessageView `json:"messages"`
}

type TipResponse struct {
	Tip string `json:"tip"`
}
