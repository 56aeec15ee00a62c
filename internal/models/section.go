package models

import (
	"fmt"
	"time"
)

// Section is one of the four top-level application modes.
type Section string

const (
	SectionSymptomChecker   Section = "symptom_checker"
	SectionMentalHealth     Section = "mental_health"
	SectionHealthTips       Section = "health_tips"
	SectionHealthAssessment Section = "health_assessment"
)

// Sections lists every section in menu order.
var Sections = []Section{
	SectionSymptomChecker,
	SectionMentalHealth,
	SectionHealthTips,
	SectionHealthAssessment,
}

// ParseSection maps a path value onto a known section.
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", s)
}

// IsChat reports whether the section keeps a conversation transcript.
func (s Section) IsChat() bool {
	switch s {
	case SectionSymptomChecker, SectionMentalHealth, SectionHealthTips:
		return true
	}
	return false
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single transcript entry. It is never modified once appended.
type Message struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// SectionInfo is the display metadata the page and API expose per section.
type SectionInfo struct {
	ID          Section `json:"id"`
	Title       string  `json:"title"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	Placeholder string  `json:"placeholder,omitempty"`
	Spinner     string  `json:"spinner"`
}
