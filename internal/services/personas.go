package services

import "healthmate-backend/internal/models"

// Personas are prepended to the user's text before every generation call.
const (
	SymptomCheckerPersona = "You are a helpful AI health assistant. Analyze symptoms and provide BRIEF guidance. " +
		"Use bullet points. Always remind users to consult healthcare professionals for serious concerns."

	MentalHealthPersona = "You are a compassionate mental health companion. Provide brief emotional support. " +
		"If someone mentions self-harm, encourage professional help immediately."

	HealthEducatorPersona = "You are a knowledgeable health educator. Provide brief, evidence-based health information. " +
		"Use bullet points."

	AnalystPersona = "You are an expert health analyst."
)

// Disclaimer is shown on every page.
const Disclaimer = "This is an AI assistant; consult a doctor for emergencies."

// DefaultMoodReply answers any mood outside the fixed button set.
const DefaultMoodReply = "Tell me more."

// Mood is one of the fixed mood buttons of the mental health section.
type Mood struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Reply string `json:"-"`
}

var Moods = []Mood{
	{Name: "Great", Emoji: "😊", Reply: "That's wonderful! 😊 What's making you feel great today?"},
	{Name: "Good", Emoji: "🙂", Reply: "Happy to hear that! 🙂 Keep nurturing those positive feelings."},
	{Name: "Okay", Emoji: "😐", Reply: "It's okay to just be okay. 😐 Anything on your mind?"},
	{Name: "Sad", Emoji: "😔", Reply: "I'm sorry you're feeling sad. 😔 It's okay to feel this way. Want to talk about it?"},
	{Name: "Anxious", Emoji: "😰", Reply: "Anxiety can be tough. 😰 Try breathing: In for 4, Hold for 4, Out for 4."},
}

// MoodReply returns the canned reply for a mood, or DefaultMoodReply.
func MoodReply(mood string) string {
	for _, m := range Moods {
		if m.Name == mood {
			return m.Reply
		}
	}
	return DefaultMoodReply
}

var HealthTips = []string{
	"💧 Drink at least 8 glasses of water daily.",
	"🏃 Aim for 30 minutes of moderate exercise daily.",
	"😴 Get 7-9 hours of quality sleep each night.",
	"🥗 Include colorful fruits and vegetables in your diet.",
	"🧘 Practice deep breathing for 5 minutes daily.",
}

// personaFor maps a chat section to its persona.
func personaFor(section models.Section) (string, bool) {
	switch section {
	case models.SectionSymptomChecker:
		return SymptomCheckerPersona, true
	case models.SectionMentalHealth:
		return MentalHealthPersona, true
	case models.SectionHealthTips:
		return HealthEducatorPersona, true
	}
	return "", false
}

// SectionInfos holds the display metadata for the menu, in menu order.
var SectionInfos = []models.SectionInfo{
	{
		ID:          models.SectionSymptomChecker,
		Title:       "AI Symptom Checker",
		Icon:        "🔍",
		Description: "Describe your symptoms, and I will provide basic guidance and recommendations.",
		Placeholder: "Ex: I have a headache and mild fever...",
		Spinner:     "Analyzing symptoms...",
	},
	{
		ID:          models.SectionMentalHealth,
		Title:       "Mental Health Companion",
		Icon:        "💙",
		Description: "How are you feeling today?",
		Placeholder: "Share your thoughts...",
		Spinner:     "Listening...",
	},
	{
		ID:          models.SectionHealthTips,
		Title:       "Health Education",
		Icon:        "📚",
		Description: "Ask the Health Educator",
		Placeholder: "Ask about nutrition, exercise, etc...",
		Spinner:     "Researching...",
	},
	{
		ID:          models.SectionHealthAssessment,
		Title:       "Health Assessment",
		Icon:        "📋",
		Description: "Answer these 10 lifestyle questions to get a personalized health summary.",
		Spinner:     "🤖 AI is analyzing your health habits...",
	},
}
