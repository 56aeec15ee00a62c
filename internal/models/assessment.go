package models

import "fmt"

// AssessmentAnswers holds one submission of the 10-question lifestyle form.
// It only lives for the duration of a single request.
type AssessmentAnswers struct {
	Energy     string `json:"energy"`
	ScreenTime string `json:"screen_time"`
	Outdoors   string `json:"outdoors"`
	Social     string `json:"social"`
	Activity   string `json:"activity"`
	Water      string `json:"water"`
	Sleep      string `json:"sleep"`
	Diet       string `json:"diet"`
	Stress     int    `json:"stress"`
	Mood       string `json:"mood"`
}

// Serialize renders the answers as the fixed free-text block sent to the analyst.
// Label order matches the question order.
func (a AssessmentAnswers) Serialize() string {
	return fmt.Sprintf(
		"Energy: %s. Screen Time: %s. Outdoor Time: %s. Social: %s.\n"+
			"Activity: %s. Water: %s. Sleep: %s. Diet: %s.\n"+
			"Stress: %d/10. Mood: %s.\n",
		a.Energy, a.ScreenTime, a.Outdoors, a.Social,
		a.Activity, a.Water, a.Sleep, a.Diet,
		a.Stress, a.Mood,
	)
}

// AssessmentQuestion describes one control of the assessment form.
// Options is empty for the numeric slider.
type AssessmentQuestion struct {
	Number  int      `json:"number"`
	Field   string   `json:"field"`
	Label   string   `json:"label"`
	Group   string   `json:"group"`
	Kind    string   `json:"kind"` // "select" | "select_slider" | "slider"
	Options []string `json:"options,omitempty"`
	Min     int      `json:"min,omitempty"`
	Max     int      `json:"max,omitempty"`
	Default int      `json:"default,omitempty"`
}

type AssessmentResponse struct {
	Report     string `json:"report"`
	ReportHTML string `json:"report_html"`
}
