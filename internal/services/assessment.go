package services

import (
	"fmt"
	"strings"

	"healthmate-backend/internal/models"
)

const (
	StressMin     = 1
	StressMax     = 10
	StressDefault = 5
)

const (
	groupRoutine  = "Daily Routine & Energy"
	groupHabits   = "Habits & Diet"
	groupWellness = "Mental Wellness"
)

// AssessmentQuestions is the fixed form, in the order answers are serialized.
var AssessmentQuestions = []models.AssessmentQuestion{
	{Number: 1, Field: "energy", Label: "Daily Energy Levels", Group: groupRoutine, Kind: "select",
		Options: []string{"High/Energetic", "Moderate/Consistent", "Low/Fatigued", "Ups and Downs"}},
	{Number: 2, Field: "screen_time", Label: "Screen Time (Daily)", Group: groupRoutine, Kind: "select",
		Options: []string{"Less than 2 hours", "2-4 hours", "4-8 hours", "8+ hours"}},
	{Number: 3, Field: "outdoors", Label: "Time spent outdoors/nature", Group: groupRoutine, Kind: "select",
		Options: []string{"Daily", "Few times a week", "Rarely", "Never"}},
	{Number: 4, Field: "social", Label: "Social Connection Frequency", Group: groupRoutine, Kind: "select",
		Options: []string{"Daily", "Weekly", "Monthly", "Rarely"}},
	{Number: 5, Field: "activity", Label: "Physical Activity", Group: groupHabits, Kind: "select_slider",
		Options: []string{"Sedentary", "Light", "Moderate", "Active", "Athlete"}},
	{Number: 6, Field: "water", Label: "Daily Water Intake", Group: groupHabits, Kind: "select",
		Options: []string{"Less than 1L", "1-2 Liters", "2-3 Liters", "More than 3L"}},
	{Number: 7, Field: "sleep", Label: "Sleep Quality", Group: groupHabits, Kind: "select",
		Options: []string{"Restful", "Okay", "Disturbed", "Insomnia"}},
	{Number: 8, Field: "diet", Label: "Diet Quality", Group: groupHabits, Kind: "select",
		Options: []string{"Mostly Home Cooked", "Balanced", "Often Processed/Fast Food", "Unhealthy"}},
	{Number: 9, Field: "stress", Label: "Current Stress Level (1=Low, 10=High)", Group: groupWellness, Kind: "slider",
		Min: StressMin, Max: StressMax, Default: StressDefault},
	{Number: 10, Field: "mood", Label: "General Mood Lately", Group: groupWellness, Kind: "select",
		Options: []string{"Happy/Content", "Neutral/Okay", "Stressed/Anxious", "Low/Sad"}},
}

// AssessmentGroups lists the form groups in display order.
var AssessmentGroups = []string{groupRoutine, groupHabits, groupWellness}

// NormalizeAssessment checks every categorical answer against its closed
// option list and clamps the stress slider into range. A zero stress value
// means the slider was left untouched.
func NormalizeAssessment(a models.AssessmentAnswers) (models.AssessmentAnswers, error) {
	values := map[string]string{
		"energy":      a.Energy,
		"screen_time": a.ScreenTime,
		"outdoors":    a.Outdoors,
		"social":      a.Social,
		"activity":    a.Activity,
		"water":       a.Water,
		"sleep":       a.Sleep,
		"diet":        a.Diet,
		"mood":        a.Mood,
	}

	fields := map[string]string{}
	for _, q := range AssessmentQuestions {
		if q.Kind == "slider" {
			continue
		}
		if !contains(q.Options, values[q.Field]) {
			fields[q.Field] = fmt.Sprintf("must be one of: %s", strings.Join(q.Options, ", "))
		}
	}
	if len(fields) > 0 {
		return a, &ValidationError{Fields: fields}
	}

	switch {
	case a.Stress == 0:
		a.Stress = StressDefault
	case a.Stress < StressMin:
		a.Stress = StressMin
	case a.Stress > StressMax:
		a.Stress = StressMax
	}

	return a, nil
}

// BuildAssessmentPrompt wraps serialized answers in the consultant request.
func BuildAssessmentPrompt(a models.AssessmentAnswers) string {
	var b strings.Builder
	b.WriteString("Act as a professional health consultant. Analyze this user profile based on 10 lifestyle markers:\n")
	b.WriteString(a.Serialize())
	b.WriteString("Please provide a friendly health report including Routine Analysis, Lifestyle Score, and 3 Actionable Tips.")
	return b.String()
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
