package services

import (
	"strings"
	"testing"

	"healthmate-backend/internal/models"
)

func validAnswers() models.AssessmentAnswers {
	return models.AssessmentAnswers{
		Energy:     "Low/Fatigued",
		ScreenTime: "8+ hours",
		Outdoors:   "Rarely",
		Social:     "Weekly",
		Activity:   "Light",
		Water:      "1-2 Liters",
		Sleep:      "Disturbed",
		Diet:       "Balanced",
		Stress:     7,
		Mood:       "Neutral/Okay",
	}
}

func TestAssessmentQuestions_Shape(t *testing.T) {
	if len(AssessmentQuestions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(AssessmentQuestions))
	}
	for i, q := range AssessmentQuestions {
		if q.Number != i+1 {
			t.Fatalf("question %d is numbered %d", i+1, q.Number)
		}
		if q.Kind == "slider" {
			if q.Number != 9 || q.Min != 1 || q.Max != 10 || q.Default != 5 {
				t.Fatalf("unexpected slider definition: %+v", q)
			}
			continue
		}
		if len(q.Options) < 4 || len(q.Options) > 5 {
			t.Fatalf("question %d has %d options", q.Number, len(q.Options))
		}
	}
}

func TestSerialize_FixedLabelOrder(t *testing.T) {
	got := validAnswers().Serialize()
	want := "Energy: Low/Fatigued. Screen Time: 8+ hours. Outdoor Time: Rarely. Social: Weekly.\n" +
		"Activity: Light. Water: 1-2 Liters. Sleep: Disturbed. Diet: Balanced.\n" +
		"Stress: 7/10. Mood: Neutral/Okay.\n"
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestNormalizeAssessment_ClampsStress(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 5},
		{-3, 1},
		{1, 1},
		{10, 10},
		{42, 10},
	}

	for _, tc := range tests {
		a := validAnswers()
		a.Stress = tc.in
		got, err := NormalizeAssessment(a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Stress != tc.want {
			t.Errorf("stress %d: expected %d, got %d", tc.in, tc.want, got.Stress)
		}
	}
}

func TestNormalizeAssessment_ReportsEveryBadField(t *testing.T) {
	a := validAnswers()
	a.Energy = ""
	a.Mood = "Ecstatic"

	_, err := NormalizeAssessment(a)
	vErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %v", vErr.Fields)
	}
	if !strings.Contains(vErr.Fields["mood"], "Happy/Content") {
		t.Fatalf("expected option list in message, got %q", vErr.Fields["mood"])
	}
}

func TestBuildAssessmentPrompt(t *testing.T) {
	prompt := BuildAssessmentPrompt(validAnswers())

	if !strings.Contains(prompt, validAnswers().Serialize()) {
		t.Fatalf("prompt must embed the serialized answers: %q", prompt)
	}
	for _, section := range []string{"Routine Analysis", "Lifestyle Score", "3 Actionable Tips"} {
		if !strings.Contains(prompt, section) {
			t.Fatalf("prompt must request %q", section)
		}
	}
}
