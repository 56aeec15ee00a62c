package handlers

import (
	"encoding/json"
	"net/http"

	"healthmate-backend/internal/models"
	"healthmate-backend/internal/render"
	"healthmate-backend/internal/services"
)

type AssessmentHandler struct {
	sections *services.Sections
}

func NewAssessmentHandler(sections *services.Sections) *AssessmentHandler {
	return &AssessmentHandler{sections: sections}
}

func (h *AssessmentHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, services.AssessmentQuestions)
}

// Submit generates a report for one form submission. Nothing is stored.
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var answers models.AssessmentAnswers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	report, err := h.sections.Assess(r.Context(), answers)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.AssessmentResponse{
		Report:     report,
		ReportHTML: render.Markdown(report),
	})
}
