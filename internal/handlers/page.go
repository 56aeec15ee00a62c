package handlers

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"healthmate-backend/internal/models"
	"healthmate-backend/internal/services"
)

type questionGroup struct {
	Name      string
	Questions []models.AssessmentQuestion
}

type pageData struct {
	Disclaimer  string
	ConfigError string
	Sections    []models.SectionInfo
	Moods       []services.Mood
	Groups      []questionGroup
}

// PageHandler renders the single page. With a configuration error only the
// error banner and the disclaimer are shown.
type PageHandler struct {
	tmpl *template.Template
	data pageData
}

func NewPageHandler(tmpl *template.Template, configErr error) *PageHandler {
	data := pageData{Disclaimer: services.Disclaimer}
	if configErr != nil {
		data.ConfigError = configErr.Error()
	} else {
		data.Sections = services.SectionInfos
		data.Moods = services.Moods
		data.Groups = groupQuestions()
	}
	return &PageHandler{tmpl: tmpl, data: data}
}

func groupQuestions() []questionGroup {
	groups := make([]questionGroup, 0, len(services.AssessmentGroups))
	for _, name := range services.AssessmentGroups {
		g := questionGroup{Name: name}
		for _, q := range services.AssessmentQuestions {
			if q.Group == name {
				g.Questions = append(g.Questions, q)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, h.data); err != nil {
		log.Printf("page render failed: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if h.data.ConfigError != "" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	buf.WriteTo(w)
}
