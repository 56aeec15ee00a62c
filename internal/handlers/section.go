package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"healthmate-backend/internal/middleware"
	"healthmate-backend/internal/models"
	"healthmate-backend/internal/render"
	"healthmate-backend/internal/services"
	"healthmate-backend/internal/session"
)

type conversationStore interface {
	Get(id uuid.UUID) *session.Conversation
}

type publisher interface {
	Publish(ctx context.Context, sessionID uuid.UUID, msg interface{})
}

// SectionHandler serves the chat-style sections: one handler per user action.
type SectionHandler struct {
	sections  *services.Sections
	store     conversationStore
	publisher publisher
}

func NewSectionHandler(sections *services.Sections, store conversationStore, publisher publisher) *SectionHandler {
	return &SectionHandler{
		sections:  sections,
		store:     store,
		publisher: publisher,
	}
}

func (h *SectionHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, services.SectionInfos)
}

// chatSection resolves the {section} URL param, writing the error response
// itself when the section is unknown or has no transcript.
func (h *SectionHandler) chatSection(w http.ResponseWriter, r *http.Request) (models.Section, bool) {
	section, err := models.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		handleServiceError(w, r, &services.NotFoundError{Message: "Section not found"})
		return "", false
	}
	if !section.IsChat() {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Section has no conversation", r))
		return "", false
	}
	return section, true
}

func (h *SectionHandler) Messages(w http.ResponseWriter, r *http.Request) {
	section, ok := h.chatSection(w, r)
	if !ok {
		return
	}

	conv := h.store.Get(middleware.GetSessionID(r.Context()))
	writeJSON(w, http.StatusOK, models.TranscriptResponse{
		Section:  section,
		Messages: render.Messages(conv.All(section)),
	})
}

func (h *SectionHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	section, ok := h.chatSection(w, r)
	if !ok {
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	sessionID := middleware.GetSessionID(r.Context())
	conv := h.store.Get(sessionID)

	reply, err := h.sections.Chat(r.Context(), conv, section, req.Text)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.respond(w, r, sessionID, conv, section, reply)
}

func (h *SectionHandler) SelectMood(w http.ResponseWriter, r *http.Request) {
	var req models.MoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	sessionID := middleware.GetSessionID(r.Context())
	conv := h.store.Get(sessionID)

	reply := h.sections.SelectMood(conv, req.Mood)
	h.respond(w, r, sessionID, conv, models.SectionMentalHealth, reply)
}

func (h *SectionHandler) RandomTip(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.TipResponse{Tip: h.sections.RandomTip()})
}

// respond returns the new reply with the full transcript and pushes the
// transcript to the session's other tabs.
func (h *SectionHandler) respond(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, conv *session.Conversation, section models.Section, reply models.Message) {
	messages := render.Messages(conv.All(section))

	if h.publisher != nil {
		h.publisher.Publish(r.Context(), sessionID, models.WSMessage{
			Type:    "transcript_update",
			Payload: models.TranscriptUpdate{Section: section, Messages: messages},
		})
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Reply:    render.Message(reply),
		Messages: messages,
	})
}
