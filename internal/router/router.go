package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"healthmate-backend/internal/handlers"
	"healthmate-backend/internal/middleware"
	"healthmate-backend/internal/websocket"
	"healthmate-backend/web"
)

func base(frontendURL string) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/static/*", web.StaticHandler())

	return r
}

func New(
	sessions *middleware.Sessions,
	pageHandler *handlers.PageHandler,
	sectionHandler *handlers.SectionHandler,
	assessmentHandler *handlers.AssessmentHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := base(frontendURL)

	r.With(sessions.Middleware).Get("/", pageHandler.Index)

	r.Route("/api/v1", func(r chi.Router) {
		// The websocket authenticates with the session cookie itself.
		r.Get("/ws", wsHub.HandleWebSocket)

		r.Group(func(r chi.Router) {
			r.Use(sessions.Middleware)

			// ──── Chat Sections ────
			r.Route("/sections", func(r chi.Router) {
				r.Get("/", sectionHandler.List)
				r.Get("/{section}/messages", sectionHandler.Messages)
				r.Post("/{section}/messages", sectionHandler.PostMessage)
			})

			r.Post("/mental-health/mood", sectionHandler.SelectMood)
			r.Get("/health-tips/random", sectionHandler.RandomTip)

			// ──── Assessment ────
			r.Route("/assessment", func(r chi.Router) {
				r.Get("/questions", assessmentHandler.Questions)
				r.Post("/", assessmentHandler.Submit)
			})
		})
	})

	return r
}

// NewUnconfigured serves only the error page while the API key is missing.
// No section is usable and nothing can reach the generation service.
func NewUnconfigured(pageHandler *handlers.PageHandler, message, frontendURL string) http.Handler {
	r := base(frontendURL)

	r.Get("/", pageHandler.Index)
	r.Handle("/api/v1/*", handlers.Unconfigured(message))

	return r
}
