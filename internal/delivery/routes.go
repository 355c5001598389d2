package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
)

type Handlers struct {
	Auth         *AuthHandler
	Documents    *DocumentHandler
	Brands       *BrandHandler
	Audience     *AudienceHandler
	Podcasts     *PodcastHandler
	Voiceovers   *VoiceoverHandler
	Infographics *InfographicHandler
	Shares       *ShareHandler
	Jobs         *JobHandler
}

func RegisterRoutes(r chi.Router, h Handlers, auth *domain.AuthService, log *logger.ZapLogger) {

	// public
	r.Post("/api/register", h.Auth.Register)
	r.Post("/api/login", h.Auth.Login)

	// session required
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(auth, log))

		r.Post("/api/logout", h.Auth.Logout)
		r.Get("/api/me", h.Auth.Me)

		r.Route("/api/documents", func(r chi.Router) {
			r.Post("/", h.Documents.Create)
			r.Get("/", h.Documents.List)
			r.Get("/{id}", h.Documents.Get)
			r.Put("/{id}", h.Documents.Update)
			r.Delete("/{id}", h.Documents.Delete)
		})

		r.Route("/api/brands", func(r chi.Router) {
			r.Post("/", h.Brands.Create)
			r.Get("/", h.Brands.List)
			r.Get("/{id}", h.Brands.Get)
			r.Put("/{id}", h.Brands.Update)
			r.Delete("/{id}", h.Brands.Delete)
		})

		r.Route("/api/segments", func(r chi.Router) {
			r.Post("/", h.Audience.CreateSegment)
			r.Get("/", h.Audience.ListSegments)
			r.Get("/{id}", h.Audience.GetSegment)
			r.Put("/{id}", h.Audience.UpdateSegment)
			r.Delete("/{id}", h.Audience.DeleteSegment)
		})

		r.Route("/api/personas", func(r chi.Router) {
			r.Post("/", h.Audience.CreatePersona)
			r.Get("/", h.Audience.ListPersonas)
			r.Get("/{id}", h.Audience.GetPersona)
			r.Put("/{id}", h.Audience.UpdatePersona)
			r.Delete("/{id}", h.Audience.DeletePersona)
		})

		r.Route("/api/podcasts", func(r chi.Router) {
			r.Post("/", h.Podcasts.Create)
			r.Get("/", h.Podcasts.List)
			r.Get("/{id}", h.Podcasts.Get)
			r.Put("/{id}", h.Podcasts.Update)
			r.Delete("/{id}", h.Podcasts.Delete)
			r.Post("/{id}/generate", h.Podcasts.Generate)
			r.Post("/{id}/generate-audio", h.Podcasts.GenerateAudio)
			r.Get("/{id}/audio", h.Podcasts.Audio)
			registerShareRoutes(r, h.Shares, models.KindPodcast)
		})

		r.Route("/api/voiceovers", func(r chi.Router) {
			r.Post("/", h.Voiceovers.Create)
			r.Get("/", h.Voiceovers.List)
			r.Get("/{id}", h.Voiceovers.Get)
			r.Put("/{id}", h.Voiceovers.Update)
			r.Delete("/{id}", h.Voiceovers.Delete)
			r.Post("/{id}/generate", h.Voiceovers.Generate)
			r.Get("/{id}/audio", h.Voiceovers.Audio)
			registerShareRoutes(r, h.Shares, models.KindVoiceover)
		})

		r.Route("/api/infographics", func(r chi.Router) {
			r.Post("/", h.Infographics.Create)
			r.Get("/", h.Infographics.List)
			r.Get("/{id}", h.Infographics.Get)
			r.Put("/{id}", h.Infographics.Update)
			r.Delete("/{id}", h.Infographics.Delete)
			r.Post("/{id}/generate", h.Infographics.Generate)
			r.Get("/{id}/image", h.Infographics.Image)
			registerShareRoutes(r, h.Shares, models.KindInfographic)
		})

		r.Route("/api/jobs", func(r chi.Router) {
			r.Get("/", h.Jobs.List)
			r.Get("/{id}", h.Jobs.Get)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

func registerShareRoutes(r chi.Router, h *ShareHandler, kind models.ContentKind) {
	r.Post("/{id}/collaborators", h.Add(kind))
	r.Get("/{id}/collaborators", h.List(kind))
	r.Delete("/{id}/collaborators/{userID}", h.Remove(kind))
}
