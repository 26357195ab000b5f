package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Karimnasr7/el-bustan-clean/internal/auth"
	"github.com/Karimnasr7/el-bustan-clean/internal/metrics"
	"github.com/Karimnasr7/el-bustan-clean/internal/middleware"
)

// maxRequestBody caps request bodies. Large enough for multipart uploads,
// small enough to bound memory per request.
const maxRequestBody = 32 << 20 // 32 MiB

// NewRouter creates the API router. Read endpoints are public; every
// mutating route sits behind the single token gate, password change
// included.
func (h *Handler) NewRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middleware.HTTPLogging(h.logger))
	r.Use(middleware.MaxBodySize(maxRequestBody))

	// Liveness/readiness (no auth)
	r.Get("/health", h.HandleHealth)
	r.Get("/ready", h.HandleReady)

	r.Route("/api", func(r chi.Router) {
		// Public reads
		r.Get("/articles", h.HandleListArticles)
		r.Get("/services", h.HandleListServices)
		r.Get("/before-after-gallery", h.HandleListGallery)
		r.Get("/animated-slider", h.HandleGetAnimatedSlider)
		r.Get("/sticky-scroll", h.HandleListSticky)
		r.Get("/sticky-scroll-reversed", h.HandleListStickyReversed)
		r.Get("/site-content", h.HandleGetSiteContent)

		// Login issues the session token
		r.Post("/login", h.HandleLogin)

		// Mutating routes (token auth)
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireToken(h.tokens))

			r.Post("/articles", h.HandleCreateArticle)
			r.Put("/articles", h.HandleUpdateArticle)
			r.Delete("/articles", h.HandleDeleteArticle)

			r.Post("/services", h.HandleCreateService)
			r.Put("/services", h.HandleUpdateService)
			r.Delete("/services", h.HandleDeleteService)

			r.Post("/before-after-gallery", h.HandleCreateGalleryItem)
			r.Put("/before-after-gallery", h.HandleUpdateGalleryItem)
			r.Delete("/before-after-gallery", h.HandleDeleteGalleryItem)

			r.Post("/animated-slider", h.HandleCreateSlide)
			r.Put("/animated-slider", h.HandleUpdateSlide)
			r.Delete("/animated-slider", h.HandleDeleteSlide)

			r.Post("/sticky-scroll", h.HandleCreateSticky)
			r.Put("/sticky-scroll", h.HandleUpdateSticky)
			r.Delete("/sticky-scroll", h.HandleDeleteSticky)

			r.Post("/sticky-scroll-reversed", h.HandleCreateStickyReversed)
			r.Put("/sticky-scroll-reversed", h.HandleUpdateStickyReversed)
			r.Delete("/sticky-scroll-reversed", h.HandleDeleteStickyReversed)

			r.Put("/site-content", h.HandleUpsertSiteContent)

			r.Post("/change-password", h.HandleChangePassword)
			r.Post("/upload", h.HandleUpload)
		})
	})

	return r
}
