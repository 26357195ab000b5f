// Package api provides the HTTP handlers for the public site endpoints and
// the token-gated admin operations.
package api

import (
	"context"
	"io"
	"log/slog"

	"github.com/Karimnasr7/el-bustan-clean/internal/auth"
	"github.com/Karimnasr7/el-bustan-clean/internal/storage"
)

// Store is the persistence interface the handlers depend on.
type Store interface {
	// Health check
	Ping(ctx context.Context) error

	// Credential operations
	GetAdminCredential(ctx context.Context) (*storage.AdminCredential, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error

	// Articles
	ListArticles(ctx context.Context) ([]*storage.Article, error)
	CreateArticle(ctx context.Context, a *storage.Article) (*storage.Article, error)
	UpdateArticle(ctx context.Context, a *storage.Article) (*storage.Article, error)
	DeleteArticle(ctx context.Context, id int64) error

	// Services
	ListServices(ctx context.Context) ([]*storage.Service, error)
	CreateService(ctx context.Context, svc *storage.Service) (*storage.Service, error)
	UpdateService(ctx context.Context, svc *storage.Service) (*storage.Service, error)
	DeleteService(ctx context.Context, id int64) error

	// Before/after gallery
	ListGalleryItems(ctx context.Context) ([]*storage.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, g *storage.GalleryItem) (*storage.GalleryItem, error)
	UpdateGalleryItem(ctx context.Context, g *storage.GalleryItem) (*storage.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id int64) error

	// Animated slider
	ListSlides(ctx context.Context) ([]*storage.Slide, error)
	CreateSlide(ctx context.Context, sl *storage.Slide) (*storage.Slide, error)
	UpdateSlide(ctx context.Context, sl *storage.Slide) (*storage.Slide, error)
	DeleteSlide(ctx context.Context, id int64) error

	// Sticky-scroll sections
	ListStickyItems(ctx context.Context, sec storage.StickySection) ([]*storage.StickyItem, error)
	CreateStickyItem(ctx context.Context, sec storage.StickySection, it *storage.StickyItem) (*storage.StickyItem, error)
	UpdateStickyItem(ctx context.Context, sec storage.StickySection, it *storage.StickyItem) (*storage.StickyItem, error)
	DeleteStickyItem(ctx context.Context, sec storage.StickySection, id int64) error

	// Site text
	GetSiteContent(ctx context.Context) (map[string]string, error)
	GetSiteContentKeys(ctx context.Context, keys []string) (map[string]string, error)
	UpsertSiteContent(ctx context.Context, key, value string) error
}

// Uploader is the blob storage interface the upload relay depends on.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// Handler provides the API endpoints.
type Handler struct {
	store    Store
	tokens   *auth.TokenService
	uploader Uploader
	logger   *slog.Logger
}

// NewHandler creates an API handler.
func NewHandler(store Store, tokens *auth.TokenService, uploader Uploader, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		store:    store,
		tokens:   tokens,
		uploader: uploader,
		logger:   logger,
	}
}
