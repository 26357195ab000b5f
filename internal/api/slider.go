package api

import (
	"errors"
	"net/http"

	"github.com/Karimnasr7/el-bustan-clean/internal/storage"
)

// Site-content keys that feed the slider section heading and CTA.
const (
	sliderTitleKey   = "animated_slider_title"
	sliderCTATextKey = "animated_slider_cta_text"
	sliderCTALinkKey = "animated_slider_cta_link"
)

// animatedSliderResponse is the composite GET /api/animated-slider payload:
// the active slides plus the section heading and call-to-action, with
// fallbacks when the site text has not been edited yet.
type animatedSliderResponse struct {
	Slides  []*storage.Slide `json:"slides"`
	Title   string           `json:"title"`
	CTAText string           `json:"ctaText"`
	CTALink string           `json:"ctaLink"`
}

// slidePayload is the write shape for slides. IsActive defaults to true
// when the field is absent.
type slidePayload struct {
	ID        int64               `json:"id"`
	ImgURL    string              `json:"img_url"`
	Texts     []storage.SlideText `json:"texts"`
	SortOrder int                 `json:"sort_order"`
	IsActive  *bool               `json:"is_active"`
}

func (p *slidePayload) toSlide() *storage.Slide {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return &storage.Slide{
		ID:        p.ID,
		ImgURL:    p.ImgURL,
		Texts:     p.Texts,
		SortOrder: p.SortOrder,
		IsActive:  active,
	}
}

// HandleGetAnimatedSlider returns the slider slides together with the
// section text. Public.
func (h *Handler) HandleGetAnimatedSlider(w http.ResponseWriter, r *http.Request) {
	slides, err := h.store.ListSlides(r.Context())
	if err != nil {
		h.logger.Error("failed to list slides", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch slider data")
		return
	}

	content, err := h.store.GetSiteContentKeys(r.Context(),
		[]string{sliderTitleKey, sliderCTATextKey, sliderCTALinkKey})
	if err != nil {
		h.logger.Error("failed to load slider site content", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch slider data")
		return
	}

	resp := animatedSliderResponse{
		Slides:  slides,
		Title:   content[sliderTitleKey],
		CTAText: content[sliderCTATextKey],
		CTALink: content[sliderCTALinkKey],
	}
	if resp.Title == "" {
		resp.Title = "Default Title"
	}
	if resp.CTAText == "" {
		resp.CTAText = "Contact Us"
	}
	if resp.CTALink == "" {
		resp.CTALink = "#contact"
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCreateSlide inserts a new slide after validating its structured texts.
func (h *Handler) HandleCreateSlide(w http.ResponseWriter, r *http.Request) {
	var p slidePayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if p.ImgURL == "" {
		writeError(w, http.StatusBadRequest, "missing required field: img_url")
		return
	}
	if err := storage.ValidateSlideTexts(p.Texts); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.store.CreateSlide(r.Context(), p.toSlide())
	if err != nil {
		h.logger.Error("failed to create slide", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create slide")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// HandleUpdateSlide overwrites an existing slide identified by body id.
func (h *Handler) HandleUpdateSlide(w http.ResponseWriter, r *http.Request) {
	var p slidePayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if p.ID <= 0 || p.ImgURL == "" {
		writeError(w, http.StatusBadRequest, "missing required fields: id, img_url")
		return
	}
	if err := storage.ValidateSlideTexts(p.Texts); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.store.UpdateSlide(r.Context(), p.toSlide())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "slide not found")
			return
		}
		h.logger.Error("failed to update slide", "error", err, "id", p.ID)
		writeError(w, http.StatusInternalServerError, "failed to update slide")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// HandleDeleteSlide deletes a slide identified by body id.
func (h *Handler) HandleDeleteSlide(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.ID <= 0 {
		writeError(w, http.StatusBadRequest, "missing item id")
		return
	}

	if err := h.store.DeleteSlide(r.Context(), req.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "slide not found")
			return
		}
		h.logger.Error("failed to delete slide", "error", err, "id", req.ID)
		writeError(w, http.StatusInternalServerError, "failed to delete slide")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "slide deleted successfully"})
}
