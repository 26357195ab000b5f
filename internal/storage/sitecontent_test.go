package storage

import (
	"context"
	"testing"
)

func TestSiteContentUpsert(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	content, err := s.GetSiteContent(ctx)
	if err != nil {
		t.Fatalf("GetSiteContent failed: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("expected empty map, got %v", content)
	}

	if err := s.UpsertSiteContent(ctx, "hero_title", "Sparkling Clean"); err != nil {
		t.Fatalf("UpsertSiteContent failed: %v", err)
	}
	if err := s.UpsertSiteContent(ctx, "footer_note", "All rights reserved"); err != nil {
		t.Fatalf("UpsertSiteContent failed: %v", err)
	}

	content, err = s.GetSiteContent(ctx)
	if err != nil {
		t.Fatalf("GetSiteContent failed: %v", err)
	}
	if content["hero_title"] != "Sparkling Clean" {
		t.Errorf("hero_title = %q", content["hero_title"])
	}
	if len(content) != 2 {
		t.Errorf("expected 2 entries, got %d", len(content))
	}

	// Upserting an existing key overwrites in place.
	if err := s.UpsertSiteContent(ctx, "hero_title", "Deep Clean Experts"); err != nil {
		t.Fatalf("UpsertSiteContent overwrite failed: %v", err)
	}

	content, err = s.GetSiteContent(ctx)
	if err != nil {
		t.Fatalf("GetSiteContent failed: %v", err)
	}
	if content["hero_title"] != "Deep Clean Experts" {
		t.Errorf("hero_title after overwrite = %q", content["hero_title"])
	}
	if len(content) != 2 {
		t.Errorf("overwrite grew the table: %d entries", len(content))
	}
}

func TestGetSiteContentKeys(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	if err := s.UpsertSiteContent(ctx, "animated_slider_title", "Our Work"); err != nil {
		t.Fatalf("UpsertSiteContent failed: %v", err)
	}

	content, err := s.GetSiteContentKeys(ctx, []string{"animated_slider_title", "animated_slider_cta_text"})
	if err != nil {
		t.Fatalf("GetSiteContentKeys failed: %v", err)
	}
	if content["animated_slider_title"] != "Our Work" {
		t.Errorf("animated_slider_title = %q", content["animated_slider_title"])
	}
	if _, ok := content["animated_slider_cta_text"]; ok {
		t.Error("missing key should be absent from the result")
	}
}

func TestSiteContentEmptyValueAllowed(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	if err := s.UpsertSiteContent(ctx, "promo_banner", ""); err != nil {
		t.Fatalf("UpsertSiteContent with empty value failed: %v", err)
	}

	content, err := s.GetSiteContent(ctx)
	if err != nil {
		t.Fatalf("GetSiteContent failed: %v", err)
	}
	value, ok := content["promo_banner"]
	if !ok {
		t.Fatal("promo_banner missing")
	}
	if value != "" {
		t.Errorf("promo_banner = %q, want empty string", value)
	}
}
