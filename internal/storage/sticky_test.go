package storage

import (
	"context"
	"errors"
	"testing"
)

func TestStickyItemLifecycle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateStickyItem(ctx, StickyDefault, &StickyItem{
		Title:       "Office Cleaning",
		Description: []string{"First paragraph.", "Second paragraph."},
		ImageURL:    "https://cdn.example.com/office.jpg",
		SortOrder:   1,
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("CreateStickyItem failed: %v", err)
	}
	if created.ID <= 0 {
		t.Errorf("expected positive ID, got %d", created.ID)
	}

	items, err := s.ListStickyItems(ctx, StickyDefault)
	if err != nil {
		t.Fatalf("ListStickyItems failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if len(items[0].Description) != 2 || items[0].Description[1] != "Second paragraph." {
		t.Errorf("Description = %#v", items[0].Description)
	}

	created.Description = []string{"Rewritten."}
	updated, err := s.UpdateStickyItem(ctx, StickyDefault, created)
	if err != nil {
		t.Fatalf("UpdateStickyItem failed: %v", err)
	}
	if len(updated.Description) != 1 {
		t.Errorf("expected 1 paragraph after update, got %d", len(updated.Description))
	}

	if err := s.DeleteStickyItem(ctx, StickyDefault, created.ID); err != nil {
		t.Fatalf("DeleteStickyItem failed: %v", err)
	}
	if err := s.DeleteStickyItem(ctx, StickyDefault, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestStickySectionsAreIsolated(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	forward, err := s.CreateStickyItem(ctx, StickyDefault, &StickyItem{
		Title: "forward", Description: []string{"p"}, IsActive: true,
	})
	if err != nil {
		t.Fatalf("CreateStickyItem(default) failed: %v", err)
	}
	if _, err := s.CreateStickyItem(ctx, StickyReversed, &StickyItem{
		Title: "reversed", Description: []string{"p"}, IsActive: true,
	}); err != nil {
		t.Fatalf("CreateStickyItem(reversed) failed: %v", err)
	}

	items, err := s.ListStickyItems(ctx, StickyDefault)
	if err != nil {
		t.Fatalf("ListStickyItems(default) failed: %v", err)
	}
	if len(items) != 1 || items[0].Title != "forward" {
		t.Errorf("default section = %+v", items)
	}

	items, err = s.ListStickyItems(ctx, StickyReversed)
	if err != nil {
		t.Fatalf("ListStickyItems(reversed) failed: %v", err)
	}
	if len(items) != 1 || items[0].Title != "reversed" {
		t.Errorf("reversed section = %+v", items)
	}

	// Deleting in one section must not reach into the other.
	if err := s.DeleteStickyItem(ctx, StickyReversed, forward.ID); err == nil {
		items, _ := s.ListStickyItems(ctx, StickyDefault)
		if len(items) != 1 {
			t.Error("delete in reversed section removed a default-section row")
		}
	}
}

func TestStickyUnknownSectionRejected(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	if _, err := s.ListStickyItems(ctx, StickySection("users; DROP TABLE articles")); err == nil {
		t.Error("expected error for unknown section")
	}
}

func TestValidateStickyDescription(t *testing.T) {
	if err := ValidateStickyDescription([]string{"one", "two"}); err != nil {
		t.Errorf("valid description rejected: %v", err)
	}
	if err := ValidateStickyDescription(nil); err == nil {
		t.Error("empty description should fail validation")
	}
	if err := ValidateStickyDescription([]string{"one", ""}); err == nil {
		t.Error("empty paragraph should fail validation")
	}
}
