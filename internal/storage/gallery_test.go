package storage

import (
	"context"
	"errors"
	"testing"
)

func TestGalleryLifecycle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateGalleryItem(ctx, &GalleryItem{
		Title:          "Living Room",
		BeforeImageURL: "https://cdn.example.com/before.jpg",
		AfterImageURL:  "https://cdn.example.com/after.jpg",
		SortOrder:      1,
		IsActive:       true,
	})
	if err != nil {
		t.Fatalf("CreateGalleryItem failed: %v", err)
	}
	if created.ID <= 0 {
		t.Errorf("expected positive ID, got %d", created.ID)
	}

	created.Title = "Living Room (renovated)"
	if _, err := s.UpdateGalleryItem(ctx, created); err != nil {
		t.Fatalf("UpdateGalleryItem failed: %v", err)
	}

	items, err := s.ListGalleryItems(ctx)
	if err != nil {
		t.Fatalf("ListGalleryItems failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Title != "Living Room (renovated)" {
		t.Errorf("Title = %q", items[0].Title)
	}

	if err := s.DeleteGalleryItem(ctx, created.ID); err != nil {
		t.Fatalf("DeleteGalleryItem failed: %v", err)
	}
	if err := s.DeleteGalleryItem(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestListGalleryItemsFiltersAndOrders(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Inserted out of display order, with one inactive item mixed in.
	seeds := []*GalleryItem{
		{Title: "third", SortOrder: 3, IsActive: true},
		{Title: "hidden", SortOrder: 2, IsActive: false},
		{Title: "first", SortOrder: 1, IsActive: true},
		{Title: "second", SortOrder: 2, IsActive: true},
	}
	for _, g := range seeds {
		if _, err := s.CreateGalleryItem(ctx, g); err != nil {
			t.Fatalf("CreateGalleryItem %q failed: %v", g.Title, err)
		}
	}

	items, err := s.ListGalleryItems(ctx)
	if err != nil {
		t.Fatalf("ListGalleryItems failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 active items, got %d", len(items))
	}
	for i, want := range []string{"first", "second", "third"} {
		if items[i].Title != want {
			t.Errorf("items[%d].Title = %q, want %q", i, items[i].Title, want)
		}
	}
}
