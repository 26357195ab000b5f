package storage

import (
	"context"
	"fmt"
)

// ListGalleryItems returns active before/after pairs in display order.
// Returns empty slice if no items exist.
func (s *SQLiteStorage) ListGalleryItems(ctx context.Context) ([]*GalleryItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, before_image_url, after_image_url, sort_order, is_active
		 FROM before_after_gallery
		 WHERE is_active = TRUE
		 ORDER BY sort_order ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query gallery items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var items []*GalleryItem
	for rows.Next() {
		var g GalleryItem
		if err := rows.Scan(&g.ID, &g.Title, &g.BeforeImageURL, &g.AfterImageURL, &g.SortOrder, &g.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan gallery row: %w", err)
		}
		items = append(items, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery items: %w", err)
	}

	if items == nil {
		items = make([]*GalleryItem, 0)
	}

	return items, nil
}

// CreateGalleryItem inserts a new before/after pair and returns it with its assigned ID.
func (s *SQLiteStorage) CreateGalleryItem(ctx context.Context, g *GalleryItem) (*GalleryItem, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO before_after_gallery (title, before_image_url, after_image_url, sort_order, is_active) VALUES (?, ?, ?, ?, ?)",
		g.Title, g.BeforeImageURL, g.AfterImageURL, g.SortOrder, g.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get insert ID: %w", err)
	}

	created := *g
	created.ID = id
	return &created, nil
}

// UpdateGalleryItem overwrites an existing before/after pair.
// Returns ErrNotFound if the ID does not exist.
func (s *SQLiteStorage) UpdateGalleryItem(ctx context.Context, g *GalleryItem) (*GalleryItem, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE before_after_gallery SET title = ?, before_image_url = ?, after_image_url = ?, sort_order = ?, is_active = ? WHERE id = ?",
		g.Title, g.BeforeImageURL, g.AfterImageURL, g.SortOrder, g.IsActive, g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update gallery item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	updated := *g
	return &updated, nil
}

// DeleteGalleryItem deletes a before/after pair by ID.
// Returns ErrNotFound if the ID does not exist.
func (s *SQLiteStorage) DeleteGalleryItem(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM before_after_gallery WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
