package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListSlides returns active animated slides in display order.
// The texts column is JSON-decoded into structured entries.
// Returns empty slice if no slides exist.
func (s *SQLiteStorage) ListSlides(ctx context.Context) ([]*Slide, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, img_url, texts, sort_order, is_active
		 FROM animated_slides
		 WHERE is_active = TRUE
		 ORDER BY sort_order ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query slides: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var slides []*Slide
	for rows.Next() {
		var sl Slide
		var textsJSON string
		if err := rows.Scan(&sl.ID, &sl.ImgURL, &textsJSON, &sl.SortOrder, &sl.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan slide row: %w", err)
		}
		if err := json.Unmarshal([]byte(textsJSON), &sl.Texts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal slide texts: %w", err)
		}
		slides = append(slides, &sl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slides: %w", err)
	}

	if slides == nil {
		slides = make([]*Slide, 0)
	}

	return slides, nil
}

// CreateSlide inserts a new animated slide and returns it with its assigned ID.
// Texts must already be validated by the caller.
func (s *SQLiteStorage) CreateSlide(ctx context.Context, sl *Slide) (*Slide, error) {
	textsJSON, err := marshalSlideTexts(sl.Texts)
	if err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO animated_slides (img_url, texts, sort_order, is_active) VALUES (?, ?, ?, ?)",
		sl.ImgURL, textsJSON, sl.SortOrder, sl.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to create slide: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get insert ID: %w", err)
	}

	created := *sl
	created.ID = id
	return &created, nil
}

// UpdateSlide overwrites an existing animated slide.
// Returns ErrNotFound if the ID does not exist.
func (s *SQLiteStorage) UpdateSlide(ctx context.Context, sl *Slide) (*Slide, error) {
	textsJSON, err := marshalSlideTexts(sl.Texts)
	if err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE animated_slides SET img_url = ?, texts = ?, sort_order = ?, is_active = ? WHERE id = ?",
		sl.ImgURL, textsJSON, sl.SortOrder, sl.IsActive, sl.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update slide: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	updated := *sl
	return &updated, nil
}

// DeleteSlide deletes an animated slide by ID.
// Returns ErrNotFound if the ID does not exist.
func (s *SQLiteStorage) DeleteSlide(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM animated_slides WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete slide: %w", err)
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

// marshalSlideTexts JSON-encodes slide texts, storing an empty list as "[]"
// so the column never holds SQL NULL.
func marshalSlideTexts(texts []SlideText) (string, error) {
	if texts == nil {
		texts = []SlideText{}
	}
	data, err := json.Marshal(texts)
	if err != nil {
		return "", fmt.Errorf("failed to marshal slide texts: %w", err)
	}
	return string(data), nil
}
