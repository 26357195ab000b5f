package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// StickySection selects which sticky-scroll table an operation targets.
type StickySection string

const (
	// StickyDefault is the forward sticky-scroll section.
	StickyDefault StickySection = "sticky_scroll_content"
	// StickyReversed is the mirrored section below it.
	StickyReversed StickySection = "sticky_scroll_reversed_content"
)

// table returns the SQL table name for the section, or an error for any
// value outside the two known sections. Table names are never taken from
// request input.
func (sec StickySection) table() (string, error) {
	switch sec {
	case StickyDefault, StickyReversed:
		return string(sec), nil
	}
	return "", fmt.Errorf("unknown sticky section: %q", string(sec))
}

// ListStickyItems returns active items of a sticky section in display order.
// Returns empty slice if no items exist.
func (s *SQLiteStorage) ListStickyItems(ctx context.Context, sec StickySection) ([]*StickyItem, error) {
	table, err := sec.table()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT id, title, description, image_url, sort_order, is_active
		 FROM %s
		 WHERE is_active = TRUE
		 ORDER BY sort_order ASC, id ASC`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query sticky items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var items []*StickyItem
	for rows.Next() {
		var it StickyItem
		var descJSON string
		if err := rows.Scan(&it.ID, &it.Title, &descJSON, &it.ImageURL, &it.SortOrder, &it.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan sticky row: %w", err)
		}
		if err := json.Unmarshal([]byte(descJSON), &it.Description); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sticky description: %w", err)
		}
		items = append(items, &it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sticky items: %w", err)
	}

	if items == nil {
		items = make([]*StickyItem, 0)
	}

	return items, nil
}

// CreateStickyItem inserts a new sticky item and returns it with its assigned ID.
// Description must already be validated by the caller.
func (s *SQLiteStorage) CreateStickyItem(ctx context.Context, sec StickySection, it *StickyItem) (*StickyItem, error) {
	table, err := sec.table()
	if err != nil {
		return nil, err
	}

	descJSON, err := json.Marshal(it.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sticky description: %w", err)
	}

	result, err := s.db.ExecContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (title, description, image_url, sort_order, is_active) VALUES (?, ?, ?, ?, ?)", table),
		it.Title, string(descJSON), it.ImageURL, it.SortOrder, it.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to create sticky item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get insert ID: %w", err)
	}

	created := *it
	created.ID = id
	return &created, nil
}

// UpdateStickyItem overwrites an existing sticky item.
// Returns ErrNotFound if the ID does not exist.
func (s *SQLiteStorage) UpdateStickyItem(ctx context.Context, sec StickySection, it *StickyItem) (*StickyItem, error) {
	table, err := sec.table()
	if err != nil {
		return nil, err
	}

	descJSON, err := json.Marshal(it.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sticky description: %w", err)
	}

	result, err := s.db.ExecContext(ctx, fmt.Sprintf(
		"UPDATE %s SET title = ?, description = ?, image_url = ?, sort_order = ?, is_active = ? WHERE id = ?", table),
		it.Title, string(descJSON), it.ImageURL, it.SortOrder, it.IsActive, it.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update sticky item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	updated := *it
	return &updated, nil
}

// DeleteStickyItem deletes a sticky item by ID.
// Returns ErrNotFound if the ID does not exist.
func (s *SQLiteStorage) DeleteStickyItem(ctx context.Context, sec StickySection, id int64) error {
	table, err := sec.table()
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return fmt.Errorf("failed to delete sticky item: %w", err)
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
