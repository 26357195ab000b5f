package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetSiteContent returns all site text entries as a key/value map.
// Returns empty map if no entries exist.
func (s *SQLiteStorage) GetSiteContent(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT content_key, content_value FROM site_content")
	if err != nil {
		return nil, fmt.Errorf("failed to query site content: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	content := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan site content row: %w", err)
		}
		content[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating site content: %w", err)
	}

	return content, nil
}

// GetSiteContentKeys returns the values for a subset of keys.
// Missing keys are simply absent from the result.
func (s *SQLiteStorage) GetSiteContentKeys(ctx context.Context, keys []string) (map[string]string, error) {
	content := make(map[string]string, len(keys))

	for _, key := range keys {
		var value string
		err := s.db.QueryRowContext(ctx,
			"SELECT content_value FROM site_content WHERE content_key = ?", key).
			Scan(&value)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Key has no stored value yet
				continue
			}
			return nil, fmt.Errorf("failed to query site content key %q: %w", key, err)
		}
		content[key] = value
	}

	return content, nil
}

// UpsertSiteContent inserts or overwrites one site text entry and returns
// the stored pair.
func (s *SQLiteStorage) UpsertSiteContent(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO site_content (content_key, content_value) VALUES (?, ?)
		 ON CONFLICT (content_key) DO UPDATE SET content_value = excluded.content_value`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to upsert site content: %w", err)
	}

	return nil
}
