package storage

import (
	"context"
	"fmt"
)

// ListArticles returns all articles in insertion order.
// Returns empty slice if no articles exist.
func (s *SQLiteStorage) ListArticles(ctx context.Context) ([]*Article, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, excerpt, image, author, read_time, full_content FROM articles ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var articles []*Article
	for rows.Next() {
		var a Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Image, &a.Author, &a.ReadTime, &a.FullContent); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating articles: %w", err)
	}

	if articles == nil {
		articles = make([]*Article, 0)
	}

	return articles, nil
}

// CreateArticle inserts a new article and returns it with its assigned ID.
func (s *SQLiteStorage) CreateArticle(ctx context.Context, a *Article) (*Article, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO articles (title, excerpt, image, author, read_time, full_content) VALUES (?, ?, ?, ?, ?, ?)",
		a.Title, a.Excerpt, a.Image, a.Author, a.ReadTime, a.FullContent)
	if err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get insert ID: %w", err)
	}

	created := *a
	created.ID = id
	return &created, nil
}

// UpdateArticle overwrites an existing article.
// Returns ErrNotFound if the ID does not exist.
func (s *SQLiteStorage) UpdateArticle(ctx context.Context, a *Article) (*Article, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE articles SET title = ?, excerpt = ?, image = ?, author = ?, read_time = ?, full_content = ? WHERE id = ?",
		a.Title, a.Excerpt, a.Image, a.Author, a.ReadTime, a.FullContent, a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	updated := *a
	return &updated, nil
}

// DeleteArticle deletes an article by ID.
// Returns ErrNotFound if the ID does not exist.
func (s *SQLiteStorage) DeleteArticle(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
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
