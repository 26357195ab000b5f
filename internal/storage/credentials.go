package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetAdminCredential retrieves the authoritative administrator credential.
// Exactly one row is treated as authoritative: the query takes the first row.
// Returns ErrNoCredential if the table is empty.
func (s *SQLiteStorage) GetAdminCredential(ctx context.Context) (*AdminCredential, error) {
	var c AdminCredential

	err := s.db.QueryRowContext(ctx,
		"SELECT id, password_hash, created_at, updated_at FROM admin_users ORDER BY id ASC LIMIT 1").
		Scan(&c.ID, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoCredential
		}
		return nil, fmt.Errorf("failed to get admin credential: %w", err)
	}

	return &c, nil
}

// UpdatePasswordHash overwrites the stored hash of the credential row in place.
// Returns ErrNotFound if the row does not exist.
func (s *SQLiteStorage) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE admin_users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
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

// SeedAdminCredential inserts the initial credential row if none exists.
// It is a no-op when a credential is already present, so it is safe to call
// on every startup.
func (s *SQLiteStorage) SeedAdminCredential(ctx context.Context, passwordHash string) error {
	_, err := s.GetAdminCredential(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNoCredential) {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO admin_users (password_hash) VALUES (?)", passwordHash)
	if err != nil {
		return fmt.Errorf("failed to seed admin credential: %w", err)
	}

	return nil
}
