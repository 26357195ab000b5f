package storage

import (
	"context"
	"fmt"
)

// ListServices returns all service entries in insertion order.
// Returns empty slice if no services exist.
func (s *SQLiteStorage) ListServices(ctx context.Context) ([]*Service, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, description, icon_name, color FROM services ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var services []*Service
	for rows.Next() {
		var svc Service
		if err := rows.Scan(&svc.ID, &svc.Title, &svc.Description, &svc.IconName, &svc.Color); err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating services: %w", err)
	}

	if services == nil {
		services = make([]*Service, 0)
	}

	return services, nil
}

// CreateService inserts a new service entry and returns it with its assigned ID.
func (s *SQLiteStorage) CreateService(ctx context.Context, svc *Service) (*Service, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO services (title, description, icon_name, color) VALUES (?, ?, ?, ?)",
		svc.Title, svc.Description, svc.IconName, svc.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get insert ID: %w", err)
	}

	created := *svc
	created.ID = id
	return &created, nil
}

// UpdateService overwrites an existing service entry.
// Returns ErrNotFound if the ID does not exist.
func (s *SQLiteStorage) UpdateService(ctx context.Context, svc *Service) (*Service, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE services SET title = ?, description = ?, icon_name = ?, color = ? WHERE id = ?",
		svc.Title, svc.Description, svc.IconName, svc.Color, svc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	updated := *svc
	return &updated, nil
}

// DeleteService deletes a service entry by ID.
// Returns ErrNotFound if the ID does not exist.
func (s *SQLiteStorage) DeleteService(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM services WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
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
