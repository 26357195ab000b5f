// Package storage handles all database operations for the El Bustan content API.
package storage

import (
	"database/sql"
	"fmt"
)

// InitSchema creates all required tables and indexes.
// This is idempotent - safe to call multiple times.
func InitSchema(db *sql.DB) error {
	ddlStatements := []string{
		// admin_users: the single administrative credential. Queries always
		// take the first row; the table is never written through the public
		// interface except by the password-change operation.
		`CREATE TABLE IF NOT EXISTS admin_users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS articles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			excerpt TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			read_time TEXT NOT NULL DEFAULT '',
			full_content TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS services (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			icon_name TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS before_after_gallery (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			before_image_url TEXT NOT NULL,
			after_image_url TEXT NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,

		// texts holds a JSON-encoded ordered list of {highlight, detail}
		// pairs, validated before write.
		`CREATE TABLE IF NOT EXISTS animated_slides (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			img_url TEXT NOT NULL,
			texts TEXT NOT NULL DEFAULT '[]',
			sort_order INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,

		// description holds a JSON-encoded list of paragraph strings.
		`CREATE TABLE IF NOT EXISTS sticky_scroll_content (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '[]',
			image_url TEXT NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,

		`CREATE TABLE IF NOT EXISTS sticky_scroll_reversed_content (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '[]',
			image_url TEXT NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,

		`CREATE TABLE IF NOT EXISTS site_content (
			content_key TEXT PRIMARY KEY,
			content_value TEXT NOT NULL
		)`,
	}

	for _, stmt := range ddlStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute DDL: %w", err)
		}
	}

	return nil
}

// MigrateSchema checks current schema version and applies migrations.
// For now there is only v1; future versions add migration logic here.
func MigrateSchema(db *sql.DB) error {
	return InitSchema(db)
}
