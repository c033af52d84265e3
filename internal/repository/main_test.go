package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testSchema mirrors the migrated postgres schema in SQLite-compatible
// DDL. The uuid column defaults cannot be expressed in SQLite, so the
// tables are created by hand; IDs come from the BeforeCreate hooks.
var testSchema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		dept TEXT,
		role TEXT NOT NULL DEFAULT 'user',
		password_hash TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX uq_users_email ON users(email)`,
	`CREATE TABLE threads (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		author_id TEXT NOT NULL,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'unconfirmed',
		like_count INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE comments (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		thread_id TEXT NOT NULL,
		author_id TEXT NOT NULL,
		body TEXT NOT NULL
	)`,
	`CREATE TABLE tags (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		name TEXT NOT NULL,
		is_official INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE UNIQUE INDEX uq_tags_name ON tags(name)`,
	`CREATE TABLE thread_tags (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		thread_id TEXT NOT NULL,
		tag_id TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX uq_thread_tags_thread_tag ON thread_tags(thread_id, tag_id)`,
	`CREATE TABLE likes (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		thread_id TEXT NOT NULL,
		user_id TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX uq_likes_thread_user ON likes(thread_id, user_id)`,
	`CREATE TABLE reports (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		target_type TEXT NOT NULL,
		target_id TEXT NOT NULL,
		reporter_id TEXT NOT NULL,
		reason TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'unhandled'
	)`,
	`CREATE UNIQUE INDEX uq_reports_target_reporter ON reports(target_type, target_id, reporter_id)`,
	`CREATE TABLE attachments (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		thread_id TEXT,
		status TEXT NOT NULL DEFAULT 'TEMP',
		file_key TEXT NOT NULL,
		original_filename TEXT NOT NULL,
		content_type TEXT NOT NULL,
		file_size INTEGER NOT NULL,
		uploaded_by TEXT NOT NULL,
		expires_at DATETIME
	)`,
	`CREATE TABLE audit_logs (
		id TEXT PRIMARY KEY,
		actor_id TEXT NOT NULL,
		action TEXT NOT NULL,
		target_type TEXT,
		target_id TEXT,
		details TEXT,
		created_at DATETIME NOT NULL
	)`,
}

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	for _, stmt := range testSchema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create test schema: %v", err)
		}
	}

	return db
}
