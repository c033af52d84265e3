package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/domain"
)

// modelInfo holds information about a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

// AutoMigrate runs GORM auto-migration for all domain models.
// Order matters: referenced tables first so foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.User{},
		&domain.Thread{},
		&domain.Comment{},
		&domain.Tag{},
		&domain.ThreadTag{},
		&domain.Attachment{},
		&domain.Like{},
		&domain.Report{},
		&domain.AuditLog{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}

// SafeAutoMigrate runs auto-migration per model, logging whether each
// table was created or only updated. Useful against an existing schema.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	models := []modelInfo{
		{&domain.User{}, "users"},
		{&domain.Thread{}, "threads"},
		{&domain.Comment{}, "comments"},
		{&domain.Tag{}, "tags"},
		{&domain.ThreadTag{}, "thread_tags"},
		{&domain.Attachment{}, "attachments"},
		{&domain.Like{}, "likes"},
		{&domain.Report{}, "reports"},
		{&domain.AuditLog{}, "audit_logs"},
	}

	for _, m := range models {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	return nil
}
