package job

import (
	"context"

	"go.uber.org/zap"

	"github.com/wealist/discussion-board/internal/service"
)

// CleanupJob sweeps expired temporary attachments. An upload that was
// never referenced by a thread create stays TEMP until its hold window
// passes, after which the sweep removes the blob and the row.
type CleanupJob struct {
	attachmentService service.AttachmentService
	logger            *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(attachmentService service.AttachmentService, logger *zap.Logger) *CleanupJob {
	return &CleanupJob{
		attachmentService: attachmentService,
		logger:            logger,
	}
}

// Run executes one sweep. It satisfies cron.Job.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	removed, err := j.attachmentService.CleanupExpired(ctx)
	if err != nil {
		j.logger.Error("Attachment cleanup sweep failed", zap.Error(err))
		return
	}
	if removed > 0 {
		j.logger.Info("Removed expired temporary attachments",
			zap.Int("count", removed),
		)
	}
}
