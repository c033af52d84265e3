package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/client"
	"github.com/wealist/discussion-board/internal/config"
	"github.com/wealist/discussion-board/internal/domain"
	"github.com/wealist/discussion-board/internal/dto"
	"github.com/wealist/discussion-board/internal/repository"
	"github.com/wealist/discussion-board/internal/response"
)

// downloadURLLifetime bounds how long a presigned download link works
const downloadURLLifetime = 5 * time.Minute

// AttachmentService defines the interface for attachment business logic
type AttachmentService interface {
	// Upload stores the blob and creates a TEMP attachment row. The
	// attachment becomes CONFIRMED when a thread create references it.
	Upload(ctx context.Context, userID uuid.UUID, originalFilename, contentType string, size int64, file io.Reader) (*dto.AttachmentResponse, error)
	DownloadURL(ctx context.Context, attachmentID uuid.UUID) (*dto.DownloadURLResponse, error)
	CleanupExpired(ctx context.Context) (int, error)
}

// attachmentServiceImpl is the implementation of AttachmentService
type attachmentServiceImpl struct {
	attachmentRepo repository.AttachmentRepository
	s3Client       client.S3ClientInterface
	uploadCfg      config.UploadConfig
	logger         *zap.Logger
}

// NewAttachmentService creates a new instance of AttachmentService
func NewAttachmentService(
	attachmentRepo repository.AttachmentRepository,
	s3Client client.S3ClientInterface,
	uploadCfg config.UploadConfig,
	logger *zap.Logger,
) AttachmentService {
	return &attachmentServiceImpl{
		attachmentRepo: attachmentRepo,
		s3Client:       s3Client,
		uploadCfg:      uploadCfg,
		logger:         logger,
	}
}

func (s *attachmentServiceImpl) Upload(ctx context.Context, userID uuid.UUID, originalFilename, contentType string, size int64, file io.Reader) (*dto.AttachmentResponse, error) {
	if originalFilename == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Filename is required", "")
	}
	if size <= 0 || size > s.uploadCfg.MaxSize {
		return nil, response.NewAppError(response.ErrCodeValidation, "File size exceeds the allowed maximum", "")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := s.s3Client.GenerateFileKey(originalFilename)
	if err := s.s3Client.UploadFile(ctx, key, file, contentType); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store file", err.Error())
	}

	expiresAt := time.Now().UTC().Add(s.uploadCfg.TempTTL)
	attachment := &domain.Attachment{
		Status:           domain.AttachmentStatusTemp,
		FileKey:          key,
		OriginalFilename: originalFilename,
		ContentType:      contentType,
		FileSize:         size,
		UploadedBy:       userID,
		ExpiresAt:        &expiresAt,
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		// The row failed, so the blob is unreachable. Best effort
		// removal; the bucket lifecycle rule catches stragglers.
		if delErr := s.s3Client.DeleteFile(ctx, key); delErr != nil {
			s.logger.Warn("Failed to remove blob after row create failure",
				zap.String("file_key", key),
				zap.Error(delErr),
			)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record attachment", err.Error())
	}

	resp := dto.NewAttachmentResponse(attachment)
	return &resp, nil
}

func (s *attachmentServiceImpl) DownloadURL(ctx context.Context, attachmentID uuid.UUID) (*dto.DownloadURLResponse, error) {
	attachment, err := s.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Attachment not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load attachment", err.Error())
	}
	if attachment.Status != domain.AttachmentStatusConfirmed {
		return nil, response.NewNotFoundError("Attachment not found")
	}

	url, err := s.s3Client.PresignDownload(ctx, attachment.FileKey, attachment.OriginalFilename, downloadURLLifetime)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate download URL", err.Error())
	}

	return &dto.DownloadURLResponse{
		URL:              url,
		OriginalFilename: attachment.OriginalFilename,
		ExpiresAt:        time.Now().UTC().Add(downloadURLLifetime),
	}, nil
}

// CleanupExpired removes TEMP attachments whose hold window has
// passed: blob first, then the rows. Returns how many were removed.
func (s *attachmentServiceImpl) CleanupExpired(ctx context.Context) (int, error) {
	expired, err := s.attachmentRepo.FindExpiredTemp(ctx)
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, 0, len(expired))
	for _, att := range expired {
		if err := s.s3Client.DeleteFile(ctx, att.FileKey); err != nil {
			s.logger.Warn("Failed to delete expired blob, will retry next sweep",
				zap.String("file_key", att.FileKey),
				zap.Error(err),
			)
			continue
		}
		ids = append(ids, att.ID)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := s.attachmentRepo.DeleteBatch(ctx, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}
