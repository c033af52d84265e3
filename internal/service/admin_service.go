package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/domain"
	"github.com/wealist/discussion-board/internal/dto"
	"github.com/wealist/discussion-board/internal/metrics"
	"github.com/wealist/discussion-board/internal/repository"
	"github.com/wealist/discussion-board/internal/response"
)

const (
	adminSummaryCacheKey = "admin:summary"
	adminSummaryCacheTTL = 30 * time.Second
	recentReportLimit    = 10
)

// AdminService defines the interface for the moderator panel
type AdminService interface {
	Summary(ctx context.Context) (*dto.AdminSummaryResponse, error)
	UpdateReportStatus(ctx context.Context, actorID, reportID uuid.UUID, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error)
}

// adminServiceImpl is the implementation of AdminService
type adminServiceImpl struct {
	threadRepo  repository.ThreadRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	reportRepo  repository.ReportRepository
	redis       *redis.Client
	audit       AuditService
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewAdminService creates a new instance of AdminService
func NewAdminService(
	threadRepo repository.ThreadRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	reportRepo repository.ReportRepository,
	redisClient *redis.Client,
	audit AuditService,
	m *metrics.Metrics,
	logger *zap.Logger,
) AdminService {
	return &adminServiceImpl{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		reportRepo:  reportRepo,
		redis:       redisClient,
		audit:       audit,
		metrics:     m,
		logger:      logger,
	}
}

// Summary returns aggregate counts plus the most recent reports. The
// payload is cached briefly in redis since every moderator page load
// hits it and exact freshness does not matter.
func (s *adminServiceImpl) Summary(ctx context.Context) (*dto.AdminSummaryResponse, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, adminSummaryCacheKey).Result()
		if err == nil {
			var resp dto.AdminSummaryResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Failed to read admin summary cache", zap.Error(err))
		}
	}

	resp, err := s.buildSummary(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		raw, err := json.Marshal(resp)
		if err == nil {
			if err := s.redis.Set(ctx, adminSummaryCacheKey, raw, adminSummaryCacheTTL).Err(); err != nil {
				s.logger.Warn("Failed to write admin summary cache", zap.Error(err))
			}
		}
	}
	return resp, nil
}

func (s *adminServiceImpl) buildSummary(ctx context.Context) (*dto.AdminSummaryResponse, error) {
	totalThreads, err := s.threadRepo.Count(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count threads", err.Error())
	}
	totalComments, err := s.commentRepo.Count(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count users", err.Error())
	}
	unhandled, err := s.reportRepo.CountByStatus(ctx, domain.ReportStatusUnhandled)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count unhandled reports", err.Error())
	}

	recent, err := s.reportRepo.FindRecent(ctx, recentReportLimit)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load recent reports", err.Error())
	}

	resp := &dto.AdminSummaryResponse{
		Stats: dto.AdminStats{
			TotalThreads:     totalThreads,
			TotalComments:    totalComments,
			TotalUsers:       totalUsers,
			UnhandledReports: unhandled,
		},
		RecentReports: make([]dto.ReportResponse, 0, len(recent)),
	}
	for _, r := range recent {
		resp.RecentReports = append(resp.RecentReports, dto.NewReportResponse(r))
	}
	return resp, nil
}

// UpdateReportStatus advances a report through triage
func (s *adminServiceImpl) UpdateReportStatus(ctx context.Context, actorID, reportID uuid.UUID, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error) {
	if !req.Status.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Unknown report status", string(req.Status))
	}

	if err := s.reportRepo.UpdateStatus(ctx, reportID, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Report not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update report status", err.Error())
	}

	s.audit.Record(ctx, actorID, domain.AuditActionReportTriage, "", nil, map[string]interface{}{
		"report_id": reportID.String(),
		"status":    string(req.Status),
	})

	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load updated report", err.Error())
	}
	resp := dto.NewReportResponse(report)
	return &resp, nil
}
