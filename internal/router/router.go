package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/client"
	appConfig "github.com/wealist/discussion-board/internal/config"
	"github.com/wealist/discussion-board/internal/handler"
	"github.com/wealist/discussion-board/internal/metrics"
	"github.com/wealist/discussion-board/internal/middleware"
	"github.com/wealist/discussion-board/internal/repository"
	"github.com/wealist/discussion-board/internal/service"
)

// Config holds everything Setup needs to wire the application
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	JWT            appConfig.JWTConfig
	Upload         appConfig.UploadConfig
	BasePath       string
	AllowedOrigins []string
	Metrics        *metrics.Metrics
	S3Client       client.S3ClientInterface
}

// Setup builds the gin engine with all routes and middleware wired
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	threadRepo := repository.NewThreadRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	tagRepo := repository.NewTagRepository(cfg.DB)
	likeRepo := repository.NewLikeRepository(cfg.DB)
	reportRepo := repository.NewReportRepository(cfg.DB)
	attachmentRepo := repository.NewAttachmentRepository(cfg.DB)
	auditRepo := repository.NewAuditLogRepository(cfg.DB)

	// Services
	auditService := service.NewAuditService(auditRepo, cfg.Logger)
	authService := service.NewAuthService(userRepo, cfg.Redis, cfg.JWT)
	threadService := service.NewThreadService(threadRepo, userRepo, likeRepo, cfg.S3Client, auditService, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, threadRepo, userRepo, auditService, cfg.Metrics)
	likeService := service.NewLikeService(likeRepo, auditService, cfg.Metrics)
	tagService := service.NewTagService(tagRepo)
	reportService := service.NewReportService(reportRepo, threadRepo, commentRepo, auditService, cfg.Metrics)
	attachmentService := service.NewAttachmentService(attachmentRepo, cfg.S3Client, cfg.Upload, cfg.Logger)
	adminService := service.NewAdminService(threadRepo, commentRepo, userRepo, reportRepo, cfg.Redis, auditService, cfg.Metrics, cfg.Logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	threadHandler := handler.NewThreadHandler(threadService, likeService)
	commentHandler := handler.NewCommentHandler(commentService)
	tagHandler := handler.NewTagHandler(tagService)
	reportHandler := handler.NewReportHandler(reportService)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService, cfg.Upload.MaxSize)
	adminHandler := handler.NewAdminHandler(adminService, auditService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)

	// Public endpoints
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Authenticated endpoints
	authed := api.Group("")
	authed.Use(middleware.Auth(cfg.JWT.Secret, cfg.Redis))
	{
		authed.POST("/auth/logout", authHandler.Logout)
		authed.GET("/auth/me", authHandler.Me)

		authed.GET("/threads", threadHandler.List)
		authed.POST("/threads", threadHandler.Create)
		authed.GET("/threads/:threadId", threadHandler.Get)
		authed.PUT("/threads/:threadId", threadHandler.Update)
		authed.PATCH("/threads/:threadId/status", threadHandler.UpdateStatus)
		authed.DELETE("/threads/:threadId", threadHandler.Delete)
		authed.POST("/threads/:threadId/like", threadHandler.ToggleLike)

		authed.POST("/threads/:threadId/comments", commentHandler.Add)
		authed.DELETE("/comments/:commentId", commentHandler.Delete)

		authed.GET("/tags", tagHandler.List)

		authed.POST("/attachments", attachmentHandler.Upload)
		authed.GET("/attachments/:attachmentId/download", attachmentHandler.Download)

		authed.POST("/reports", reportHandler.Create)
	}

	// Moderator endpoints
	admin := api.Group("/admin")
	admin.Use(middleware.Auth(cfg.JWT.Secret, cfg.Redis))
	admin.Use(middleware.RequireModerator(userRepo))
	{
		admin.GET("/summary", adminHandler.Summary)
		admin.PATCH("/reports/:reportId/status", adminHandler.UpdateReportStatus)
		admin.GET("/audit-logs", adminHandler.AuditLogs)
	}

	return r
}
