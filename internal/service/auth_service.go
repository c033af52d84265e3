package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wealist/discussion-board/internal/config"
	"github.com/wealist/discussion-board/internal/domain"
	"github.com/wealist/discussion-board/internal/dto"
	"github.com/wealist/discussion-board/internal/repository"
	"github.com/wealist/discussion-board/internal/response"
)

// tokenBlacklistPrefix namespaces revoked tokens in redis
const tokenBlacklistPrefix = "auth:blacklist:"

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, tokenString string) error
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

// authServiceImpl is the implementation of AuthService
type authServiceImpl struct {
	userRepo repository.UserRepository
	redis    *redis.Client
	jwtCfg   config.JWTConfig
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo repository.UserRepository, redisClient *redis.Client, jwtCfg config.JWTConfig) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		redis:    redisClient,
		jwtCfg:   jwtCfg,
	}
}

// Register creates a new user account with the default role
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check existing user", err.Error())
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Email is already registered", "")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		Dept:         req.Dept,
		Role:         domain.RoleUser,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and issues a signed session token.
// Invalid email and invalid password return the same error so the
// endpoint does not leak which accounts exist.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid email or password", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid email or password", "")
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.jwtCfg.Lifetime)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID.String(),
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to sign token", err.Error())
	}

	return &dto.TokenResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		User:        dto.NewUserResponse(user),
	}, nil
}

// Logout revokes the token by blacklisting it in redis until it would
// have expired anyway.
func (s *authServiceImpl) Logout(ctx context.Context, tokenString string) error {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtCfg.Secret), nil
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeUnauthorized, "Invalid token", "")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return response.NewAppError(response.ErrCodeUnauthorized, "Token has no expiry", "")
	}

	ttl := time.Until(exp.Time)
	if ttl <= 0 || s.redis == nil {
		// Already expired, nothing to revoke
		return nil
	}

	if err := s.redis.Set(ctx, tokenBlacklistPrefix+tokenString, "1", ttl).Err(); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to revoke token", err.Error())
	}
	return nil
}

// Me returns the authenticated user's own profile
func (s *authServiceImpl) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// IsTokenBlacklisted reports whether a token has been revoked by logout
func IsTokenBlacklisted(ctx context.Context, redisClient *redis.Client, tokenString string) (bool, error) {
	n, err := redisClient.Exists(ctx, tokenBlacklistPrefix+tokenString).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
