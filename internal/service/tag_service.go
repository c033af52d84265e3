package service

import (
	"context"

	"github.com/wealist/discussion-board/internal/dto"
	"github.com/wealist/discussion-board/internal/repository"
	"github.com/wealist/discussion-board/internal/response"
)

// TagService defines the interface for tag business logic
type TagService interface {
	List(ctx context.Context) ([]dto.TagResponse, error)
}

// tagServiceImpl is the implementation of TagService
type tagServiceImpl struct {
	tagRepo repository.TagRepository
}

// NewTagService creates a new instance of TagService
func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagServiceImpl{tagRepo: tagRepo}
}

// List returns all tags, official ones first
func (s *tagServiceImpl) List(ctx context.Context) ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list tags", err.Error())
	}

	result := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		result = append(result, dto.NewTagResponse(t))
	}
	return result, nil
}
