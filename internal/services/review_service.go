package services

import (
	"context"

	"devstudio_backend/internal/logger"
	"devstudio_backend/internal/models"
	"devstudio_backend/internal/repositories"
	"devstudio_backend/internal/services/dto"
	"devstudio_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(ctx context.Context, clientID string, req *dto.CreateReviewRequest) (*dto.ReviewDTO, error)
	ListPublic(ctx context.Context, filter *dto.Pagination) (*dto.PagedResponse, error)
	ListAll(ctx context.Context, filter *dto.ReviewListFilter) (*dto.PagedResponse, error)
	Moderate(ctx context.Context, reviewID string, req *dto.ModerateReviewRequest) (*dto.ReviewDTO, error)
	Delete(ctx context.Context, reviewID string) error
	RatingSummary(ctx context.Context) (*dto.RatingSummary, error)
}

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	projectRepo repositories.ProjectRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, projectRepo repositories.ProjectRepository) ReviewService {
	return &ReviewServiceImpl{reviewRepo: reviewRepo, projectRepo: projectRepo}
}

// Create - отзыв клиента. Оставить отзыв можно только о собственном
// завершенном проекте, и только один раз.
func (s *ReviewServiceImpl) Create(ctx context.Context, clientID string, req *dto.CreateReviewRequest) (*dto.ReviewDTO, error) {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if project.RequestedByID != clientID {
		return nil, apperrors.ErrNotProjectOwner
	}
	if project.Status != models.ProjectStatusCompleted {
		return nil, apperrors.ErrProjectNotCompleted
	}

	exists, err := s.reviewRepo.ExistsForProject(clientID, req.ProjectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyReviewed
	}

	review := &models.Review{
		ClientID:   clientID,
		ProjectID:  req.ProjectID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		Status:     models.ReviewStatusPending,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "review submitted", "review_id", review.ID, "project_id", req.ProjectID)

	result := dto.NewReviewDTO(review)
	return &result, nil
}

// ListPublic - одобренные отзывы для витрины, без авторизации
func (s *ReviewServiceImpl) ListPublic(ctx context.Context, filter *dto.Pagination) (*dto.PagedResponse, error) {
	filter.Normalize()

	reviews, total, err := s.reviewRepo.FindApproved(filter.Limit(), filter.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PagedResponse{
		Items:    dto.NewReviewDTOs(reviews),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *ReviewServiceImpl) ListAll(ctx context.Context, filter *dto.ReviewListFilter) (*dto.PagedResponse, error) {
	filter.Normalize()

	reviews, total, err := s.reviewRepo.FindAll(models.ReviewStatus(filter.Status), filter.Limit(), filter.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PagedResponse{
		Items:    dto.NewReviewDTOs(reviews),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *ReviewServiceImpl) Moderate(ctx context.Context, reviewID string, req *dto.ModerateReviewRequest) (*dto.ReviewDTO, error) {
	if err := s.reviewRepo.UpdateStatus(reviewID, models.ReviewStatus(req.Status)); err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "review moderated", "review_id", reviewID, "status", req.Status)

	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	result := dto.NewReviewDTO(review)
	return &result, nil
}

func (s *ReviewServiceImpl) Delete(ctx context.Context, reviewID string) error {
	if err := s.reviewRepo.Delete(reviewID); err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrReviewNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "review deleted", "review_id", reviewID)
	return nil
}

func (s *ReviewServiceImpl) RatingSummary(ctx context.Context) (*dto.RatingSummary, error) {
	avg, count, err := s.reviewRepo.AverageRating()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.RatingSummary{Average: avg, Count: count}, nil
}
