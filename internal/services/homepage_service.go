package services

import (
	"context"

	"devstudio_backend/internal/logger"
	"devstudio_backend/internal/models"
	"devstudio_backend/internal/repositories"
	"devstudio_backend/internal/services/dto"
	"devstudio_backend/pkg/apperrors"
)

type HomePageService interface {
	Get(ctx context.Context) (*dto.HomePageDTO, error)
	Upsert(ctx context.Context, req *dto.UpsertHomePageRequest) (*dto.HomePageDTO, error)
}

type HomePageServiceImpl struct {
	homeRepo repositories.HomePageRepository
}

func NewHomePageService(homeRepo repositories.HomePageRepository) HomePageService {
	return &HomePageServiceImpl{homeRepo: homeRepo}
}

func (s *HomePageServiceImpl) Get(ctx context.Context) (*dto.HomePageDTO, error) {
	hero, err := s.homeRepo.Get()
	if err != nil {
		if apperrors.Is(err, repositories.ErrHomePageNotFound) {
			return nil, apperrors.ErrHomePageNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewHomePageDTO(hero)
	return &result, nil
}

func (s *HomePageServiceImpl) Upsert(ctx context.Context, req *dto.UpsertHomePageRequest) (*dto.HomePageDTO, error) {
	hero := &models.HomePageHero{
		Headline:    req.Headline,
		Subheadline: req.Subheadline,
		CTAText:     req.CTAText,
		CTALink:     req.CTALink,
		ImageURL:    req.ImageURL,
	}

	if err := s.homeRepo.Upsert(hero); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "home page content updated")

	result := dto.NewHomePageDTO(hero)
	return &result, nil
}
