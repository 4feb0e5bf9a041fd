package services

import (
	"context"

	"devstudio_backend/internal/logger"
	"devstudio_backend/internal/models"
	"devstudio_backend/internal/repositories"
	"devstudio_backend/internal/services/dto"
	"devstudio_backend/pkg/apperrors"
)

// CatalogService - каталог услуг студии
type CatalogService interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceDTO, error)
	GetBySlug(ctx context.Context, slug string) (*dto.ServiceDTO, error)
	ListPublic(ctx context.Context) ([]dto.ServiceDTO, error)
	ListAll(ctx context.Context) ([]dto.ServiceDTO, error)
	Update(ctx context.Context, serviceID string, req *dto.UpdateServiceRequest) (*dto.ServiceDTO, error)
	Delete(ctx context.Context, serviceID string) error
}

type CatalogServiceImpl struct {
	serviceRepo repositories.ServiceRepository
}

func NewCatalogService(serviceRepo repositories.ServiceRepository) CatalogService {
	return &CatalogServiceImpl{serviceRepo: serviceRepo}
}

func (s *CatalogServiceImpl) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceDTO, error) {
	service := &models.Service{
		Title:        req.Title,
		Slug:         req.Slug,
		Subtitle:     req.Subtitle,
		Description:  req.Description,
		Technologies: req.Technologies,
		DisplayOrder: req.DisplayOrder,
		IsPublished:  req.IsPublished,
	}

	if err := s.serviceRepo.Create(service); err != nil {
		if apperrors.Is(err, repositories.ErrSlugTaken) {
			return nil, apperrors.ErrSlugAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "service created", "service_id", service.ID, "slug", service.Slug)

	result := dto.NewServiceDTO(service)
	return &result, nil
}

func (s *CatalogServiceImpl) GetBySlug(ctx context.Context, slug string) (*dto.ServiceDTO, error) {
	service, err := s.serviceRepo.FindBySlug(slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewServiceDTO(service)
	return &result, nil
}

func (s *CatalogServiceImpl) ListPublic(ctx context.Context) ([]dto.ServiceDTO, error) {
	services, err := s.serviceRepo.FindAll(true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewServiceDTOs(services), nil
}

func (s *CatalogServiceImpl) ListAll(ctx context.Context) ([]dto.ServiceDTO, error) {
	services, err := s.serviceRepo.FindAll(false)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewServiceDTOs(services), nil
}

func (s *CatalogServiceImpl) Update(ctx context.Context, serviceID string, req *dto.UpdateServiceRequest) (*dto.ServiceDTO, error) {
	service, err := s.serviceRepo.FindByID(serviceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != "" {
		service.Title = req.Title
	}
	if req.Slug != "" {
		service.Slug = req.Slug
	}
	if req.Subtitle != "" {
		service.Subtitle = req.Subtitle
	}
	if req.Description != "" {
		service.Description = req.Description
	}
	if req.Technologies != "" {
		service.Technologies = req.Technologies
	}
	if req.DisplayOrder != nil {
		service.DisplayOrder = *req.DisplayOrder
	}
	if req.IsPublished != nil {
		service.IsPublished = *req.IsPublished
	}

	if err := s.serviceRepo.Update(service); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrServiceNotFound):
			return nil, apperrors.ErrServiceNotFound
		case apperrors.Is(err, repositories.ErrSlugTaken):
			return nil, apperrors.ErrSlugAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "service updated", "service_id", serviceID)

	result := dto.NewServiceDTO(service)
	return &result, nil
}

func (s *CatalogServiceImpl) Delete(ctx context.Context, serviceID string) error {
	if err := s.serviceRepo.Delete(serviceID); err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return apperrors.ErrServiceNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "service deleted", "service_id", serviceID)
	return nil
}
