package repositories

import (
	"errors"

	"devstudio_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrSlugTaken       = errors.New("slug already taken")
)

type ServiceRepository interface {
	Create(service *models.Service) error
	FindByID(id string) (*models.Service, error)
	FindBySlug(slug string) (*models.Service, error)
	FindAll(publishedOnly bool) ([]models.Service, error)
	Update(service *models.Service) error
	Delete(id string) error
}

type ServiceRepositoryImpl struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{db: db}
}

func (r *ServiceRepositoryImpl) Create(service *models.Service) error {
	if err := r.db.Create(service).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

func (r *ServiceRepositoryImpl) FindByID(id string) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindBySlug(slug string) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindAll(publishedOnly bool) ([]models.Service, error) {
	query := r.db.Model(&models.Service{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var services []models.Service
	err := query.Order("display_order ASC, created_at ASC").Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) Update(service *models.Service) error {
	result := r.db.Model(&models.Service{}).
		Where("id = ?", service.ID).
		Updates(map[string]interface{}{
			"title":         service.Title,
			"slug":          service.Slug,
			"subtitle":      service.Subtitle,
			"description":   service.Description,
			"technologies":  service.Technologies,
			"display_order": service.DisplayOrder,
			"is_published":  service.IsPublished,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrSlugTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
