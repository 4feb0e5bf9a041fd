package repositories

import (
	"errors"

	"devstudio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id string) (*models.Review, error)
	FindApproved(limit, offset int) ([]models.Review, int64, error)
	FindAll(status models.ReviewStatus, limit, offset int) ([]models.Review, int64, error)
	ExistsForProject(clientID, projectID string) (bool, error)
	UpdateStatus(id string, status models.ReviewStatus) error
	Delete(id string) error
	AverageRating() (float64, int64, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.Preload("Client").Preload("Project").First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindApproved(limit, offset int) ([]models.Review, int64, error) {
	return r.FindAll(models.ReviewStatusApproved, limit, offset)
}

func (r *ReviewRepositoryImpl) FindAll(status models.ReviewStatus, limit, offset int) ([]models.Review, int64, error) {
	query := r.db.Model(&models.Review{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var reviews []models.Review
	err := query.Preload("Client").Preload("Project").Order("created_at DESC").Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepositoryImpl) ExistsForProject(clientID, projectID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("client_id = ? AND project_id = ?", clientID, projectID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepositoryImpl) UpdateStatus(id string, status models.ReviewStatus) error {
	result := r.db.Model(&models.Review{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// AverageRating считает средний рейтинг только по одобренным отзывам.
func (r *ReviewRepositoryImpl) AverageRating() (float64, int64, error) {
	type aggregate struct {
		Avg   float64
		Count int64
	}
	var agg aggregate
	err := r.db.Model(&models.Review{}).
		Where("status = ?", models.ReviewStatusApproved).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}
	return agg.Avg, agg.Count, nil
}
