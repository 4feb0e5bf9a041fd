package repositories

import (
	"errors"

	"devstudio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrHomePageNotFound = errors.New("home page content not found")

// HomePageRepository - хранилище контента главной страницы.
// Запись всегда одна: Upsert либо создает её, либо перезаписывает.
type HomePageRepository interface {
	Get() (*models.HomePageHero, error)
	Upsert(hero *models.HomePageHero) error
}

type HomePageRepositoryImpl struct {
	db *gorm.DB
}

func NewHomePageRepository(db *gorm.DB) HomePageRepository {
	return &HomePageRepositoryImpl{db: db}
}

func (r *HomePageRepositoryImpl) Get() (*models.HomePageHero, error) {
	var hero models.HomePageHero
	err := r.db.Order("created_at ASC").First(&hero).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomePageNotFound
		}
		return nil, err
	}
	return &hero, nil
}

func (r *HomePageRepositoryImpl) Upsert(hero *models.HomePageHero) error {
	existing, err := r.Get()
	if err != nil {
		if errors.Is(err, ErrHomePageNotFound) {
			return r.db.Create(hero).Error
		}
		return err
	}

	hero.ID = existing.ID
	return r.db.Model(&models.HomePageHero{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"headline":    hero.Headline,
			"subheadline": hero.Subheadline,
			"cta_text":    hero.CTAText,
			"cta_link":    hero.CTALink,
			"image_url":   hero.ImageURL,
		}).Error
}
