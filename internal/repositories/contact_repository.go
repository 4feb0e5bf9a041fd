package repositories

import (
	"errors"

	"devstudio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrContactNotFound = errors.New("contact not found")

type ContactRepository interface {
	Create(contact *models.Contact) error
	FindByID(id string) (*models.Contact, error)
	FindAll(unreadOnly bool, limit, offset int) ([]models.Contact, int64, error)
	MarkRead(id string) error
	Delete(id string) error
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *ContactRepositoryImpl) FindByID(id string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepositoryImpl) FindAll(unreadOnly bool, limit, offset int) ([]models.Contact, int64, error) {
	query := r.db.Model(&models.Contact{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
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

	var contacts []models.Contact
	err := query.Order("created_at DESC").Find(&contacts).Error
	return contacts, total, err
}

func (r *ContactRepositoryImpl) MarkRead(id string) error {
	result := r.db.Model(&models.Contact{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *ContactRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
