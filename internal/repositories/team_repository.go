package repositories

import (
	"errors"

	"devstudio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTeamMemberNotFound = errors.New("team member not found")

type TeamRepository interface {
	Create(member *models.TeamMember) error
	FindByID(id string) (*models.TeamMember, error)
	FindAll(activeOnly bool) ([]models.TeamMember, error)
	Update(member *models.TeamMember) error
	Delete(id string) error
}

type TeamRepositoryImpl struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &TeamRepositoryImpl{db: db}
}

func (r *TeamRepositoryImpl) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

func (r *TeamRepositoryImpl) FindByID(id string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *TeamRepositoryImpl) FindAll(activeOnly bool) ([]models.TeamMember, error) {
	query := r.db.Model(&models.TeamMember{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var members []models.TeamMember
	err := query.Order("display_order ASC, created_at ASC").Find(&members).Error
	return members, err
}

func (r *TeamRepositoryImpl) Update(member *models.TeamMember) error {
	result := r.db.Model(&models.TeamMember{}).
		Where("id = ?", member.ID).
		Updates(map[string]interface{}{
			"name":          member.Name,
			"role_title":    member.RoleTitle,
			"bio":           member.Bio,
			"photo":         member.Photo,
			"linkedin_url":  member.LinkedinURL,
			"github_url":    member.GithubURL,
			"display_order": member.DisplayOrder,
			"is_active":     member.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}

func (r *TeamRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}
