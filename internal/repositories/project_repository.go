package repositories

import (
	"errors"

	"devstudio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectFilter - параметры выборки списка проектов.
type ProjectFilter struct {
	Status        models.ProjectStatus
	RequestedByID string
	Archived      *bool
	Limit         int
	Offset        int
}

type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id string) (*models.Project, error)
	FindAll(filter ProjectFilter) ([]models.Project, int64, error)
	Update(project *models.Project) error
	UpdateStatus(id string, status models.ProjectStatus) error
	SetArchived(id string, archived bool) error
	Delete(id string) error
}

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("RequestedBy").First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindAll(filter ProjectFilter) ([]models.Project, int64, error) {
	query := r.db.Model(&models.Project{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.RequestedByID != "" {
		query = query.Where("requested_by_id = ?", filter.RequestedByID)
	}
	if filter.Archived != nil {
		query = query.Where("is_archived = ?", *filter.Archived)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var projects []models.Project
	err := query.Preload("RequestedBy").Order("created_at DESC").Find(&projects).Error
	return projects, total, err
}

func (r *ProjectRepositoryImpl) Update(project *models.Project) error {
	result := r.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"project_name":    project.ProjectName,
			"project_type":    project.ProjectType,
			"budget_range":    project.BudgetRange,
			"project_details": project.ProjectDetails,
			"deadline":        project.Deadline,
			"progress":        project.Progress,
			"total_cost":      project.TotalCost,
			"paid_amount":     project.PaidAmount,
			"payment_status":  project.PaymentStatus,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) UpdateStatus(id string, status models.ProjectStatus) error {
	result := r.db.Model(&models.Project{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) SetArchived(id string, archived bool) error {
	result := r.db.Model(&models.Project{}).Where("id = ?", id).Update("is_archived", archived)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
