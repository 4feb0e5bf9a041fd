package dto

import (
	"time"

	"devstudio_backend/internal/models"
)

// CreateProjectRequest - заявка клиента на проект
type CreateProjectRequest struct {
	ProjectName    string     `json:"project_name" binding:"required,min=2,max=100"`
	ProjectType    string     `json:"project_type" binding:"required" validate:"is-project-type"`
	BudgetRange    string     `json:"budget_range" binding:"required" validate:"is-budget-range"`
	ProjectDetails string     `json:"project_details" binding:"required,min=10,max=2000"`
	Deadline       *time.Time `json:"deadline" binding:"omitempty"`
}

// UpdateProjectRequest - правка проекта командой/админом
type UpdateProjectRequest struct {
	ProjectName    string     `json:"project_name" binding:"omitempty,min=2,max=100"`
	ProjectType    string     `json:"project_type" binding:"omitempty" validate:"omitempty,is-project-type"`
	BudgetRange    string     `json:"budget_range" binding:"omitempty" validate:"omitempty,is-budget-range"`
	ProjectDetails string     `json:"project_details" binding:"omitempty,min=10,max=2000"`
	Deadline       *time.Time `json:"deadline" binding:"omitempty"`
	Progress       *int       `json:"progress" binding:"omitempty,min=0,max=100"`
	TotalCost      *float64   `json:"total_cost" binding:"omitempty,min=0"`
	PaidAmount     *float64   `json:"paid_amount" binding:"omitempty,min=0"`
}

// UpdateProjectStatusRequest - смена статуса заявки
type UpdateProjectStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"is-project-status"`
}

// ProjectListFilter - параметры списка проектов
type ProjectListFilter struct {
	Pagination
	Status   string `form:"status" validate:"omitempty,is-project-status"`
	Archived *bool  `form:"archived"`
}

// ProjectDTO - представление проекта в ответах
type ProjectDTO struct {
	ID             string               `json:"id"`
	ProjectName    string               `json:"project_name"`
	ProjectType    string               `json:"project_type"`
	BudgetRange    string               `json:"budget_range"`
	ProjectDetails string               `json:"project_details"`
	Deadline       *time.Time           `json:"deadline,omitempty"`
	Progress       int                  `json:"progress"`
	TotalCost      float64              `json:"total_cost"`
	PaidAmount     float64              `json:"paid_amount"`
	PaymentStatus  models.PaymentStatus `json:"payment_status"`
	Status         models.ProjectStatus `json:"status"`
	IsArchived     bool                 `json:"is_archived"`
	RequestedBy    *UserDTO             `json:"requested_by,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func NewProjectDTO(p *models.Project) ProjectDTO {
	out := ProjectDTO{
		ID:             p.ID,
		ProjectName:    p.ProjectName,
		ProjectType:    p.ProjectType,
		BudgetRange:    p.BudgetRange,
		ProjectDetails: p.ProjectDetails,
		Deadline:       p.Deadline,
		Progress:       p.Progress,
		TotalCost:      p.TotalCost,
		PaidAmount:     p.PaidAmount,
		PaymentStatus:  p.PaymentStatus,
		Status:         p.Status,
		IsArchived:     p.IsArchived,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.RequestedBy != nil {
		user := NewUserDTO(p.RequestedBy)
		out.RequestedBy = &user
	}
	return out
}

func NewProjectDTOs(projects []models.Project) []ProjectDTO {
	out := make([]ProjectDTO, 0, len(projects))
	for i := range projects {
		out = append(out, NewProjectDTO(&projects[i]))
	}
	return out
}
