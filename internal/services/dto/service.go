package dto

import (
	"time"

	"devstudio_backend/internal/models"
)

// CreateServiceRequest - новая услуга студии
type CreateServiceRequest struct {
	Title        string `json:"title" binding:"required,min=2,max=100"`
	Slug         string `json:"slug" binding:"required,min=2,max=100"`
	Subtitle     string `json:"subtitle" binding:"omitempty,max=200"`
	Description  string `json:"description" binding:"required,min=10"`
	Technologies string `json:"technologies" binding:"omitempty,max=500"`
	DisplayOrder int    `json:"display_order" binding:"omitempty,min=0"`
	IsPublished  bool   `json:"is_published"`
}

// UpdateServiceRequest - правка услуги
type UpdateServiceRequest struct {
	Title        string `json:"title" binding:"omitempty,min=2,max=100"`
	Slug         string `json:"slug" binding:"omitempty,min=2,max=100"`
	Subtitle     string `json:"subtitle" binding:"omitempty,max=200"`
	Description  string `json:"description" binding:"omitempty,min=10"`
	Technologies string `json:"technologies" binding:"omitempty,max=500"`
	DisplayOrder *int   `json:"display_order" binding:"omitempty,min=0"`
	IsPublished  *bool  `json:"is_published"`
}

// ServiceDTO - представление услуги в ответах
type ServiceDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Subtitle     string    `json:"subtitle,omitempty"`
	Description  string    `json:"description"`
	Technologies string    `json:"technologies,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewServiceDTO(s *models.Service) ServiceDTO {
	return ServiceDTO{
		ID:           s.ID,
		Title:        s.Title,
		Slug:         s.Slug,
		Subtitle:     s.Subtitle,
		Description:  s.Description,
		Technologies: s.Technologies,
		DisplayOrder: s.DisplayOrder,
		IsPublished:  s.IsPublished,
		CreatedAt:    s.CreatedAt,
	}
}

func NewServiceDTOs(services []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(services))
	for i := range services {
		out = append(out, NewServiceDTO(&services[i]))
	}
	return out
}
