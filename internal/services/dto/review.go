package dto

import (
	"time"

	"devstudio_backend/internal/models"
)

// CreateReviewRequest - отзыв клиента о завершенном проекте
type CreateReviewRequest struct {
	ProjectID  string `json:"project_id" binding:"required,uuid"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string `json:"review_text" binding:"required,min=10,max=1000"`
}

// ModerateReviewRequest - решение модератора по отзыву
type ModerateReviewRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// ReviewListFilter - параметры списка отзывов (админ видит все статусы)
type ReviewListFilter struct {
	Pagination
	Status string `form:"status" validate:"omitempty,is-review-status"`
}

// ReviewDTO - представление отзыва в ответах
type ReviewDTO struct {
	ID          string              `json:"id"`
	Rating      int                 `json:"rating"`
	ReviewText  string              `json:"review_text"`
	Status      models.ReviewStatus `json:"status"`
	Client      *UserDTO            `json:"client,omitempty"`
	ProjectID   string              `json:"project_id"`
	ProjectName string              `json:"project_name,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// RatingSummary - агрегат по одобренным отзывам
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

func NewReviewDTO(r *models.Review) ReviewDTO {
	out := ReviewDTO{
		ID:         r.ID,
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
		Status:     r.Status,
		ProjectID:  r.ProjectID,
		CreatedAt:  r.CreatedAt,
	}
	if r.Client != nil {
		client := NewUserDTO(r.Client)
		out.Client = &client
	}
	if r.Project != nil {
		out.ProjectName = r.Project.ProjectName
	}
	return out
}

func NewReviewDTOs(reviews []models.Review) []ReviewDTO {
	out := make([]ReviewDTO, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewDTO(&reviews[i]))
	}
	return out
}
