package dto

import (
	"time"

	"devstudio_backend/internal/models"
)

// CreateTeamMemberRequest - новая карточка участника команды
type CreateTeamMemberRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	RoleTitle    string `json:"role_title" binding:"required,min=2,max=100"`
	Bio          string `json:"bio" binding:"omitempty,max=1000"`
	Photo        string `json:"photo" binding:"omitempty,max=255"`
	LinkedinURL  string `json:"linkedin_url" binding:"omitempty,url"`
	GithubURL    string `json:"github_url" binding:"omitempty,url"`
	DisplayOrder int    `json:"display_order" binding:"omitempty,min=0"`
}

// UpdateTeamMemberRequest - правка карточки
type UpdateTeamMemberRequest struct {
	Name         string `json:"name" binding:"omitempty,min=2,max=100"`
	RoleTitle    string `json:"role_title" binding:"omitempty,min=2,max=100"`
	Bio          string `json:"bio" binding:"omitempty,max=1000"`
	Photo        string `json:"photo" binding:"omitempty,max=255"`
	LinkedinURL  string `json:"linkedin_url" binding:"omitempty,url"`
	GithubURL    string `json:"github_url" binding:"omitempty,url"`
	DisplayOrder *int   `json:"display_order" binding:"omitempty,min=0"`
	IsActive     *bool  `json:"is_active"`
}

// TeamMemberDTO - представление участника в ответах
type TeamMemberDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RoleTitle    string    `json:"role_title"`
	Bio          string    `json:"bio,omitempty"`
	Photo        string    `json:"photo,omitempty"`
	LinkedinURL  string    `json:"linkedin_url,omitempty"`
	GithubURL    string    `json:"github_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewTeamMemberDTO(m *models.TeamMember) TeamMemberDTO {
	return TeamMemberDTO{
		ID:           m.ID,
		Name:         m.Name,
		RoleTitle:    m.RoleTitle,
		Bio:          m.Bio,
		Photo:        m.Photo,
		LinkedinURL:  m.LinkedinURL,
		GithubURL:    m.GithubURL,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

func NewTeamMemberDTOs(members []models.TeamMember) []TeamMemberDTO {
	out := make([]TeamMemberDTO, 0, len(members))
	for i := range members {
		out = append(out, NewTeamMemberDTO(&members[i]))
	}
	return out
}
