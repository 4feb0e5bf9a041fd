package dto

import (
	"time"

	"devstudio_backend/internal/models"
)

// CreateContactRequest - сообщение из публичной формы обратной связи
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=2,max=200"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

// ContactListFilter - параметры списка сообщений (только админ)
type ContactListFilter struct {
	Pagination
	UnreadOnly bool `form:"unread_only"`
}

// ContactDTO - представление сообщения в ответах
type ContactDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContactDTO(c *models.Contact) ContactDTO {
	return ContactDTO{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		IsRead:    c.IsRead,
		CreatedAt: c.CreatedAt,
	}
}

func NewContactDTOs(contacts []models.Contact) []ContactDTO {
	out := make([]ContactDTO, 0, len(contacts))
	for i := range contacts {
		out = append(out, NewContactDTO(&contacts[i]))
	}
	return out
}
