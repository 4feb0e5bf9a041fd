package dto

import (
	"devstudio_backend/internal/models"
)

// UpsertHomePageRequest - контент hero-блока главной страницы.
// Запись всегда одна, запрос перезаписывает её целиком.
type UpsertHomePageRequest struct {
	Headline    string `json:"headline" binding:"required,min=2,max=200"`
	Subheadline string `json:"subheadline" binding:"omitempty,max=500"`
	CTAText     string `json:"cta_text" binding:"omitempty,max=100"`
	CTALink     string `json:"cta_link" binding:"omitempty,max=255"`
	ImageURL    string `json:"image_url" binding:"omitempty,max=255"`
}

// HomePageDTO - представление hero-блока
type HomePageDTO struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline,omitempty"`
	CTAText     string `json:"cta_text,omitempty"`
	CTALink     string `json:"cta_link,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

func NewHomePageDTO(h *models.HomePageHero) HomePageDTO {
	return HomePageDTO{
		Headline:    h.Headline,
		Subheadline: h.Subheadline,
		CTAText:     h.CTAText,
		CTALink:     h.CTALink,
		ImageURL:    h.ImageURL,
	}
}
