package handlers

import (
	"devstudio_backend/internal/services"
	"devstudio_backend/internal/validator"
)

// AppHandlers содержит все HTTP-обработчики приложения.
type AppHandlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Project  *ProjectHandler
	Review   *ReviewHandler
	Catalog  *CatalogHandler
	Team     *TeamHandler
	Contact  *ContactHandler
	HomePage *HomePageHandler
}

// NewAppHandlers собирает обработчики поверх сервисного контейнера.
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator, cookies CookieConfig) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:     NewAuthHandler(base, sc.AuthService, cookies),
		User:     NewUserHandler(base, sc.UserService, sc.AuthService),
		Project:  NewProjectHandler(base, sc.ProjectService),
		Review:   NewReviewHandler(base, sc.ReviewService),
		Catalog:  NewCatalogHandler(base, sc.CatalogService),
		Team:     NewTeamHandler(base, sc.TeamService),
		Contact:  NewContactHandler(base, sc.ContactService),
		HomePage: NewHomePageHandler(base, sc.HomePageService),
	}
}
