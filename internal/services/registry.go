package services

import (
	"devstudio_backend/internal/auth"
	"devstudio_backend/internal/email"
	"devstudio_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService     AuthService
	UserService     UserService
	ProjectService  ProjectService
	ReviewService   ReviewService
	CatalogService  CatalogService
	TeamService     TeamService
	ContactService  ContactService
	HomePageService HomePageService
}

// Deps - зависимости, которые сервисный слой не строит сам.
type Deps struct {
	Hasher        *auth.Hasher
	Tokens        *auth.TokenCodec
	EmailProvider email.Provider
	PublicURL     string
}

// NewServiceContainer собирает репозитории и сервисы поверх подключения к БД.
func NewServiceContainer(db *gorm.DB, deps Deps) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	homeRepo := repositories.NewHomePageRepository(db)

	return &ServiceContainer{
		AuthService:     NewAuthService(userRepo, deps.Hasher, deps.Tokens, deps.EmailProvider, deps.PublicURL),
		UserService:     NewUserService(userRepo),
		ProjectService:  NewProjectService(projectRepo),
		ReviewService:   NewReviewService(reviewRepo, projectRepo),
		CatalogService:  NewCatalogService(serviceRepo),
		TeamService:     NewTeamService(teamRepo),
		ContactService:  NewContactService(contactRepo),
		HomePageService: NewHomePageService(homeRepo),
	}
}
