package routes

import (
	"net/http"

	"devstudio_backend/internal/handlers"
	"devstudio_backend/internal/middleware"
	"devstudio_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP-маршруты приложения.
// Три уровня доступа: публичные, аутентифицированные и ограниченные
// по роли (team и/или admin).
func RegisterRoutes(ginRouter *gin.Engine, h *handlers.AppHandlers, gate *middleware.AuthGate) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")

	authenticated := gate.Authenticate()
	staffOnly := middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleTeam)
	adminOnly := middleware.RequireRoles(models.UserRoleAdmin)

	users := api.Group("/users")
	{
		users.POST("/register", h.Auth.Register)
		users.POST("/verify-email", h.Auth.VerifyEmail)
		users.POST("/login", h.Auth.Login)
		users.POST("/refresh-token", h.Auth.RefreshToken)
		users.POST("/logout", h.Auth.Logout)
		users.POST("/forgot-password", h.Auth.ForgotPassword)
		users.PATCH("/reset-password/:token", h.Auth.ResetPassword)

		protected := users.Group("", authenticated)
		{
			protected.GET("/profile", h.User.Profile)
			protected.PATCH("/update", h.User.UpdateProfile)
			protected.PATCH("/update-password", h.Auth.ChangePassword)
			protected.DELETE("/me", h.User.DeleteSelf)

			protected.GET("/:id", staffOnly, h.User.GetByID)
			protected.GET("", adminOnly, h.User.List)
			protected.PATCH("/:id/role", adminOnly, h.User.UpdateRole)
			protected.DELETE("/:id", adminOnly, h.User.Delete)
		}
	}

	projects := api.Group("/projects", authenticated)
	{
		projects.POST("", h.Project.Create)
		projects.GET("/my", h.Project.ListMine)
		projects.GET("/:id", h.Project.GetByID)

		projects.GET("", staffOnly, h.Project.ListAll)
		projects.PATCH("/:id", staffOnly, h.Project.Update)
		projects.PATCH("/:id/status", staffOnly, h.Project.UpdateStatus)

		projects.PATCH("/:id/archive", adminOnly, h.Project.Archive)
		projects.DELETE("/:id", adminOnly, h.Project.Delete)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", h.Review.ListPublic)
		reviews.GET("/rating", h.Review.RatingSummary)

		reviews.POST("", authenticated, h.Review.Create)
		reviews.GET("/all", authenticated, staffOnly, h.Review.ListAll)
		reviews.PATCH("/:id/moderate", authenticated, staffOnly, h.Review.Moderate)
		reviews.DELETE("/:id", authenticated, adminOnly, h.Review.Delete)
	}

	catalog := api.Group("/services")
	{
		catalog.GET("", h.Catalog.ListPublic)
		catalog.GET("/all", authenticated, staffOnly, h.Catalog.ListAll)
		catalog.GET("/:slug", h.Catalog.GetBySlug)

		catalog.POST("", authenticated, adminOnly, h.Catalog.Create)
		catalog.PATCH("/:id", authenticated, adminOnly, h.Catalog.Update)
		catalog.DELETE("/:id", authenticated, adminOnly, h.Catalog.Delete)
	}

	team := api.Group("/team")
	{
		team.GET("", h.Team.ListPublic)
		team.GET("/all", authenticated, staffOnly, h.Team.ListAll)
		team.GET("/:id", authenticated, staffOnly, h.Team.GetByID)

		team.POST("", authenticated, adminOnly, h.Team.Create)
		team.PATCH("/:id", authenticated, adminOnly, h.Team.Update)
		team.DELETE("/:id", authenticated, adminOnly, h.Team.Delete)
	}

	contacts := api.Group("/contacts")
	{
		contacts.POST("", h.Contact.Submit)

		contacts.GET("", authenticated, adminOnly, h.Contact.List)
		contacts.GET("/:id", authenticated, adminOnly, h.Contact.GetByID)
		contacts.PATCH("/:id/read", authenticated, adminOnly, h.Contact.MarkRead)
		contacts.DELETE("/:id", authenticated, adminOnly, h.Contact.Delete)
	}

	home := api.Group("/home")
	{
		home.GET("", h.HomePage.Get)
		home.PUT("", authenticated, adminOnly, h.HomePage.Upsert)
	}
}
