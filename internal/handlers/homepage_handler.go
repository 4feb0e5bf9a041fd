package handlers

import (
	"devstudio_backend/internal/services"
	"devstudio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type HomePageHandler struct {
	*BaseHandler
	homeService services.HomePageService
}

func NewHomePageHandler(base *BaseHandler, homeService services.HomePageService) *HomePageHandler {
	return &HomePageHandler{
		BaseHandler: base,
		homeService: homeService,
	}
}

// Get - hero-блок главной страницы, без авторизации
func (h *HomePageHandler) Get(c *gin.Context) {
	hero, err := h.homeService.Get(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", hero)
}

// Upsert - перезапись hero-блока (только админ)
func (h *HomePageHandler) Upsert(c *gin.Context) {
	var req dto.UpsertHomePageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	hero, err := h.homeService.Upsert(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Home page content saved", hero)
}
