package handlers

import (
	"devstudio_backend/internal/services"
	"devstudio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: base,
		catalogService: catalogService,
	}
}

// ListPublic - опубликованные услуги для витрины
func (h *CatalogHandler) ListPublic(c *gin.Context) {
	items, err := h.catalogService.ListPublic(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", items)
}

func (h *CatalogHandler) GetBySlug(c *gin.Context) {
	service, err := h.catalogService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", service)
}

// ListAll - все услуги, включая неопубликованные (команда и админ)
func (h *CatalogHandler) ListAll(c *gin.Context) {
	items, err := h.catalogService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", items)
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	service, err := h.catalogService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Created(c, "Service created", service)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	service, err := h.catalogService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Service updated", service)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Service deleted", nil)
}
