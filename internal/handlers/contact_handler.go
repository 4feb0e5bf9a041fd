package handlers

import (
	"devstudio_backend/internal/services"
	"devstudio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler: base,
		contactService: contactService,
	}
}

// Submit - публичная форма обратной связи
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.CreateContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Created(c, "Message received. We will get back to you soon.", contact)
}

func (h *ContactHandler) List(c *gin.Context) {
	var filter dto.ContactListFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	page, err := h.contactService.List(c.Request.Context(), &filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", page)
}

func (h *ContactHandler) GetByID(c *gin.Context) {
	contact, err := h.contactService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", contact)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	if err := h.contactService.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Message marked as read", nil)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Message deleted", nil)
}
