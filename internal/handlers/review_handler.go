package handlers

import (
	"devstudio_backend/internal/services"
	"devstudio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler: base,
		reviewService: reviewService,
	}
}

// Create - отзыв клиента о собственном завершенном проекте
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Created(c, "Review submitted for moderation", review)
}

// ListPublic - одобренные отзывы, без авторизации
func (h *ReviewHandler) ListPublic(c *gin.Context) {
	var filter dto.Pagination
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	page, err := h.reviewService.ListPublic(c.Request.Context(), &filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", page)
}

// ListAll - все отзывы любого статуса (команда и админ)
func (h *ReviewHandler) ListAll(c *gin.Context) {
	var filter dto.ReviewListFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	page, err := h.reviewService.ListAll(c.Request.Context(), &filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", page)
}

// Moderate - одобрение либо отклонение отзыва
func (h *ReviewHandler) Moderate(c *gin.Context) {
	var req dto.ModerateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.Moderate(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Review moderated", review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviewService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Review deleted", nil)
}

// RatingSummary - средний рейтинг по одобренным отзывам, без авторизации
func (h *ReviewHandler) RatingSummary(c *gin.Context) {
	summary, err := h.reviewService.RatingSummary(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", summary)
}
