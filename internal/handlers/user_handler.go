package handlers

import (
	"devstudio_backend/internal/services"
	"devstudio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	authService services.AuthService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, authService services.AuthService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		authService: authService,
	}
}

// Profile - собственный профиль аутентифицированного пользователя
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", user)
}

// GetByID - профиль по id (команда и админ)
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", user)
}

// List - постраничный список пользователей (только админ)
func (h *UserHandler) List(c *gin.Context) {
	var filter dto.UserListFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	page, err := h.userService.List(c.Request.Context(), &filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", page)
}

// UpdateProfile - обновление собственного профиля
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Profile updated", user)
}

// UpdateRole - смена роли пользователя (только админ)
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateRole(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Role updated", user)
}

// Delete - удаление аккаунта по id (только админ)
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.authService.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Account deleted", nil)
}

// DeleteSelf - удаление собственного аккаунта
func (h *UserHandler) DeleteSelf(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.authService.DeleteAccount(c.Request.Context(), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Account deleted", nil)
}
