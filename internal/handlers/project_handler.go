package handlers

import (
	"devstudio_backend/internal/services"
	"devstudio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler: base,
		projectService: projectService,
	}
}

// Create - заявка на проект от аутентифицированного клиента
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Created(c, "Project request submitted", project)
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), userID, h.GetUserRole(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", project)
}

// ListMine - собственные заявки клиента
func (h *ProjectHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var filter dto.ProjectListFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	page, err := h.projectService.ListMine(c.Request.Context(), userID, &filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", page)
}

// ListAll - все проекты (команда и админ)
func (h *ProjectHandler) ListAll(c *gin.Context) {
	var filter dto.ProjectListFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	page, err := h.projectService.ListAll(c.Request.Context(), &filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", page)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Project updated", project)
}

func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateProjectStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	project, err := h.projectService.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Project status updated", project)
}

func (h *ProjectHandler) Archive(c *gin.Context) {
	if err := h.projectService.SetArchived(c.Request.Context(), c.Param("id"), true); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Project archived", nil)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Project deleted", nil)
}
