package handlers

import (
	"devstudio_backend/internal/services"
	"devstudio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	*BaseHandler
	teamService services.TeamService
}

func NewTeamHandler(base *BaseHandler, teamService services.TeamService) *TeamHandler {
	return &TeamHandler{
		BaseHandler: base,
		teamService: teamService,
	}
}

// ListPublic - активные участники команды для витрины
func (h *TeamHandler) ListPublic(c *gin.Context) {
	members, err := h.teamService.ListPublic(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", members)
}

func (h *TeamHandler) ListAll(c *gin.Context) {
	members, err := h.teamService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", members)
}

func (h *TeamHandler) GetByID(c *gin.Context) {
	member, err := h.teamService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "", member)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	member, err := h.teamService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Created(c, "Team member created", member)
}

func (h *TeamHandler) Update(c *gin.Context) {
	var req dto.UpdateTeamMemberRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	member, err := h.teamService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Team member updated", member)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.teamService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Team member deleted", nil)
}
