package handlers

import (
	"errors"
	"net/http"

	"github.com/gamedevhub/board-api/internal/dto"
	apierrors "github.com/gamedevhub/board-api/internal/errors"
	"github.com/gamedevhub/board-api/internal/middleware"
	"github.com/gamedevhub/board-api/internal/services"
	"github.com/gin-gonic/gin"
)

// TeamHandler coordinates team-member administration and profile saves.
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// AddMember invites a new member. Gated on ManageTeam by the route.
func (h *TeamHandler) AddMember(c *gin.Context) {
	type AddMemberRequest struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		RoleID   string `json:"roleId" binding:"required"`
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.teamService.AddMember(services.AddMemberInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberDTO(member))
}

// UpdateMember replaces a member's record. An empty password keeps the
// stored one. Gated on ManageTeam by the route.
func (h *TeamHandler) UpdateMember(c *gin.Context) {
	type UpdateMemberRequest struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password"`
		RoleID   string `json:"roleId" binding:"required"`
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.teamService.UpdateMember(c.Param("id"), services.UpdateMemberInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberDTO(member))
}

// DeleteMember removes a member and unassigns them from every task. Gated
// on ManageTeam by the route.
func (h *TeamHandler) DeleteMember(c *gin.Context) {
	if err := h.teamService.DeleteMember(c.Param("id")); err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Team member deleted",
	})
}

// UpdateProfile is the settings save: the authenticated member edits their
// own record without needing ManageTeam.
func (h *TeamHandler) UpdateProfile(c *gin.Context) {
	member, ok := middleware.GetMember(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type ProfileRequest struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password"`
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.teamService.UpdateProfile(member.ID, req.Name, req.Email, req.Password)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberDTO(updated))
}

func respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrRoleNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrMemberFieldsRequired),
		errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
