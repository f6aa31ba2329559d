package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/gamedevhub/board-api/internal/errors"
	"github.com/gamedevhub/board-api/internal/models"
	"github.com/gamedevhub/board-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RoleHandler coordinates role administration. All routes are gated on
// ManageRoles.
type RoleHandler struct {
	roleService *services.RoleService
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(roleService *services.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// SaveRole upserts a role: an existing id replaces the role in place,
// otherwise a new role is appended.
func (h *RoleHandler) SaveRole(c *gin.Context) {
	type SaveRoleRequest struct {
		ID          string              `json:"id"`
		Name        string              `json:"name" binding:"required"`
		Permissions []models.Permission `json:"permissions"`
	}

	var req SaveRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	role, err := h.roleService.SaveRole(models.Role{
		ID:          req.ID,
		Name:        req.Name,
		Permissions: req.Permissions,
	})
	if err != nil {
		respondRoleError(c, err)
		return
	}

	c.JSON(http.StatusOK, role)
}

// DeleteRole removes a role with zero holders. A held role is refused with
// the holder count.
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	if err := h.roleService.DeleteRole(c.Param("id")); err != nil {
		respondRoleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Role deleted",
	})
}

func respondRoleError(c *gin.Context, err error) {
	var inUse *services.RoleInUseError
	switch {
	case errors.As(err, &inUse):
		apierrors.RoleInUse(c, inUse.Error())
	case errors.Is(err, services.ErrRoleNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrRoleNameRequired),
		errors.Is(err, services.ErrUnknownPermission):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrAdminRoleProtected):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
