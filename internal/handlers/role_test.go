package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	apierrors "github.com/gamedevhub/board-api/internal/errors"
	"github.com/gamedevhub/board-api/internal/models"
	"github.com/gamedevhub/board-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRoleHandler_SaveRoleUpsert(t *testing.T) {
	b, st := setupTestBoard(t)
	handler := NewRoleHandler(services.NewRoleService(b, st))

	// Editing an existing role keeps the collection length.
	payload := map[string]any{
		"id":          "role-designer",
		"name":        "Designer",
		"permissions": []string{"ManageColumns"},
	}
	c, w := memberContext(t, http.MethodPost, "/api/roles", payload, boardMember(t, b, "pro-1"))

	handler.SaveRole(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, b.Roles, 4)

	var response models.Role
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, []models.Permission{models.PermissionManageColumns}, response.Permissions)

	// A new role is appended with a fresh id.
	payload = map[string]any{"name": "QA Lead"}
	c, w = memberContext(t, http.MethodPost, "/api/roles", payload, boardMember(t, b, "pro-1"))

	handler.SaveRole(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, b.Roles, 5)
}

func TestRoleHandler_DeleteHeldRoleRefusedWithCount(t *testing.T) {
	b, st := setupTestBoard(t)
	handler := NewRoleHandler(services.NewRoleService(b, st))

	c, w := memberContext(t, http.MethodDelete, "/api/roles/role-developer", nil, boardMember(t, b, "pro-1"))
	c.Params = gin.Params{{Key: "id", Value: "role-developer"}}

	handler.DeleteRole(c)

	require.Equal(t, http.StatusConflict, w.Code)

	var response apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, apierrors.ErrCodeRoleInUse, response.Code)
	require.Contains(t, response.Message, "3 user(s)")

	// The role survives the refusal.
	_, ok := b.RoleByID("role-developer")
	require.True(t, ok)
}

func TestRoleHandler_DeleteAdminRoleForbidden(t *testing.T) {
	b, st := setupTestBoard(t)
	handler := NewRoleHandler(services.NewRoleService(b, st))

	c, w := memberContext(t, http.MethodDelete, "/api/roles/role-admin", nil, boardMember(t, b, "pro-1"))
	c.Params = gin.Params{{Key: "id", Value: "role-admin"}}

	handler.DeleteRole(c)

	// Held or not, the Admin role is never deletable.
	require.Equal(t, http.StatusForbidden, w.Code)
	_, ok := b.RoleByID("role-admin")
	require.True(t, ok)
}
