package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gamedevhub/board-api/internal/dto"
	"github.com/gamedevhub/board-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestTeamHandler_AddMember(t *testing.T) {
	b, st := setupTestBoard(t)
	handler := NewTeamHandler(services.NewTeamService(b, st))

	payload := map[string]string{
		"name":     "Noah",
		"email":    "noah@gamedev.hub",
		"password": "soundsecret",
		"roleId":   "role-designer",
	}
	c, w := memberContext(t, http.MethodPost, "/api/team", payload, boardMember(t, b, "pro-1"))

	handler.AddMember(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.MemberDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Noah", response.Name)
	require.NotEmpty(t, response.Avatar)
	require.NotContains(t, w.Body.String(), "passwordHash")
	require.Len(t, b.Team, 7)
}

func TestTeamHandler_AddMemberMissingFields(t *testing.T) {
	b, st := setupTestBoard(t)
	handler := NewTeamHandler(services.NewTeamService(b, st))

	payload := map[string]string{
		"name": "Noah",
	}
	c, w := memberContext(t, http.MethodPost, "/api/team", payload, boardMember(t, b, "pro-1"))

	handler.AddMember(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, b.Team, 6)
}

func TestTeamHandler_DeleteMember(t *testing.T) {
	b, st := setupTestBoard(t)
	handler := NewTeamHandler(services.NewTeamService(b, st))

	c, w := memberContext(t, http.MethodDelete, "/api/team/dev-1", nil, boardMember(t, b, "pro-1"))
	c.Params = gin.Params{{Key: "id", Value: "dev-1"}}

	handler.DeleteMember(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, b.Team, 5)

	// The cascade holds through the HTTP surface too.
	for _, task := range b.Tasks {
		if task.AssigneeID != nil {
			require.NotEqual(t, "dev-1", *task.AssigneeID)
		}
	}
}

func TestTeamHandler_UpdateProfile(t *testing.T) {
	b, st := setupTestBoard(t)
	handler := NewTeamHandler(services.NewTeamService(b, st))

	before := boardMember(t, b, "des-1")
	payload := map[string]string{
		"name":  "Mia R.",
		"email": "mia@gamedev.hub",
	}
	c, w := memberContext(t, http.MethodPut, "/api/profile", payload, before)

	handler.UpdateProfile(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.MemberDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Mia R.", response.Name)
	require.Equal(t, before.RoleID, response.RoleID)

	// The stored credential is untouched by a profile save without a
	// new password.
	after := boardMember(t, b, "des-1")
	require.Equal(t, before.PasswordHash, after.PasswordHash)
}
