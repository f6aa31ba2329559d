package handlers

import (
	"net/http"

	"github.com/gamedevhub/board-api/internal/board"
	"github.com/gamedevhub/board-api/internal/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin-dashboard data. Gated on
// AccessAdminDashboard by the route.
type AdminHandler struct {
	board *board.Board
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(b *board.Board) *AdminHandler {
	return &AdminHandler{board: b}
}

// Overview returns the team and role collections for the dashboard.
func (h *AdminHandler) Overview(c *gin.Context) {
	_, team, _, roles := h.board.Snapshot()

	c.JSON(http.StatusOK, dto.AdminOverviewDTO{
		Team:  dto.ToTeamDTO(team),
		Roles: roles,
	})
}
