package handlers

import (
	"errors"
	"net/http"

	"github.com/gamedevhub/board-api/internal/board"
	"github.com/gamedevhub/board-api/internal/dto"
	apierrors "github.com/gamedevhub/board-api/internal/errors"
	"github.com/gamedevhub/board-api/internal/services"
	"github.com/gin-gonic/gin"
)

// BoardHandler serves the board snapshot and column additions.
type BoardHandler struct {
	board         *board.Board
	columnService *services.ColumnService
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(b *board.Board, columnService *services.ColumnService) *BoardHandler {
	return &BoardHandler{board: b, columnService: columnService}
}

// GetBoard returns the full board snapshot for rendering.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	tasks, team, columns, roles := h.board.Snapshot()

	c.JSON(http.StatusOK, dto.BoardDTO{
		Columns: columns,
		Tasks:   tasks,
		Team:    dto.ToTeamDTO(team),
		Roles:   roles,
	})
}

// AddColumn appends a column. Gated on ManageColumns by the route.
func (h *BoardHandler) AddColumn(c *gin.Context) {
	type AddColumnRequest struct {
		Title string `json:"title"`
	}

	var req AddColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	column, err := h.columnService.AddColumn(req.Title)
	if err != nil {
		if errors.Is(err, services.ErrColumnTitleRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, column)
}
