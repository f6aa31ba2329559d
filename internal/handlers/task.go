package handlers

import (
	"errors"
	"net/http"

	"github.com/gamedevhub/board-api/internal/dto"
	apierrors "github.com/gamedevhub/board-api/internal/errors"
	"github.com/gamedevhub/board-api/internal/middleware"
	"github.com/gamedevhub/board-api/internal/models"
	"github.com/gamedevhub/board-api/internal/services"
	"github.com/gin-gonic/gin"
)

// TaskHandler coordinates task mutations and the AI assist endpoints.
type TaskHandler struct {
	taskService *services.TaskService
	aiService   *services.AIService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, aiService *services.AIService) *TaskHandler {
	return &TaskHandler{taskService: taskService, aiService: aiService}
}

type taskRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	AssigneeID  *string             `json:"assigneeId"`
	Column      string              `json:"column" binding:"required"`
	Category    models.TaskCategory `json:"category" binding:"required"`
}

// CreateTask appends a new task. Any authenticated member may create tasks.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Column:      req.Column,
		Category:    req.Category,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask replaces a task record wholesale.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(models.Task{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Column:      req.Column,
		Category:    req.Category,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// MoveTask is the drag-and-drop drop target: it changes only the task's
// column.
func (h *TaskHandler) MoveTask(c *gin.Context) {
	type MoveRequest struct {
		Column string `json:"column" binding:"required"`
	}

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.MoveTask(c.Param("id"), req.Column)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task; the service enforces the assignee-or-
// ManageAllTasks rule.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	member, ok := middleware.GetMember(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.taskService.DeleteTask(member, c.Param("id")); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted",
	})
}

// GenerateIdeas returns AI suggestions for an existing task. Failures
// degrade to an empty list, never an error.
func (h *TaskHandler) GenerateIdeas(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Param("id"))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	ideas := h.aiService.GenerateIdeas(c.Request.Context(), task)
	c.JSON(http.StatusOK, dto.IdeasDTO{Ideas: ideas})
}

// EnhanceDescription expands a draft description before the task is saved.
func (h *TaskHandler) EnhanceDescription(c *gin.Context) {
	type EnhanceRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}

	var req EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	enhanced := h.aiService.EnhanceDescription(c.Request.Context(), req.Title, req.Description)
	c.JSON(http.StatusOK, dto.EnhancedDescriptionDTO{Description: enhanced})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrColumnNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskTitleRequired),
		errors.Is(err, services.ErrUnknownCategory):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskDeleteForbidden):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
