package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gamedevhub/board-api/internal/board"
	"github.com/gamedevhub/board-api/internal/models"
	"github.com/gamedevhub/board-api/internal/permissions"
	"github.com/gamedevhub/board-api/internal/store"
	"github.com/google/uuid"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTaskTitleRequired   = errors.New("task title is required")
	ErrColumnNotFound      = errors.New("column not found")
	ErrUnknownCategory     = errors.New("unknown task category")
	ErrTaskDeleteForbidden = errors.New("only the assignee or a member with ManageAllTasks may delete this task")
)

// TaskService owns the task mutation rules.
type TaskService struct {
	board *board.Board
	store *store.Store
}

// NewTaskService creates a new TaskService.
func NewTaskService(b *board.Board, st *store.Store) *TaskService {
	return &TaskService{board: b, store: st}
}

// GetTask returns a copy of the identified task.
func (s *TaskService) GetTask(id string) (models.Task, error) {
	s.board.Lock()
	defer s.board.Unlock()

	if task, ok := s.board.TaskByID(id); ok {
		return *task, nil
	}
	return models.Task{}, ErrTaskNotFound
}

// CreateTaskInput holds the fields for a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	AssigneeID  *string
	Column      string
	Category    models.TaskCategory
}

// CreateTask appends a new task with a fresh id.
func (s *TaskService) CreateTask(input CreateTaskInput) (models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return models.Task{}, ErrTaskTitleRequired
	}
	if !input.Category.IsValid() {
		return models.Task{}, ErrUnknownCategory
	}

	s.board.Lock()
	defer s.board.Unlock()

	if _, ok := s.board.ColumnByID(input.Column); !ok {
		return models.Task{}, ErrColumnNotFound
	}

	task := models.Task{
		ID:          "task-" + uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		AssigneeID:  input.AssigneeID,
		Column:      input.Column,
		Category:    input.Category,
	}
	s.board.Tasks = append(s.board.Tasks, task)

	if err := s.store.Save(store.KeyTasks, s.board.Tasks); err != nil {
		return models.Task{}, fmt.Errorf("failed to persist tasks: %w", err)
	}
	return task, nil
}

// UpdateTask replaces the task matching updated.ID with the supplied record.
// There is no partial merge: the whole record wins.
func (s *TaskService) UpdateTask(updated models.Task) (models.Task, error) {
	if strings.TrimSpace(updated.Title) == "" {
		return models.Task{}, ErrTaskTitleRequired
	}
	if !updated.Category.IsValid() {
		return models.Task{}, ErrUnknownCategory
	}

	s.board.Lock()
	defer s.board.Unlock()

	if _, ok := s.board.ColumnByID(updated.Column); !ok {
		return models.Task{}, ErrColumnNotFound
	}

	task, ok := s.board.TaskByID(updated.ID)
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}
	*task = updated

	if err := s.store.Save(store.KeyTasks, s.board.Tasks); err != nil {
		return models.Task{}, fmt.Errorf("failed to persist tasks: %w", err)
	}
	return updated, nil
}

// MoveTask sets the task's column. The destination must be an existing
// column; the board never holds a task pointing at a column that isn't
// there.
func (s *TaskService) MoveTask(taskID, columnID string) (models.Task, error) {
	s.board.Lock()
	defer s.board.Unlock()

	if _, ok := s.board.ColumnByID(columnID); !ok {
		return models.Task{}, ErrColumnNotFound
	}

	task, ok := s.board.TaskByID(taskID)
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}
	task.Column = columnID

	if err := s.store.Save(store.KeyTasks, s.board.Tasks); err != nil {
		return models.Task{}, fmt.Errorf("failed to persist tasks: %w", err)
	}
	return *task, nil
}

// DeleteTask removes a task. The actor must hold ManageAllTasks or be the
// task's current assignee. Deleting an absent task is a no-op.
func (s *TaskService) DeleteTask(actor models.TeamMember, taskID string) error {
	s.board.Lock()
	defer s.board.Unlock()

	task, ok := s.board.TaskByID(taskID)
	if !ok {
		return nil
	}

	eval := permissions.NewEvaluator(actor, s.board.Roles)
	if !eval.CanDeleteTask(*task) {
		return ErrTaskDeleteForbidden
	}

	kept := s.board.Tasks[:0]
	for i := range s.board.Tasks {
		if s.board.Tasks[i].ID != taskID {
			kept = append(kept, s.board.Tasks[i])
		}
	}
	s.board.Tasks = kept

	if err := s.store.Save(store.KeyTasks, s.board.Tasks); err != nil {
		return fmt.Errorf("failed to persist tasks: %w", err)
	}
	return nil
}
