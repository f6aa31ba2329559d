package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gamedevhub/board-api/internal/board"
	"github.com/gamedevhub/board-api/internal/models"
	"github.com/gamedevhub/board-api/internal/store"
	"github.com/google/uuid"
)

var ErrColumnTitleRequired = errors.New("column title is required")

// ColumnService owns the column mutation rules. Columns can only be added;
// no delete operation is exposed.
type ColumnService struct {
	board *board.Board
	store *store.Store
}

// NewColumnService creates a new ColumnService.
func NewColumnService(b *board.Board, st *store.Store) *ColumnService {
	return &ColumnService{board: b, store: st}
}

// AddColumn appends a column with a fresh id. A title that is empty after
// trimming is rejected and the collection is left unchanged.
func (s *ColumnService) AddColumn(title string) (models.Column, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Column{}, ErrColumnTitleRequired
	}

	s.board.Lock()
	defer s.board.Unlock()

	column := models.Column{
		ID:    "column-" + uuid.NewString(),
		Title: title,
	}
	s.board.Columns = append(s.board.Columns, column)

	if err := s.store.Save(store.KeyColumns, s.board.Columns); err != nil {
		return models.Column{}, fmt.Errorf("failed to persist columns: %w", err)
	}
	return column, nil
}
