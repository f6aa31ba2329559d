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

var (
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleNameRequired   = errors.New("role name is required")
	ErrUnknownPermission  = errors.New("unknown permission")
	ErrAdminRoleProtected = errors.New("the Admin role cannot be deleted")
)

// RoleInUseError is the referential guard on role deletion: a role with
// current holders is never deleted, silently or otherwise.
type RoleInUseError struct {
	RoleName string
	Holders  int
}

func (e *RoleInUseError) Error() string {
	return fmt.Sprintf("Cannot delete role %q as %d user(s) are assigned to it. Please re-assign them first.", e.RoleName, e.Holders)
}

// RoleService owns the role mutation rules.
type RoleService struct {
	board *board.Board
	store *store.Store
}

// NewRoleService creates a new RoleService.
func NewRoleService(b *board.Board, st *store.Store) *RoleService {
	return &RoleService{board: b, store: st}
}

// SaveRole upserts a role keyed by id: an existing id is replaced in place,
// anything else is appended, with a fresh id assigned when none is
// supplied.
func (s *RoleService) SaveRole(role models.Role) (models.Role, error) {
	role.Name = strings.TrimSpace(role.Name)
	if role.Name == "" {
		return models.Role{}, ErrRoleNameRequired
	}
	if role.Permissions == nil {
		role.Permissions = []models.Permission{}
	}
	for _, p := range role.Permissions {
		if !p.IsValid() {
			return models.Role{}, fmt.Errorf("%w: %q", ErrUnknownPermission, p)
		}
	}

	s.board.Lock()
	defer s.board.Unlock()

	if role.ID != "" {
		if existing, ok := s.board.RoleByID(role.ID); ok {
			*existing = role
			if err := s.store.Save(store.KeyRoles, s.board.Roles); err != nil {
				return models.Role{}, fmt.Errorf("failed to persist roles: %w", err)
			}
			return role, nil
		}
	}

	if role.ID == "" {
		role.ID = "role-" + uuid.NewString()
	}
	s.board.Roles = append(s.board.Roles, role)

	if err := s.store.Save(store.KeyRoles, s.board.Roles); err != nil {
		return models.Role{}, fmt.Errorf("failed to persist roles: %w", err)
	}
	return role, nil
}

// DeleteRole removes a role. A role named Admin is never deletable, and a
// role with current holders is refused with the holder count, so no member
// can ever be left pointing at a deleted role.
func (s *RoleService) DeleteRole(id string) error {
	s.board.Lock()
	defer s.board.Unlock()

	role, ok := s.board.RoleByID(id)
	if !ok {
		return ErrRoleNotFound
	}
	if role.Name == models.AdminRoleName {
		return ErrAdminRoleProtected
	}
	if holders := s.board.RoleHolderCount(id); holders > 0 {
		return &RoleInUseError{RoleName: role.Name, Holders: holders}
	}

	kept := s.board.Roles[:0]
	for i := range s.board.Roles {
		if s.board.Roles[i].ID != id {
			kept = append(kept, s.board.Roles[i])
		}
	}
	s.board.Roles = kept

	if err := s.store.Save(store.KeyRoles, s.board.Roles); err != nil {
		return fmt.Errorf("failed to persist roles: %w", err)
	}
	return nil
}
