package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gamedevhub/board-api/internal/board"
	"github.com/gamedevhub/board-api/internal/constants"
	"github.com/gamedevhub/board-api/internal/models"
	"github.com/gamedevhub/board-api/internal/store"
	"github.com/gamedevhub/board-api/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMemberFieldsRequired = errors.New("name, email and role are required")
	ErrPasswordTooShort     = fmt.Errorf("password must be at least %d characters", constants.MinPasswordLength)
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// TeamService owns the team-member mutation rules, including the cascades
// that keep tasks and sessions consistent with the team collection.
type TeamService struct {
	board *board.Board
	store *store.Store
}

// NewTeamService creates a new TeamService.
func NewTeamService(b *board.Board, st *store.Store) *TeamService {
	return &TeamService{board: b, store: st}
}

// AddMemberInput holds the fields for a new team member. Password is
// required on create.
type AddMemberInput struct {
	Name     string
	Email    string
	Password string
	RoleID   string
}

// AddMember appends a new member with a fresh id and an avatar derived
// deterministically from the email address.
func (s *TeamService) AddMember(input AddMemberInput) (models.TeamMember, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.RoleID == "" {
		return models.TeamMember{}, ErrMemberFieldsRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return models.TeamMember{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.TeamMember{}, ErrFailedToHashPassword
	}

	s.board.Lock()
	defer s.board.Unlock()

	if _, ok := s.board.RoleByID(input.RoleID); !ok {
		return models.TeamMember{}, ErrRoleNotFound
	}

	member := models.TeamMember{
		ID:           "member-" + uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       input.RoleID,
		Avatar:       utils.AvatarURL(email),
	}
	s.board.Team = append(s.board.Team, member)

	if err := s.store.Save(store.KeyTeam, s.board.Team); err != nil {
		return models.TeamMember{}, fmt.Errorf("failed to persist team: %w", err)
	}
	return member, nil
}

// UpdateMemberInput holds the replacement fields for an existing member. An
// empty Password keeps the stored credential.
type UpdateMemberInput struct {
	Name     string
	Email    string
	Password string
	RoleID   string
}

// UpdateMember replaces the identified member's record. The id and avatar
// are stable across updates, and an empty new password preserves the
// existing hash rather than overwriting it.
func (s *TeamService) UpdateMember(id string, input UpdateMemberInput) (models.TeamMember, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.RoleID == "" {
		return models.TeamMember{}, ErrMemberFieldsRequired
	}

	var hash string
	if input.Password != "" {
		if len(input.Password) < constants.MinPasswordLength {
			return models.TeamMember{}, ErrPasswordTooShort
		}
		raw, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.TeamMember{}, ErrFailedToHashPassword
		}
		hash = string(raw)
	}

	s.board.Lock()
	defer s.board.Unlock()

	if _, ok := s.board.RoleByID(input.RoleID); !ok {
		return models.TeamMember{}, ErrRoleNotFound
	}

	member, ok := s.board.MemberByID(id)
	if !ok {
		return models.TeamMember{}, ErrMemberNotFound
	}

	member.Name = name
	member.Email = email
	member.RoleID = input.RoleID
	if hash != "" {
		member.PasswordHash = hash
	}

	if err := s.store.Save(store.KeyTeam, s.board.Team); err != nil {
		return models.TeamMember{}, fmt.Errorf("failed to persist team: %w", err)
	}
	return *member, nil
}

// UpdateProfile is the settings-modal save: the member edits their own name,
// email and optionally password. The role field is never written, so a
// concurrent role change can't be clobbered by a profile save.
func (s *TeamService) UpdateProfile(id, name, email, password string) (models.TeamMember, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return models.TeamMember{}, ErrMemberFieldsRequired
	}

	var hash string
	if password != "" {
		if len(password) < constants.MinPasswordLength {
			return models.TeamMember{}, ErrPasswordTooShort
		}
		raw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return models.TeamMember{}, ErrFailedToHashPassword
		}
		hash = string(raw)
	}

	s.board.Lock()
	defer s.board.Unlock()

	member, ok := s.board.MemberByID(id)
	if !ok {
		return models.TeamMember{}, ErrMemberNotFound
	}

	member.Name = name
	member.Email = email
	if hash != "" {
		member.PasswordHash = hash
	}

	if err := s.store.Save(store.KeyTeam, s.board.Team); err != nil {
		return models.TeamMember{}, fmt.Errorf("failed to persist team: %w", err)
	}
	return *member, nil
}

// DeleteMember removes a member. Every task assigned to them is unassigned
// first, under the same lock, so no task ever references a deleted member.
func (s *TeamService) DeleteMember(id string) error {
	s.board.Lock()
	defer s.board.Unlock()

	if _, ok := s.board.MemberByID(id); !ok {
		return ErrMemberNotFound
	}

	tasksChanged := false
	for i := range s.board.Tasks {
		if s.board.Tasks[i].AssigneeID != nil && *s.board.Tasks[i].AssigneeID == id {
			s.board.Tasks[i].AssigneeID = nil
			tasksChanged = true
		}
	}

	kept := s.board.Team[:0]
	for i := range s.board.Team {
		if s.board.Team[i].ID != id {
			kept = append(kept, s.board.Team[i])
		}
	}
	s.board.Team = kept

	if tasksChanged {
		if err := s.store.Save(store.KeyTasks, s.board.Tasks); err != nil {
			return fmt.Errorf("failed to persist tasks: %w", err)
		}
	}
	if err := s.store.Save(store.KeyTeam, s.board.Team); err != nil {
		return fmt.Errorf("failed to persist team: %w", err)
	}
	return nil
}
