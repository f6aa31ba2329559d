package services

import (
	"errors"
	"strings"

	"github.com/gamedevhub/board-api/internal/board"
	"github.com/gamedevhub/board-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is deliberately generic: it never reveals
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMemberNotFound     = errors.New("team member not found")
)

// dummyHash is compared against when no email matches, so a login attempt
// with an unknown email costs the same bcrypt work as a wrong password and
// response timing doesn't reveal which one it was.
var dummyHash = func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("placeholder-credential"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
}()

// AuthService is the session gate: it resolves login credentials against the
// current team collection and re-resolves the active member on demand.
type AuthService struct {
	board *board.Board
}

// NewAuthService creates a new AuthService.
func NewAuthService(b *board.Board) *AuthService {
	return &AuthService{board: b}
}

// Login authenticates a member. The email match is case-insensitive and the
// password is verified against the stored bcrypt hash; the first member in
// collection order whose email and credential both match wins.
func (s *AuthService) Login(email, password string) (models.TeamMember, error) {
	s.board.Lock()
	defer s.board.Unlock()

	emailMatched := false
	for i := range s.board.Team {
		member := s.board.Team[i]
		if !strings.EqualFold(member.Email, email) {
			continue
		}
		emailMatched = true
		if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)) == nil {
			return member, nil
		}
	}
	if !emailMatched {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	}
	return models.TeamMember{}, ErrInvalidCredentials
}

// ResolveMember re-resolves a member id against the fresh team collection.
// Sessions are revalidated through this on every request, so a deleted
// member is logged out and edits to the active member take effect without a
// re-login.
func (s *AuthService) ResolveMember(id string) (models.TeamMember, error) {
	s.board.Lock()
	defer s.board.Unlock()

	if member, ok := s.board.MemberByID(id); ok {
		return *member, nil
	}
	return models.TeamMember{}, ErrMemberNotFound
}
