package dto

import (
	"github.com/gamedevhub/board-api/internal/models"
)

// MemberDTO represents a team member in API responses. The stored
// credential hash never crosses this boundary.
type MemberDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID string `json:"roleId"`
	Avatar string `json:"avatar"`
}

// BoardDTO is the full board snapshot rendered by the client.
type BoardDTO struct {
	Columns []models.Column `json:"columns"`
	Tasks   []models.Task   `json:"tasks"`
	Team    []MemberDTO     `json:"team"`
	Roles   []models.Role   `json:"roles"`
}

// AdminOverviewDTO is the admin-dashboard data set.
type AdminOverviewDTO struct {
	Team  []MemberDTO   `json:"team"`
	Roles []models.Role `json:"roles"`
}

// IdeasDTO carries AI-generated task suggestions.
type IdeasDTO struct {
	Ideas []string `json:"ideas"`
}

// EnhancedDescriptionDTO carries an AI-enhanced task description.
type EnhancedDescriptionDTO struct {
	Description string `json:"description"`
}

// ToMemberDTO converts a TeamMember model to MemberDTO.
func ToMemberDTO(member models.TeamMember) MemberDTO {
	return MemberDTO{
		ID:     member.ID,
		Name:   member.Name,
		Email:  member.Email,
		RoleID: member.RoleID,
		Avatar: member.Avatar,
	}
}

// ToTeamDTO converts a team collection to its response form.
func ToTeamDTO(team []models.TeamMember) []MemberDTO {
	members := make([]MemberDTO, len(team))
	for i, member := range team {
		members[i] = ToMemberDTO(member)
	}
	return members
}
