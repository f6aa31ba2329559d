package models

// TeamMember is a board user. The email is the login key (matched
// case-insensitively); PasswordHash holds a bcrypt hash, never a plaintext
// credential. The hash is part of the persisted record but is stripped from
// API responses by the dto package.
type TeamMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	RoleID       string `json:"roleId"`
	Avatar       string `json:"avatar"`
}
