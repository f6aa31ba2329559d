package board

import (
	"sync"

	"github.com/gamedevhub/board-api/internal/models"
	"github.com/gamedevhub/board-api/internal/store"
)

// Board is the shared application state: the four domain collections behind
// one mutex. Every mutator locks the board for the whole operation, so
// compound cascades (member delete + task unassignment) are atomic to all
// other requests.
type Board struct {
	sync.Mutex

	Tasks   []models.Task
	Team    []models.TeamMember
	Columns []models.Column
	Roles   []models.Role
}

// Load builds the board from the document store, starting from the seed
// defaults so that an absent or corrupt document falls back to a usable
// collection instead of failing startup.
func Load(st *store.Store, seedHashCost int) (*Board, error) {
	b := Seed(seedHashCost)

	if err := st.Load(store.KeyTasks, &b.Tasks); err != nil {
		return nil, err
	}
	if err := st.Load(store.KeyTeam, &b.Team); err != nil {
		return nil, err
	}
	if err := st.Load(store.KeyColumns, &b.Columns); err != nil {
		return nil, err
	}
	if err := st.Load(store.KeyRoles, &b.Roles); err != nil {
		return nil, err
	}
	return b, nil
}

// Snapshot returns copies of all four collections. Callers get stable data
// without holding the board lock beyond the copy.
func (b *Board) Snapshot() (tasks []models.Task, team []models.TeamMember, columns []models.Column, roles []models.Role) {
	b.Lock()
	defer b.Unlock()

	tasks = append(tasks, b.Tasks...)
	team = append(team, b.Team...)
	columns = append(columns, b.Columns...)
	roles = append(roles, b.Roles...)
	return tasks, team, columns, roles
}

// TaskByID returns a pointer into the task collection. Caller must hold the
// board lock.
func (b *Board) TaskByID(id string) (*models.Task, bool) {
	for i := range b.Tasks {
		if b.Tasks[i].ID == id {
			return &b.Tasks[i], true
		}
	}
	return nil, false
}

// MemberByID returns a pointer into the team collection. Caller must hold
// the board lock.
func (b *Board) MemberByID(id string) (*models.TeamMember, bool) {
	for i := range b.Team {
		if b.Team[i].ID == id {
			return &b.Team[i], true
		}
	}
	return nil, false
}

// RoleByID returns a pointer into the role collection. Caller must hold the
// board lock.
func (b *Board) RoleByID(id string) (*models.Role, bool) {
	for i := range b.Roles {
		if b.Roles[i].ID == id {
			return &b.Roles[i], true
		}
	}
	return nil, false
}

// ColumnByID returns a pointer into the column collection. Caller must hold
// the board lock.
func (b *Board) ColumnByID(id string) (*models.Column, bool) {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return &b.Columns[i], true
		}
	}
	return nil, false
}

// RoleHolderCount counts the members currently holding roleID. Caller must
// hold the board lock.
func (b *Board) RoleHolderCount(roleID string) int {
	count := 0
	for i := range b.Team {
		if b.Team[i].RoleID == roleID {
			count++
		}
	}
	return count
}
