package permissions

import (
	"github.com/gamedevhub/board-api/internal/models"
)

// Evaluator answers capability queries for one member against one role
// collection. It is a pure value: build a fresh one whenever the acting
// member or the role collection may have changed, never cache it across a
// role edit.
type Evaluator struct {
	Member models.TeamMember
	Role   *models.Role
}

// NewEvaluator resolves the member's role by id. An unresolved role is not
// an error; the evaluator simply grants nothing.
func NewEvaluator(member models.TeamMember, roles []models.Role) Evaluator {
	for i := range roles {
		if roles[i].ID == member.RoleID {
			role := roles[i]
			return Evaluator{Member: member, Role: &role}
		}
	}
	return Evaluator{Member: member}
}

// HasPermission reports whether the member's resolved role grants p.
// A member with no resolvable role has no permissions.
func (e Evaluator) HasPermission(p models.Permission) bool {
	if e.Role == nil {
		return false
	}
	return e.Role.HasPermission(p)
}

// CanDeleteTask reports whether the member may delete task: either they
// hold ManageAllTasks or they are the task's current assignee.
func (e Evaluator) CanDeleteTask(task models.Task) bool {
	if e.HasPermission(models.PermissionManageAllTasks) {
		return true
	}
	return task.AssigneeID != nil && *task.AssigneeID == e.Member.ID
}
