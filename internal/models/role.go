package models

// Permission is an atomic capability flag from a closed set. A role either
// contains a permission or it does not; there is no hierarchy between them.
type Permission string

const (
	PermissionAccessAdminDashboard Permission = "AccessAdminDashboard"
	PermissionManageTeam           Permission = "ManageTeam"
	PermissionManageRoles          Permission = "ManageRoles"
	PermissionManageColumns        Permission = "ManageColumns"
	PermissionManageAllTasks       Permission = "ManageAllTasks"
)

// AllPermissions lists every known permission in display order.
var AllPermissions = []Permission{
	PermissionAccessAdminDashboard,
	PermissionManageTeam,
	PermissionManageRoles,
	PermissionManageColumns,
	PermissionManageAllTasks,
}

// IsValid reports whether p is one of the known permissions.
func (p Permission) IsValid() bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}

// AdminRoleName is the display name of the built-in administrator role.
// A role with this exact name is never deletable.
const AdminRoleName = "Admin"

// Role is a named, mutable set of permissions. Members reference roles by
// id, so capability changes to a role apply to every holder immediately.
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// HasPermission reports whether the role's permission set contains p.
func (r Role) HasPermission(p Permission) bool {
	for _, granted := range r.Permissions {
		if granted == p {
			return true
		}
	}
	return false
}
