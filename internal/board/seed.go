package board

import (
	"github.com/gamedevhub/board-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func mustHash(password string, cost int) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		// Only reachable with an out-of-range cost.
		panic(err)
	}
	return string(hash)
}

// Seed returns a board populated with the default demo data: four roles,
// six team members, four columns and six tasks. hashCost is the bcrypt cost
// used for the demo credentials; tests pass bcrypt.MinCost to keep fixtures
// fast.
func Seed(hashCost int) *Board {
	return &Board{
		Roles: []models.Role{
			{
				ID:   "role-admin",
				Name: "Admin",
				Permissions: []models.Permission{
					models.PermissionAccessAdminDashboard,
					models.PermissionManageTeam,
					models.PermissionManageRoles,
					models.PermissionManageColumns,
					models.PermissionManageAllTasks,
				},
			},
			{
				ID:   "role-producer",
				Name: "Producer",
				Permissions: []models.Permission{
					models.PermissionManageColumns,
					models.PermissionManageAllTasks,
				},
			},
			{ID: "role-developer", Name: "Developer", Permissions: []models.Permission{}},
			{ID: "role-designer", Name: "Designer", Permissions: []models.Permission{}},
		},
		Team: []models.TeamMember{
			{ID: "dev-1", Name: "Alex", Email: "alex@gamedev.hub", PasswordHash: mustHash("password123", hashCost), RoleID: "role-developer", Avatar: "https://i.pravatar.cc/48?u=dev-1"},
			{ID: "des-1", Name: "Mia", Email: "mia@gamedev.hub", PasswordHash: mustHash("password123", hashCost), RoleID: "role-designer", Avatar: "https://i.pravatar.cc/48?u=des-1"},
			{ID: "mot-1", Name: "Leo", Email: "leo@gamedev.hub", PasswordHash: mustHash("password123", hashCost), RoleID: "role-designer", Avatar: "https://i.pravatar.cc/48?u=mot-1"},
			{ID: "wri-1", Name: "Chloe", Email: "chloe@gamedev.hub", PasswordHash: mustHash("password123", hashCost), RoleID: "role-developer", Avatar: "https://i.pravatar.cc/48?u=wri-1"},
			{ID: "pro-1", Name: "Ben", Email: "ben@gamedev.hub", PasswordHash: mustHash("adminpass", hashCost), RoleID: "role-admin", Avatar: "https://i.pravatar.cc/48?u=pro-1"},
			{ID: "qa-1", Name: "Zoe", Email: "zoe@gamedev.hub", PasswordHash: mustHash("password123", hashCost), RoleID: "role-developer", Avatar: "https://i.pravatar.cc/48?u=qa-1"},
		},
		Columns: []models.Column{
			{ID: "backlog", Title: "Backlog"},
			{ID: "in-progress", Title: "In Progress"},
			{ID: "review", Title: "Review"},
			{ID: "done", Title: "Done"},
		},
		Tasks: []models.Task{
			{
				ID:          "task-1",
				Title:       "Design main character concepts",
				Description: "Create 3-5 initial concept sketches for the protagonist, exploring different styles.",
				AssigneeID:  strPtr("des-1"),
				Column:      "in-progress",
				Category:    models.CategoryDesigner,
			},
			{
				ID:          "task-2",
				Title:       "Develop player movement mechanics",
				Description: "Implement basic character controller for jumping, running, and crouching.",
				AssigneeID:  strPtr("dev-1"),
				Column:      "in-progress",
				Category:    models.CategoryDeveloper,
			},
			{
				ID:          "task-3",
				Title:       "Outline the first chapter of the story",
				Description: "Write a detailed outline for the game's opening chapter, including key plot points and character introductions.",
				AssigneeID:  strPtr("wri-1"),
				Column:      "review",
				Category:    models.CategoryWriter,
			},
			{
				ID:          "task-4",
				Title:       "Setup project repository and CI/CD",
				Description: "Initialize the Git repository and configure the continuous integration pipeline for automated builds.",
				AssigneeID:  strPtr("dev-1"),
				Column:      "done",
				Category:    models.CategoryDeveloper,
			},
			{
				ID:          "task-5",
				Title:       "Create title screen animation",
				Description: "Animate the game logo and title for the main menu screen.",
				AssigneeID:  strPtr("mot-1"),
				Column:      "backlog",
				Category:    models.CategoryMotionDesigner,
			},
			{
				ID:          "task-6",
				Title:       "Explore enemy AI behavior patterns",
				Description: "Research and prototype different AI patterns for basic enemy units.",
				AssigneeID:  nil,
				Column:      "backlog",
				Category:    models.CategoryDeveloper,
			},
		},
	}
}
