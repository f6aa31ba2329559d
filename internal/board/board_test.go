package board

import (
	"testing"

	"github.com/gamedevhub/board-api/internal/models"
	"github.com/gamedevhub/board-api/internal/store"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&store.Document{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return store.New(db)
}

func TestSeed_Defaults(t *testing.T) {
	b := Seed(bcrypt.MinCost)

	require.Len(t, b.Columns, 4)
	require.Len(t, b.Tasks, 6)
	require.Len(t, b.Team, 6)
	require.Len(t, b.Roles, 4)

	// Seed credentials are stored hashed.
	ben, ok := b.MemberByID("pro-1")
	require.True(t, ok)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(ben.PasswordHash), []byte("adminpass")))

	// Every seed task points at an existing column and every member at an
	// existing role.
	for _, task := range b.Tasks {
		_, ok := b.ColumnByID(task.Column)
		require.True(t, ok, "task %s has dangling column %s", task.ID, task.Column)
	}
	for _, member := range b.Team {
		_, ok := b.RoleByID(member.RoleID)
		require.True(t, ok, "member %s has dangling role %s", member.ID, member.RoleID)
	}
}

func TestLoad_EmptyStoreYieldsSeeds(t *testing.T) {
	st := setupStore(t)

	b, err := Load(st, bcrypt.MinCost)
	require.NoError(t, err)
	require.Len(t, b.Columns, 4)
	require.Len(t, b.Tasks, 6)
}

func TestLoad_StoredCollectionsWin(t *testing.T) {
	st := setupStore(t)
	require.NoError(t, st.Save(store.KeyColumns, []models.Column{{ID: "only", Title: "Only"}}))

	b, err := Load(st, bcrypt.MinCost)
	require.NoError(t, err)
	require.Equal(t, []models.Column{{ID: "only", Title: "Only"}}, b.Columns)

	// Collections never stored still come from the seeds.
	require.Len(t, b.Roles, 4)
}

func TestBoard_RoleHolderCount(t *testing.T) {
	b := Seed(bcrypt.MinCost)

	require.Equal(t, 3, b.RoleHolderCount("role-developer"))
	require.Equal(t, 2, b.RoleHolderCount("role-designer"))
	require.Equal(t, 1, b.RoleHolderCount("role-admin"))
	require.Equal(t, 0, b.RoleHolderCount("role-producer"))
}

func TestBoard_Snapshot(t *testing.T) {
	b := Seed(bcrypt.MinCost)

	tasks, team, columns, roles := b.Snapshot()
	require.Len(t, tasks, 6)
	require.Len(t, team, 6)
	require.Len(t, columns, 4)
	require.Len(t, roles, 4)

	// The snapshot is a copy: mutating it leaves the board alone.
	columns[0].Title = "Hijacked"
	require.Equal(t, "Backlog", b.Columns[0].Title)
}
