package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gamedevhub/board-api/internal/board"
	"github.com/gamedevhub/board-api/internal/constants"
	"github.com/gamedevhub/board-api/internal/dto"
	"github.com/gamedevhub/board-api/internal/middleware"
	"github.com/gamedevhub/board-api/internal/services"
	"github.com/gamedevhub/board-api/internal/store"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestBoard(t *testing.T) (*board.Board, *store.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&store.Document{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return board.Seed(bcrypt.MinCost), store.New(db)
}

func newSessionRouter() *gin.Engine {
	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))
	return r
}

func jsonRequest(t *testing.T, method, url string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandler_Login(t *testing.T) {
	b, _ := setupTestBoard(t)
	handler := NewAuthHandler(services.NewAuthService(b))

	r := newSessionRouter()
	r.POST("/api/auth/login", handler.Login)

	// Email matching is case-insensitive.
	req := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "BEN@gamedev.hub",
		"password": "adminpass",
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.MemberDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "pro-1", response.ID)
	require.Equal(t, "Ben", response.Name)

	// The credential hash never appears in a response.
	require.NotContains(t, w.Body.String(), "passwordHash")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	b, _ := setupTestBoard(t)
	handler := NewAuthHandler(services.NewAuthService(b))

	r := newSessionRouter()
	r.POST("/api/auth/login", handler.Login)

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ben@gamedev.hub",
		"password": "wrongpass",
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	// The failure message is generic and names neither field.
	require.Contains(t, w.Body.String(), "Invalid email or password")
	require.NotContains(t, w.Body.String(), "unknown email")
}

func TestAuthHandler_Logout(t *testing.T) {
	b, _ := setupTestBoard(t)
	handler := NewAuthHandler(services.NewAuthService(b))

	r := newSessionRouter()
	r.POST("/api/auth/logout", handler.Logout)

	req := jsonRequest(t, http.MethodPost, "/api/auth/logout", map[string]string{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_DeletedMemberIsLoggedOut(t *testing.T) {
	b, st := setupTestBoard(t)
	authService := services.NewAuthService(b)
	teamService := services.NewTeamService(b, st)

	authHandler := NewAuthHandler(authService)
	r := newSessionRouter()
	r.POST("/api/auth/login", authHandler.Login)
	r.GET("/api/auth/me", middleware.RequireAuth(authService), authHandler.GetCurrentMember)

	// Log in as Zoe.
	loginReq := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "zoe@gamedev.hub",
		"password": "password123",
	})
	loginW := httptest.NewRecorder()
	r.ServeHTTP(loginW, loginReq)
	require.Equal(t, http.StatusOK, loginW.Code)
	sessionCookies := loginW.Result().Cookies()
	require.NotEmpty(t, sessionCookies)

	// The session resolves while the member exists.
	meReq := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, c := range sessionCookies {
		meReq.AddCookie(c)
	}
	meW := httptest.NewRecorder()
	r.ServeHTTP(meW, meReq)
	require.Equal(t, http.StatusOK, meW.Code)

	// Once the member is deleted, the same session is forced out.
	require.NoError(t, teamService.DeleteMember("qa-1"))

	meReq2 := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, c := range sessionCookies {
		meReq2.AddCookie(c)
	}
	meW2 := httptest.NewRecorder()
	r.ServeHTTP(meW2, meReq2)
	require.Equal(t, http.StatusUnauthorized, meW2.Code)
}

func TestRequireAuth_RoleEditTakesEffectImmediately(t *testing.T) {
	b, st := setupTestBoard(t)
	authService := services.NewAuthService(b)
	teamService := services.NewTeamService(b, st)

	authHandler := NewAuthHandler(authService)
	r := newSessionRouter()
	r.POST("/api/auth/login", authHandler.Login)
	r.GET("/api/auth/me", middleware.RequireAuth(authService), authHandler.GetCurrentMember)

	loginReq := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "zoe@gamedev.hub",
		"password": "password123",
	})
	loginW := httptest.NewRecorder()
	r.ServeHTTP(loginW, loginReq)
	require.Equal(t, http.StatusOK, loginW.Code)

	// Promote Zoe while her session is live.
	_, err := teamService.UpdateMember("qa-1", services.UpdateMemberInput{
		Name:   "Zoe",
		Email:  "zoe@gamedev.hub",
		RoleID: "role-admin",
	})
	require.NoError(t, err)

	meReq := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, c := range loginW.Result().Cookies() {
		meReq.AddCookie(c)
	}
	meW := httptest.NewRecorder()
	r.ServeHTTP(meW, meReq)
	require.Equal(t, http.StatusOK, meW.Code)

	var response dto.MemberDTO
	require.NoError(t, json.Unmarshal(meW.Body.Bytes(), &response))
	require.Equal(t, "role-admin", response.RoleID)
}
