package main

import (
	"log"

	"github.com/gamedevhub/board-api/internal/board"
	"github.com/gamedevhub/board-api/internal/config"
	"github.com/gamedevhub/board-api/internal/constants"
	"github.com/gamedevhub/board-api/internal/database"
	"github.com/gamedevhub/board-api/internal/handlers"
	"github.com/gamedevhub/board-api/internal/middleware"
	"github.com/gamedevhub/board-api/internal/models"
	"github.com/gamedevhub/board-api/internal/services"
	"github.com/gamedevhub/board-api/internal/store"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Load the board from the document store, seeding defaults where no
	// stored collection exists.
	st := store.New(database.GetDB())
	b, err := board.Load(st, bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to load board state: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup cookie session middleware
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	// Initialize services
	authService := services.NewAuthService(b)
	taskService := services.NewTaskService(b, st)
	columnService := services.NewColumnService(b, st)
	teamService := services.NewTeamService(b, st)
	roleService := services.NewRoleService(b, st)
	aiService := services.NewAIService(cfg.OpenAIAPIKey)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	boardHandler := handlers.NewBoardHandler(b, columnService)
	taskHandler := handlers.NewTaskHandler(taskService, aiService)
	teamHandler := handlers.NewTeamHandler(teamService)
	roleHandler := handlers.NewRoleHandler(roleService)
	adminHandler := handlers.NewAdminHandler(b)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "GameDev Hub board API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(authService), authHandler.GetCurrentMember)
		}

		// Everything below requires an authenticated session
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(authService))
		{
			protected.GET("/board", boardHandler.GetBoard)
			protected.POST("/columns", middleware.RequirePermission(b, models.PermissionManageColumns), boardHandler.AddColumn)

			tasks := protected.Group("/tasks")
			{
				tasks.POST("", taskHandler.CreateTask)
				tasks.POST("/enhance", taskHandler.EnhanceDescription)
				tasks.PUT("/:id", taskHandler.UpdateTask)
				tasks.POST("/:id/move", taskHandler.MoveTask)
				tasks.POST("/:id/ideas", taskHandler.GenerateIdeas)
				// Per-task permission (assignee or ManageAllTasks) is
				// enforced in the service.
				tasks.DELETE("/:id", taskHandler.DeleteTask)
			}

			protected.GET("/admin/overview", middleware.RequirePermission(b, models.PermissionAccessAdminDashboard), adminHandler.Overview)

			team := protected.Group("/team")
			team.Use(middleware.RequirePermission(b, models.PermissionManageTeam))
			{
				team.POST("", teamHandler.AddMember)
				team.PUT("/:id", teamHandler.UpdateMember)
				team.DELETE("/:id", teamHandler.DeleteMember)
			}

			// Members may always edit their own profile
			protected.PUT("/profile", teamHandler.UpdateProfile)

			roles := protected.Group("/roles")
			roles.Use(middleware.RequirePermission(b, models.PermissionManageRoles))
			{
				roles.POST("", roleHandler.SaveRole)
				roles.DELETE("/:id", roleHandler.DeleteRole)
			}
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
