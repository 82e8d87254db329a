package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"notewell/handler"
	"notewell/middleware"
	"notewell/repository"
	"notewell/services"
	"notewell/usecase"
	"notewell/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxRequestBody = 1 << 20 // 1 MiB

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
		"REDIS_URL",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()

	redisURL := os.Getenv("REDIS_URL")
	if err := services.InitTokenBlacklist(redisURL); err != nil {
		log.Fatalf("Failed to initialize token blacklist: %v", err)
	}
	if err := services.InitSessionCache(redisURL); err != nil {
		log.Fatalf("Failed to initialize session cache: %v", err)
	}

	db := utils.MongoClient.Database(os.Getenv("MONGO_DB"))
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBody))

	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	tagsRepo := repository.GetTagsRepo(utils.MongoClient)
	foldersRepo := repository.GetFoldersRepo(utils.MongoClient)
	sharesRepo := repository.GetSharesRepo(utils.MongoClient)
	remindersRepo := repository.GetRemindersRepo(utils.MongoClient)
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	sessionsRepo := repository.GetSessionsRepo(utils.MongoClient)

	notesService := &usecase.NotesService{
		NotesRepo:   notesRepo,
		TagsRepo:    tagsRepo,
		FoldersRepo: foldersRepo,
		SharesRepo:  sharesRepo,
	}
	tagsService := &usecase.TagsService{TagsRepo: tagsRepo, NotesRepo: notesRepo}
	foldersService := &usecase.FoldersService{FoldersRepo: foldersRepo, NotesRepo: notesRepo}
	sharesService := &usecase.SharesService{
		SharesRepo:    sharesRepo,
		NotesRepo:     notesRepo,
		UsersRepo:     usersRepo,
		PublicBaseURL: utils.GetEnvAsString("PUBLIC_BASE_URL", "http://localhost:8080"),
	}
	remindersService := &usecase.RemindersService{RemindersRepo: remindersRepo, NotesRepo: notesRepo}
	usersService := &usecase.UsersService{UsersRepo: usersRepo}

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, usersService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, usersService, sessionsRepo)
			})
			auth.POST("/refresh", handler.RefreshTokenHandler)
		}

		public.GET("/public/shares/:token", func(c *gin.Context) {
			handler.GetPublicShareHandler(c, sharesService)
		})
	}

	router.POST("/internal/trash/purge", func(c *gin.Context) {
		handler.PurgeTrashHandler(c, notesService)
	})

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	protected.Use(middleware.SessionMiddleware(sessionsRepo))
	{
		protected.POST("/auth/logout", func(c *gin.Context) {
			handler.LogoutHandler(c, sessionsRepo)
		})

		user := protected.Group("/user")
		{
			user.GET("/profile", func(c *gin.Context) {
				handler.GetProfileHandler(c, usersService)
			})
			user.PATCH("/profile", func(c *gin.Context) {
				handler.UpdateProfileHandler(c, usersService)
			})
			user.POST("/change-password", func(c *gin.Context) {
				handler.ChangePasswordHandler(c, usersService)
			})
			user.POST("/change-email", func(c *gin.Context) {
				handler.ChangeEmailHandler(c, usersService)
			})
			user.DELETE("/delete", func(c *gin.Context) {
				handler.DeleteAccountHandler(c, usersService)
			})

			user.POST("/2fa/generate", func(c *gin.Context) {
				handler.Generate2FASecretHandler(c, usersService)
			})
			user.POST("/2fa/enable", func(c *gin.Context) {
				handler.Enable2FAHandler(c, usersService, usersRepo)
			})
			user.POST("/2fa/disable", func(c *gin.Context) {
				handler.Disable2FAHandler(c, usersService, usersRepo)
			})
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessionsHandler(c, sessionsRepo)
			})
			sessions.DELETE("/:id", func(c *gin.Context) {
				handler.EndSessionHandler(c, sessionsRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.EndAllSessionsHandler(c, sessionsRepo)
			})
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.ListNotesHandler(c, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.DELETE("/trash/empty", func(c *gin.Context) {
				handler.EmptyTrashHandler(c, notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, notesService)
			})
			notes.PATCH("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})
			notes.POST("/:id/restore", func(c *gin.Context) {
				handler.RestoreNoteHandler(c, notesService)
			})
			notes.POST("/:id/archive", func(c *gin.Context) {
				handler.ToggleArchiveHandler(c, notesService)
			})
			notes.POST("/:id/pin", func(c *gin.Context) {
				handler.TogglePinHandler(c, notesService)
			})
			notes.POST("/:id/favorite", func(c *gin.Context) {
				handler.ToggleFavoriteHandler(c, notesService)
			})
			notes.POST("/:id/duplicate", func(c *gin.Context) {
				handler.DuplicateNoteHandler(c, notesService)
			})
			notes.POST("/:id/view", func(c *gin.Context) {
				handler.RecordNoteViewHandler(c, notesService)
			})
		}

		tags := protected.Group("/tags")
		{
			tags.GET("", func(c *gin.Context) {
				handler.ListTagsHandler(c, tagsService)
			})
			tags.POST("", func(c *gin.Context) {
				handler.CreateTagHandler(c, tagsService)
			})
			tags.PATCH("/:id", func(c *gin.Context) {
				handler.UpdateTagHandler(c, tagsService)
			})
			tags.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteTagHandler(c, tagsService)
			})
		}

		folders := protected.Group("/folders")
		{
			folders.GET("", func(c *gin.Context) {
				handler.ListFoldersHandler(c, foldersService)
			})
			folders.GET("/tree", func(c *gin.Context) {
				handler.GetFolderTreeHandler(c, foldersService)
			})
			folders.POST("", func(c *gin.Context) {
				handler.CreateFolderHandler(c, foldersService)
			})
			folders.POST("/reorder", func(c *gin.Context) {
				handler.ReorderFoldersHandler(c, foldersService)
			})
			folders.PATCH("/:id", func(c *gin.Context) {
				handler.UpdateFolderHandler(c, foldersService)
			})
			folders.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteFolderHandler(c, foldersService)
			})
		}

		shares := protected.Group("/shares")
		{
			shares.GET("/sent", func(c *gin.Context) {
				handler.ListSentSharesHandler(c, sharesService)
			})
			shares.GET("/received", func(c *gin.Context) {
				handler.ListReceivedSharesHandler(c, sharesService)
			})
			shares.POST("/user", func(c *gin.Context) {
				handler.ShareWithUserHandler(c, sharesService)
			})
			shares.POST("/link", func(c *gin.Context) {
				handler.CreateShareLinkHandler(c, sharesService)
			})
			shares.PATCH("/:id", func(c *gin.Context) {
				handler.UpdateShareHandler(c, sharesService)
			})
			shares.DELETE("/:id", func(c *gin.Context) {
				handler.RevokeShareHandler(c, sharesService)
			})
		}

		reminders := protected.Group("/reminders")
		{
			reminders.GET("", func(c *gin.Context) {
				handler.ListRemindersHandler(c, remindersService)
			})
			reminders.GET("/upcoming", func(c *gin.Context) {
				handler.ListUpcomingRemindersHandler(c, remindersService)
			})
			reminders.POST("", func(c *gin.Context) {
				handler.CreateReminderHandler(c, remindersService)
			})
			reminders.PATCH("/:id", func(c *gin.Context) {
				handler.UpdateReminderHandler(c, remindersService)
			})
			reminders.POST("/:id/complete", func(c *gin.Context) {
				handler.CompleteReminderHandler(c, remindersService)
			})
			reminders.POST("/:id/snooze", func(c *gin.Context) {
				handler.SnoozeReminderHandler(c, remindersService)
			})
			reminders.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteReminderHandler(c, remindersService)
			})
		}
	}

	startTrashPurge(notesService)

	return router
}

// startTrashPurge runs the daily sweep deleting trashed notes past
// their retention window.
func startTrashPurge(notesService *usecase.NotesService) {
	interval := utils.GetEnvAsDuration("TRASH_PURGE_INTERVAL", 24*time.Hour)
	retentionDays := utils.GetEnvAsInt("TRASH_RETENTION_DAYS", usecase.TrashRetentionDays)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			deleted, err := notesService.PurgeExpiredTrash(ctx, retentionDays)
			cancel()
			if err != nil {
				log.Printf("trash purge failed: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("trash purge removed %d notes", deleted)
			}
		}
	}()
}

func main() {
	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
