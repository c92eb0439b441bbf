package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/annamandarin/gamify/config"
	"github.com/annamandarin/gamify/database"
	_ "github.com/annamandarin/gamify/docs" // Swagger docs - auto-generated
	adminctrl "github.com/annamandarin/gamify/internal/controller/admin"
	studentctrl "github.com/annamandarin/gamify/internal/controller/student"
	webhookctrl "github.com/annamandarin/gamify/internal/controller/webhook"
	"github.com/annamandarin/gamify/internal/leaderboard"
	"github.com/annamandarin/gamify/internal/logger"
	"github.com/annamandarin/gamify/internal/model"
	"github.com/annamandarin/gamify/internal/repository"
	"github.com/annamandarin/gamify/internal/service"
)

// @title Anna Mandarin Gamification API
// @version 1.0
// @description Quiz scoring, badges and achievement awarding for the Anna Mandarin learning platform.
// @contact.name API Support
// @contact.email support@annamandarin.example
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			leaderboard.NewRedisClient,
			leaderboard.NewStore,
			NewGinEngine, // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewQuizAttemptRepository,
			repository.NewAchievementRepository,
			repository.NewStudentAchievementRepository,
			repository.NewStudentRepository,
		),

		// Services layer
		fx.Provide(
			service.NewScoreService,
			service.NewAchievementService,
			service.NewQuizService,
			service.NewQuizSubmissionService,
			service.NewStudentService,
			service.NewAdminService,
			service.NewQuizDraftService,
		),

		// API controllers layer
		fx.Provide(
			adminctrl.NewAdminController,
			studentctrl.NewStudentController,
			webhookctrl.NewAwardController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	// CORS configuration. Preflight answers with an empty 200 because the
	// dashboard clients of the original hosted function check for that.
	r.Use(cors.New(cors.Config{
		AllowOrigins:              []string{"*"},
		AllowMethods:              []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:             []string{"Content-Length"},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminCtrl *adminctrl.AdminController,
	studentCtrl *studentctrl.StudentController,
	awardCtrl *webhookctrl.AwardController,
) {
	// Admin routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/quizzes", adminCtrl.CreateQuiz)
		adminAPIGroup.POST("/quizzes/draft", adminCtrl.DraftQuiz)
		adminAPIGroup.POST("/achievements", adminCtrl.CreateAchievement)
		adminAPIGroup.GET("/achievements", adminCtrl.ListAchievements)
		adminAPIGroup.POST("/students", adminCtrl.CreateStudent)
	}

	// Student-facing routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/quizzes", studentCtrl.GetAllQuizzes)
		userAPIGroup.GET("/quizzes/:quiz_id", studentCtrl.GetQuizDetails)
		userAPIGroup.POST("/quizzes/:quiz_id/attempts", studentCtrl.SubmitQuizAttempt)
		userAPIGroup.GET("/students/:student_id/attempts", studentCtrl.GetStudentAttempts)
		userAPIGroup.GET("/students/:student_id/profile", studentCtrl.GetStudentProfile)
		userAPIGroup.GET("/leaderboard", studentCtrl.GetLeaderboard)
	}

	// Achievement webhook, invoked after each persisted attempt.
	router.POST("/functions/v1/award-achievement", awardCtrl.AwardAchievements)
	router.OPTIONS("/functions/v1/award-achievement", awardCtrl.Preflight)

	// HTTP server setup and lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Gamification API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Student{},
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.QuizAttempt{},
		&model.Achievement{},
		&model.StudentAchievement{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
