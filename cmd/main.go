package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lapras/config"
	"github.com/lshigami/Lapras/database"
	_ "github.com/lshigami/Lapras/docs" // Swagger docs - auto-generated
	"github.com/lshigami/Lapras/internal/controller"
	"github.com/lshigami/Lapras/internal/logger"
	"github.com/lshigami/Lapras/internal/model"
	"github.com/lshigami/Lapras/internal/repository"
	"github.com/lshigami/Lapras/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Lapras Tutoring Platform API
// @version 1.0
// @description API for lessons, quizzes, tests with deduplicated result submission, universities, study preferences and AI text generation.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewLessonRepository,
			repository.NewTrackingRepository,
			repository.NewQuizletRepository,
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewResultRepository,
			repository.NewUniversityRepository,
			repository.NewPreferenceRepository,
		),

		fx.Provide(
			service.NewUserService,
			service.NewLessonService,
			service.NewQuizletService,
			service.NewTestService,
			service.NewResultService,
			service.NewUniversityService,
			service.NewPreferenceService,
			service.NewGenerateService,
			service.NewResetService,
		),

		fx.Provide(
			controller.NewUserController,
			controller.NewLessonController,
			controller.NewQuizletController,
			controller.NewTestController,
			controller.NewResultController,
			controller.NewUniversityController,
			controller.NewPreferenceController,
			controller.NewAIController,
			controller.NewResetController,
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

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires every controller under /api/v1 and ties
// the HTTP server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	userCtrl *controller.UserController,
	lessonCtrl *controller.LessonController,
	quizletCtrl *controller.QuizletController,
	testCtrl *controller.TestController,
	resultCtrl *controller.ResultController,
	univCtrl *controller.UniversityController,
	prefCtrl *controller.PreferenceController,
	aiCtrl *controller.AIController,
	resetCtrl *controller.ResetController,
) {
	apiV1 := router.Group("/api/v1")
	userCtrl.RegisterRoutes(apiV1)
	lessonCtrl.RegisterRoutes(apiV1)
	quizletCtrl.RegisterRoutes(apiV1)
	testCtrl.RegisterRoutes(apiV1)
	resultCtrl.RegisterRoutes(apiV1)
	univCtrl.RegisterRoutes(apiV1)
	prefCtrl.RegisterRoutes(apiV1)
	aiCtrl.RegisterRoutes(apiV1)
	resetCtrl.RegisterRoutes(apiV1)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Lapras API server starting on port %s", cfg.Server.Port)
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
		&model.User{},
		&model.University{},
		&model.UserPreferences{},
		&model.Lesson{},
		&model.LessonTracking{},
		&model.Quizlet{},
		&model.Test{},
		&model.TestQuestion{},
		&model.TestResult{},
		&model.QuestionAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
